package taxonomy

import (
	"fmt"

	"github.com/SalaazMarket/Converter/internal/tabular"
)

// FileConfig points at the three taxonomy CSV exports.
type FileConfig struct {
	CategoriesPath       string
	SubCategoriesPath    string
	SubSubCategoriesPath string
	// HasHeader is false for the reference exports, which carry the
	// column layout positionally.
	HasHeader bool
}

// Positional column layouts of the headerless reference exports.
var (
	categoryLayout       = []string{"id", "name", "description", "active", "created_at", "updated_at"}
	subCategoryLayout    = append(append([]string{}, categoryLayout...), "category_id")
	subSubCategoryLayout = append(append([]string{}, categoryLayout...), "sub_category_id")
)

// LoadFiles reads the three taxonomy sources from disk and builds the
// store.
func LoadFiles(cfg FileConfig) (*Store, error) {
	categories, err := readSource(cfg.CategoriesPath, cfg.HasHeader, categoryLayout)
	if err != nil {
		return nil, fmt.Errorf("categories source: %w", err)
	}

	subCategories, err := readSource(cfg.SubCategoriesPath, cfg.HasHeader, subCategoryLayout)
	if err != nil {
		return nil, fmt.Errorf("sub-categories source: %w", err)
	}

	subSubCategories, err := readSource(cfg.SubSubCategoriesPath, cfg.HasHeader, subSubCategoryLayout)
	if err != nil {
		return nil, fmt.Errorf("sub-sub-categories source: %w", err)
	}

	return Load(categories, subCategories, subSubCategories)
}

func readSource(path string, hasHeader bool, layout []string) (*tabular.Table, error) {
	if hasHeader {
		return tabular.ReadCSVFile(path)
	}
	return tabular.ReadHeaderlessCSVFile(path, layout)
}
