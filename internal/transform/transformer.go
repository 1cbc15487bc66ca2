package transform

import (
	"fmt"
	"strings"

	"github.com/SalaazMarket/Converter/internal/mapping"
	"github.com/SalaazMarket/Converter/internal/schema"
	"github.com/SalaazMarket/Converter/internal/tabular"
	"github.com/SalaazMarket/Converter/internal/taxonomy"
)

// RowExcludedError signals that a row failed a hard data-quality
// requirement and is dropped from output. The reason appears in the
// validation report; the batch continues.
type RowExcludedError struct {
	Field  string
	Reason string
	Err    error
}

func (e *RowExcludedError) Error() string {
	return fmt.Sprintf("row excluded: %s: %s", e.Field, e.Reason)
}

func (e *RowExcludedError) Unwrap() error {
	return e.Err
}

// Config holds transformer settings.
type Config struct {
	DefaultCategoryID int64
	// VariantKeywords mark variant-related source columns. Empty means
	// DefaultVariantKeywords.
	VariantKeywords []string
}

// Transformer converts raw rows into TargetRows using a frozen field
// mapping. It holds no per-row state and is safe for concurrent use.
type Transformer struct {
	mapping        *mapping.Frozen
	matcher        *taxonomy.Matcher
	variantColumns []string
	cfg            Config
}

// NewTransformer builds a transformer for one conversion job. The
// header is the source table's column order; variant columns are
// selected from it up front so per-row work stays allocation-light.
// Columns the mapping has claimed for other target fields are never
// variant sources, so a mapped "Variant Price" column stays a price.
func NewTransformer(frozen *mapping.Frozen, matcher *taxonomy.Matcher, header []string, cfg Config) *Transformer {
	keywords := cfg.VariantKeywords
	if len(keywords) == 0 {
		keywords = DefaultVariantKeywords()
	}

	return &Transformer{
		mapping:        frozen,
		matcher:        matcher,
		variantColumns: VariantColumns(unclaimedColumns(frozen, header), keywords),
		cfg:            cfg,
	}
}

// unclaimedColumns filters the header down to columns not mapped to a
// non-variant target field, preserving header order.
func unclaimedColumns(frozen *mapping.Frozen, header []string) []string {
	claimed := make(map[string]bool)
	for _, field := range frozen.Fields() {
		if field == schema.FieldVariantAttributes {
			continue
		}
		if col, ok := frozen.Source(field); ok {
			claimed[col] = true
		}
	}

	columns := make([]string, 0, len(header))
	for _, col := range header {
		if !claimed[col] {
			columns = append(columns, col)
		}
	}
	return columns
}

// TransformRow produces a TargetRow from one raw row. A returned
// *RowExcludedError excludes the row without failing the batch.
func (t *Transformer) TransformRow(row tabular.Row) (*TargetRow, error) {
	name := t.cell(row, schema.FieldName)
	if name == "" {
		return nil, &RowExcludedError{Field: schema.FieldName, Reason: "missing required value"}
	}

	description := t.cell(row, schema.FieldDescription)
	if description == "" {
		return nil, &RowExcludedError{Field: schema.FieldDescription, Reason: "missing required value"}
	}

	rawPrice := t.cell(row, schema.FieldPrice)
	price, err := CleanPrice(rawPrice)
	if err != nil {
		return nil, &RowExcludedError{
			Field:  schema.FieldPrice,
			Reason: fmt.Sprintf("invalid price %q", rawPrice),
			Err:    err,
		}
	}

	out := &TargetRow{
		Name:        name,
		Description: description,
		Price:       price,
		Brand:       t.cell(row, schema.FieldBrand),
	}

	t.resolveCategories(row, out)

	out.VariantAttributes = CollectVariantAttributes(row, t.variantColumns)
	out.ImageURLs = ParseImageURLs(t.cell(row, schema.FieldImageURLs))

	out.Certification = t.optional(row, schema.FieldCertification)
	out.CountryOfOrigin = t.optional(row, schema.FieldCountryOfOrigin)
	out.Details = t.optional(row, schema.FieldDetails)
	out.Care = t.optional(row, schema.FieldCare)
	out.SizeFit = t.optional(row, schema.FieldSizeFit)
	out.VariantQuantity = t.optional(row, schema.FieldVariantQuantity)

	return out, nil
}

// resolveCategories delegates the mapped category text to the path
// matcher. Without a mapped category column the default id applies
// directly.
func (t *Transformer) resolveCategories(row tabular.Row, out *TargetRow) {
	col, ok := t.mapping.Source(schema.FieldCategoryID)
	if !ok {
		out.CategoryID = t.cfg.DefaultCategoryID
		return
	}

	match := t.matcher.Match(row[col])
	out.CategoryID = match.CategoryID
	out.SubCategoryID = match.SubCategoryID
	out.SubSubCategoryID = match.SubSubCategoryID
}

// cell returns the trimmed mapped value for a target field, or "".
func (t *Transformer) cell(row tabular.Row, field string) string {
	col, ok := t.mapping.Source(field)
	if !ok {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// optional returns the mapped value with empty-string normalized to
// nil.
func (t *Transformer) optional(row tabular.Row, field string) *string {
	value := t.cell(row, field)
	if value == "" {
		return nil
	}
	return &value
}
