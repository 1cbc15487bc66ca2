package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFilesHeaderless(t *testing.T) {
	dir := t.TempDir()

	cfg := FileConfig{
		CategoriesPath: writeTempCSV(t, dir, "categories.csv",
			"1,Other,desc,true,2024-01-01,2024-01-01\n"+
				"175,Apparel & Accessories,desc,true,2024-01-01,2024-01-01\n"),
		SubCategoriesPath: writeTempCSV(t, dir, "sub_categories.csv",
			"869,Clothing,desc,true,2024-01-01,2024-01-01,175\n"),
		SubSubCategoriesPath: writeTempCSV(t, dir, "sub_sub_categories.csv",
			"9001,T-Shirts,desc,true,2024-01-01,2024-01-01,869\n"),
	}

	store, err := LoadFiles(cfg)
	require.NoError(t, err)

	category := store.Lookup(LevelCategory, 175)
	require.NotNil(t, category)
	assert.Equal(t, "Apparel & Accessories", category.Name)

	sub := store.Lookup(LevelSubCategory, 869)
	require.NotNil(t, sub)
	assert.Equal(t, int64(175), sub.ParentID)

	subSub := store.Lookup(LevelSubSubCategory, 9001)
	require.NotNil(t, subSub)
	assert.Equal(t, int64(869), subSub.ParentID)
}

func TestLoadFilesWithHeader(t *testing.T) {
	dir := t.TempDir()

	cfg := FileConfig{
		CategoriesPath:       writeTempCSV(t, dir, "categories.csv", "id,name\n1,Other\n"),
		SubCategoriesPath:    writeTempCSV(t, dir, "sub_categories.csv", "id,name,category_id\n10,Sub,1\n"),
		SubSubCategoriesPath: writeTempCSV(t, dir, "sub_sub_categories.csv", "id,name,sub_category_id\n100,SubSub,10\n"),
		HasHeader:            true,
	}

	store, err := LoadFiles(cfg)
	require.NoError(t, err)
	assert.NotNil(t, store.Lookup(LevelSubSubCategory, 100))
}

func TestLoadFilesMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFiles(FileConfig{
		CategoriesPath:       filepath.Join(dir, "missing.csv"),
		SubCategoriesPath:    filepath.Join(dir, "missing.csv"),
		SubSubCategoriesPath: filepath.Join(dir, "missing.csv"),
	})
	assert.ErrorContains(t, err, "categories source")
}
