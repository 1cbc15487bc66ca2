package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Conversion.Workers)
	assert.Equal(t, int64(1), cfg.Conversion.DefaultCategoryID)
	assert.Equal(t, []string{"shopify", "amazon", "woocommerce"}, cfg.Platform.Priority)
	assert.False(t, cfg.Taxonomy.HasHeader)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
taxonomy:
  categories_path: /data/categories.csv
  has_header: true
conversion:
  workers: 8
  default_category_id: 2
observability:
  log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/categories.csv", cfg.Taxonomy.CategoriesPath)
	assert.True(t, cfg.Taxonomy.HasHeader)
	assert.Equal(t, 8, cfg.Conversion.Workers)
	assert.Equal(t, int64(2), cfg.Conversion.DefaultCategoryID)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)

	// Untouched sections keep their defaults.
	assert.Equal(t, "sub_categories.csv", cfg.Taxonomy.SubCategoriesPath)
	assert.Equal(t, 1, cfg.Platform.MinSignatureHits)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("conversion: ["), 0o644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "parse config file")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("conversion:\n  workers: 0\n"), 0o644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "workers must be at least 1")
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TAXONOMY_DIR", "/srv/taxonomy")
	t.Setenv("CONVERT_WORKERS", "16")
	t.Setenv("DEFAULT_CATEGORY_ID", "3")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/srv/taxonomy", "categories.csv"), cfg.Taxonomy.CategoriesPath)
	assert.Equal(t, filepath.Join("/srv/taxonomy", "sub_sub_categories.csv"), cfg.Taxonomy.SubSubCategoriesPath)
	assert.Equal(t, 16, cfg.Conversion.Workers)
	assert.Equal(t, int64(3), cfg.Conversion.DefaultCategoryID)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Conversion.Workers = 0 },
			wantMsg: "workers must be at least 1",
		},
		{
			name:    "zero default category",
			mutate:  func(c *Config) { c.Conversion.DefaultCategoryID = 0 },
			wantMsg: "default category id must be positive",
		},
		{
			name:    "zero min signature hits",
			mutate:  func(c *Config) { c.Platform.MinSignatureHits = 0 },
			wantMsg: "min_signature_hits must be at least 1",
		},
		{
			name:    "empty platform priority",
			mutate:  func(c *Config) { c.Platform.Priority = nil },
			wantMsg: "priority order must not be empty",
		},
		{
			name:    "single-term synonym group",
			mutate:  func(c *Config) { c.Synonyms.Groups = [][]string{{"alone"}} },
			wantMsg: "at least two terms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantMsg)
		})
	}
}

func TestResolveRelativePath(t *testing.T) {
	assert.Equal(t, "/abs/path.csv", ResolveRelativePath("/etc/app/config.yaml", "/abs/path.csv"))
	assert.Equal(t, filepath.Join("/etc/app", "data.csv"), ResolveRelativePath("/etc/app/config.yaml", "data.csv"))
}
