package commands

import (
	"fmt"
	"strings"

	"github.com/SalaazMarket/Converter/cmd/salaaz-convert/ui"
	"github.com/SalaazMarket/Converter/internal/config"
	"github.com/SalaazMarket/Converter/internal/convert"
	"github.com/SalaazMarket/Converter/internal/observability"
	"github.com/SalaazMarket/Converter/internal/taxonomy"
)

// setup loads configuration, initializes the UI and logger, and builds
// the pipeline over the loaded taxonomy.
func setup() (*config.Config, *convert.Pipeline, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	ui.Init(noColor, verbose)

	logLevel := cfg.Observability.LogLevel
	if verbose {
		logLevel = "debug"
	}
	logger := observability.NewLogger(observability.LogConfig{
		Level:       logLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: "salaaz-convert",
	})

	spin := ui.NewSpinner("Loading taxonomy...")
	spin.Start()
	store, err := taxonomy.LoadFiles(taxonomy.FileConfig{
		CategoriesPath:       cfg.Taxonomy.CategoriesPath,
		SubCategoriesPath:    cfg.Taxonomy.SubCategoriesPath,
		SubSubCategoriesPath: cfg.Taxonomy.SubSubCategoriesPath,
		HasHeader:            cfg.Taxonomy.HasHeader,
	})
	spin.Stop()
	if err != nil {
		return nil, nil, fmt.Errorf("load taxonomy: %w", err)
	}

	synonyms, err := buildSynonyms(cfg)
	if err != nil {
		return nil, nil, err
	}

	pipeline := convert.NewPipeline(logger, store, synonyms, convert.Config{
		Workers:           cfg.Conversion.Workers,
		DefaultCategoryID: cfg.Conversion.DefaultCategoryID,
		MinSignatureHits:  cfg.Platform.MinSignatureHits,
		PlatformPriority:  cfg.Platform.Priority,
	})

	return cfg, pipeline, nil
}

// buildSynonyms merges the built-in groups with any configured file
// and inline groups.
func buildSynonyms(cfg *config.Config) (*taxonomy.SynonymTable, error) {
	groups := taxonomy.DefaultSynonymGroups()

	if cfg.Synonyms.File != "" {
		fileGroups, err := taxonomy.LoadSynonymGroups(cfg.Synonyms.File)
		if err != nil {
			return nil, fmt.Errorf("load synonyms: %w", err)
		}
		groups = append(groups, fileGroups...)
	}

	groups = append(groups, cfg.Synonyms.Groups...)
	return taxonomy.NewSynonymTable(groups), nil
}

// parseOverrides parses --map flags of the form field=Column.
func parseOverrides(flags []string) (map[string]string, error) {
	overrides := make(map[string]string, len(flags))
	for _, flag := range flags {
		parts := strings.SplitN(flag, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid --map value %q, expected field=Column", flag)
		}
		overrides[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return overrides, nil
}
