package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SalaazMarket/Converter/cmd/salaaz-convert/ui"
	"github.com/SalaazMarket/Converter/internal/schema"
	"github.com/SalaazMarket/Converter/internal/tabular"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input-file>",
	Short: "Detect the source platform and show the proposed field mapping",
	Long: `Inspect reads a catalog export, detects the source platform, and
prints the automatic field mapping without converting anything. Use it
to decide which --map overrides a convert run needs.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, pipeline, err := setup()
	if err != nil {
		return err
	}

	table, err := tabular.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	profile, proposal := pipeline.ProposeMapping(table.Columns)

	ui.Section("Platform Detection")
	if profile.IsCustom() {
		ui.Warning("Could not auto-detect platform; mapping falls back to column name tests")
	} else {
		ui.Info("Detected platform: %s", profile.Name)
	}

	ui.Section("Proposed Field Mapping")
	var rows [][]string
	var missing []string
	for _, field := range schema.AllFields() {
		source, ok := proposal[field]
		if !ok {
			source = "(unmapped)"
			if schema.IsRequired(field) {
				missing = append(missing, field)
			}
		}
		rows = append(rows, []string{field, source})
	}
	ui.Table([]string{"Target Field", "Source Column"}, rows)

	if len(missing) > 0 {
		fmt.Println()
		ui.Warning("Required fields still unmapped: %v", missing)
	}

	return nil
}
