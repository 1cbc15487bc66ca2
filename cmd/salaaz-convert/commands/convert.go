package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SalaazMarket/Converter/cmd/salaaz-convert/ui"
	"github.com/SalaazMarket/Converter/internal/convert"
	"github.com/SalaazMarket/Converter/internal/tabular"
	"github.com/SalaazMarket/Converter/internal/transform"
)

var (
	convertOutPath   string
	convertOverrides []string
)

var convertCmd = &cobra.Command{
	Use:   "convert <input-file>",
	Short: "Convert a catalog export to the Salaaz bulk-upload format",
	Long: `Convert reads a CSV or Excel product export, detects the source
platform, maps its columns onto the Salaaz schema, resolves category
paths against the taxonomy, and writes the converted file plus a
validation report.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutPath, "out", "o", "", "output file path (default: <input>_salaaz.csv)")
	convertCmd.Flags().StringArrayVarP(&convertOverrides, "map", "m", nil, "manual mapping override, field=Column (repeatable)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	_, pipeline, err := setup()
	if err != nil {
		return err
	}

	inputPath := args[0]
	outPath := convertOutPath
	if outPath == "" {
		outPath = defaultOutPath(inputPath)
	}

	overrides, err := parseOverrides(convertOverrides)
	if err != nil {
		return err
	}

	spin := ui.NewSpinner(fmt.Sprintf("Reading %s...", inputPath))
	spin.Start()
	table, err := tabular.ReadFile(inputPath)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	ui.Info("Found %d rows and %d columns", table.Len(), len(table.Columns))

	bar := ui.NewProgressBar(int64(table.Len()), "Converting")
	result, err := pipeline.Convert(cmd.Context(), convert.Request{
		Table:     table,
		Overrides: overrides,
		OnRow: func(done, total int) {
			bar.Set(int64(done))
		},
	})
	bar.Finish()
	if err != nil {
		return err
	}

	if err := tabular.WriteFile(outPath, transform.ToTable(result.Rows)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	printReport(result)
	ui.Success("Wrote %d rows to %s", result.Report.OutputRows, outPath)
	return nil
}

func printReport(result *convert.Result) {
	ui.Section("Conversion Report")
	ui.KeyValue("Job", result.JobID.String())
	ui.KeyValue("Platform", result.Platform)
	ui.KeyValue("Total rows", strconv.Itoa(result.Report.TotalRows))
	ui.KeyValue("Output rows", strconv.Itoa(result.Report.OutputRows))
	ui.KeyValue("Excluded rows", strconv.Itoa(result.Report.ExcludedRows))
	ui.KeyValue("Rows with validation issues", strconv.Itoa(result.Report.InvalidRows))

	if len(result.Report.Entries) > 0 {
		fmt.Println()
		rows := make([][]string, 0, len(result.Report.Entries))
		for _, entry := range result.Report.Entries {
			rows = append(rows, []string{
				strconv.Itoa(entry.RowIndex + 1),
				entry.Field,
				entry.Reason,
			})
		}
		ui.Table([]string{"Row", "Field", "Reason"}, rows)
	}
}

// defaultOutPath derives the output file name from the input,
// products.csv -> products_salaaz.csv.
func defaultOutPath(inputPath string) string {
	base := inputPath
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base + "_salaaz.csv"
}
