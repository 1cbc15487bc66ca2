// Package commands wires the converter CLI.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "salaaz-convert",
	Short: "Convert e-commerce catalog exports to the Salaaz bulk-upload format",
	Long: `salaaz-convert maps product exports from Shopify, Amazon, WooCommerce,
or any custom CSV/Excel layout onto the Salaaz marketplace schema,
resolving free-text category paths against the Salaaz taxonomy.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
