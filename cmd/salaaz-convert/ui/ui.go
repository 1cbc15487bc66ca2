// Package ui provides terminal output components for the converter CLI.
package ui

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

var verboseFlag bool

// Init configures color and verbosity for all UI output.
func Init(noColor, verbose bool) {
	verboseFlag = verbose
	if noColor {
		color.NoColor = true
	}
}

// Success displays a success message.
func Success(format string, args ...interface{}) {
	color.New(color.FgGreen).Printf("✓ %s\n", fmt.Sprintf(format, args...))
}

// Error displays an error message to stderr.
func Error(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ %s\n", fmt.Sprintf(format, args...))
}

// Warning displays a warning message.
func Warning(format string, args ...interface{}) {
	color.New(color.FgYellow).Printf("⚠ %s\n", fmt.Sprintf(format, args...))
}

// Info displays an informational message.
func Info(format string, args ...interface{}) {
	color.New(color.FgCyan).Printf("ℹ %s\n", fmt.Sprintf(format, args...))
}

// Verbose displays a message only when verbose output is enabled.
func Verbose(format string, args ...interface{}) {
	if verboseFlag {
		fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
	}
}

// Section displays a section header.
func Section(title string) {
	fmt.Printf("\n%s\n%s\n\n", title, strings.Repeat("=", len(title)))
}

// KeyValue displays an indented key-value pair.
func KeyValue(key, value string) {
	fmt.Printf("  %s: %s\n", key, value)
}

// Table displays data in a formatted table.
func Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))

	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = strings.Repeat("-", len(headers[i]))
	}
	fmt.Fprintln(w, strings.Join(separator, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	_ = w.Flush()
}
