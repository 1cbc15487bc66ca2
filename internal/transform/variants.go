package transform

import (
	"regexp"
	"strings"

	"github.com/SalaazMarket/Converter/internal/tabular"
)

// DefaultVariantKeywords mark source columns holding variant data.
func DefaultVariantKeywords() []string {
	return []string{"color", "colour", "size", "material", "style", "option", "variant", "attribute"}
}

var attrNameClean = regexp.MustCompile(`[^\w]`)

// VariantColumns returns the source columns whose names contain a
// variant keyword, preserving header order.
func VariantColumns(header []string, keywords []string) []string {
	var columns []string
	for _, col := range header {
		lower := strings.ToLower(col)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				columns = append(columns, col)
				break
			}
		}
	}
	return columns
}

// CollectVariantAttributes assembles the variant columns of one row
// into a single attribute map keyed by cleaned attribute name,
// omitting empty values. An empty map means no variant data.
func CollectVariantAttributes(row tabular.Row, columns []string) map[string]string {
	attrs := make(map[string]string)
	for _, col := range columns {
		value := strings.TrimSpace(row[col])
		if value == "" {
			continue
		}
		attrs[cleanAttributeName(col)] = value
	}
	return attrs
}

// cleanAttributeName lowercases the column name and reduces it to word
// characters, "Option1 Name" -> "option1_name".
func cleanAttributeName(col string) string {
	name := strings.ToLower(strings.TrimSpace(col))
	name = strings.ReplaceAll(name, " ", "_")
	return attrNameClean.ReplaceAllString(name, "")
}
