// Package mapping builds the per-job assignment of target schema
// fields to source columns: automatic proposal, manual overrides, and
// the finalize gate before transformation.
package mapping

import (
	"strings"

	"github.com/SalaazMarket/Converter/internal/platform"
	"github.com/SalaazMarket/Converter/internal/schema"
)

// FieldMapping maps a target field name to its source column. Absent
// keys are unmapped fields.
type FieldMapping map[string]string

// fuzzyKeywords drive the last-resort column tests for fields the
// profile could not map. Order within a list is preference order.
var fuzzyKeywords = map[string][]string{
	schema.FieldName:            {"title", "name", "product"},
	schema.FieldDescription:     {"description", "body", "content", "details"},
	schema.FieldPrice:           {"price", "cost", "amount"},
	schema.FieldBrand:           {"brand", "vendor", "manufacturer"},
	schema.FieldCategoryID:      {"category", "type", "tags", "classification", "department"},
	schema.FieldVariantQuantity: {"quantity", "stock", "inventory", "qty"},
	schema.FieldImageURLs:       {"image", "photo", "picture", "url"},
}

// Propose builds the initial mapping for a header: per target field,
// the first profile candidate present in the header wins; fields the
// profile leaves unmapped fall back to deterministic fuzzy column
// tests. Proposing twice over the same inputs yields the same mapping.
func Propose(header []string, profile platform.Profile) FieldMapping {
	m := make(FieldMapping)

	for _, field := range schema.AllFields() {
		candidates := profile.FieldCandidates[field]
		if col, ok := firstPresent(header, candidates); ok {
			m[field] = col
		}
	}

	for _, field := range schema.AllFields() {
		if _, ok := m[field]; ok {
			continue
		}
		if col, ok := fuzzyMatchColumn(field, header); ok {
			m[field] = col
		}
	}

	return m
}

// firstPresent returns the first candidate that appears in the header,
// case-insensitively, preserving the header's own spelling.
func firstPresent(header, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		for _, col := range header {
			if strings.EqualFold(col, candidate) {
				return col, true
			}
		}
	}
	return "", false
}

// fuzzyMatchColumn finds the best header column for a target field:
// exact name match, then partial containment in either direction, then
// keyword tests. Header order breaks ties, so the result is stable.
func fuzzyMatchColumn(field string, header []string) (string, bool) {
	target := strings.ToLower(field)

	for _, col := range header {
		if strings.ToLower(col) == target {
			return col, true
		}
	}

	for _, col := range header {
		lower := strings.ToLower(col)
		if strings.Contains(lower, target) || strings.Contains(target, lower) {
			return col, true
		}
	}

	for _, keyword := range fuzzyKeywords[field] {
		for _, col := range header {
			if strings.Contains(strings.ToLower(col), keyword) {
				return col, true
			}
		}
	}

	return "", false
}
