package taxonomy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SynonymTable holds symmetric groups of interchangeable terms used to
// widen fuzzy category matching. Immutable after construction.
type SynonymTable struct {
	// terms preserves insertion order so expansion is deterministic.
	terms  []string
	groups map[string][]string // lowercased term -> all group members
}

// NewSynonymTable builds a table from term groups. Terms are matched
// case-insensitively; membership is symmetric within a group. A term
// appearing in several groups expands to the union of them.
func NewSynonymTable(groups [][]string) *SynonymTable {
	t := &SynonymTable{groups: make(map[string][]string)}

	for _, group := range groups {
		normalized := make([]string, 0, len(group))
		for _, term := range group {
			term = strings.ToLower(strings.TrimSpace(term))
			if term != "" {
				normalized = append(normalized, term)
			}
		}

		for _, term := range normalized {
			if _, ok := t.groups[term]; !ok {
				t.terms = append(t.terms, term)
			}
			for _, member := range normalized {
				if member != term && !contains(t.groups[term], member) {
					t.groups[term] = append(t.groups[term], member)
				}
			}
		}
	}

	return t
}

// Terms returns every known term in a stable order.
func (t *SynonymTable) Terms() []string {
	return t.terms
}

// Expansions returns the other members of the term's group, or nil for
// an unknown term.
func (t *SynonymTable) Expansions(term string) []string {
	return t.groups[strings.ToLower(strings.TrimSpace(term))]
}

// synonymFile is the YAML layout of an external synonym configuration.
type synonymFile struct {
	Groups [][]string `yaml:"groups"`
}

// LoadSynonymGroups reads term groups from a YAML file.
func LoadSynonymGroups(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read synonym file: %w", err)
	}

	var f synonymFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse synonym file: %w", err)
	}

	for i, g := range f.Groups {
		if len(g) < 2 {
			return nil, fmt.Errorf("synonym group %d needs at least two terms", i)
		}
	}

	return f.Groups, nil
}

// DefaultSynonymGroups returns the built-in term groups covering the
// vendor vocabulary most often seen in marketplace exports.
func DefaultSynonymGroups() [][]string {
	return [][]string{
		{"apparel", "clothing", "clothes", "fashion"},
		{"accessories", "jewelry", "jewellery", "watches"},
		{"traditional", "ceremonial", "cultural"},
		{"health", "beauty", "wellness"},
		{"home", "house", "living", "decor"},
		{"electronics", "tech", "digital"},
		{"books", "literature", "reading"},
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
