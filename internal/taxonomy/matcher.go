package taxonomy

import (
	"strings"
)

// PathSeparator splits hierarchical category paths like
// "Apparel & Accessories > Clothing > Men's Clothing".
const PathSeparator = ">"

// Match is the resolved id triple for a category path. SubCategoryID
// and SubSubCategoryID are nil when their level could not be resolved;
// CategoryID always carries a value because unmatched paths fall back
// to the default category.
type Match struct {
	CategoryID       int64
	SubCategoryID    *int64
	SubSubCategoryID *int64
}

// Matcher resolves free-text category paths against the taxonomy.
// It is a pure function over the immutable store and synonym table and
// is safe for concurrent use.
type Matcher struct {
	store             *Store
	synonyms          *SynonymTable
	defaultCategoryID int64
}

// NewMatcher creates a matcher. Paths that fail category-level
// matching resolve to defaultCategoryID rather than an error.
func NewMatcher(store *Store, synonyms *SynonymTable, defaultCategoryID int64) *Matcher {
	if synonyms == nil {
		synonyms = NewSynonymTable(nil)
	}
	return &Matcher{
		store:             store,
		synonyms:          synonyms,
		defaultCategoryID: defaultCategoryID,
	}
}

// Match resolves up to three taxonomy ids from a category path. It
// never fails: an unmatched category yields the default id with nil
// sub-levels, and a partially matched path leaves the unmatched lower
// levels nil.
func (m *Matcher) Match(path string) Match {
	segments := splitPath(path)

	result := Match{CategoryID: m.defaultCategoryID}
	if len(segments) == 0 {
		return result
	}

	category := m.matchLevel(m.store.All(LevelCategory), segments[0])
	if category == nil {
		return result
	}
	result.CategoryID = category.ID

	// Lower levels are constrained to the resolved parent; without one
	// they are skipped so no orphan ids are ever assigned.
	if len(segments) < 2 {
		return result
	}
	sub := m.matchLevel(m.store.ChildrenOf(LevelSubCategory, category.ID), segments[1])
	if sub == nil {
		return result
	}
	result.SubCategoryID = &sub.ID

	if len(segments) < 3 {
		return result
	}
	subSub := m.matchLevel(m.store.ChildrenOf(LevelSubSubCategory, sub.ID), segments[2])
	if subSub == nil {
		return result
	}
	result.SubSubCategoryID = &subSub.ID

	return result
}

// matchLevel tries the match tiers in strict precedence order against
// the candidate nodes, short-circuiting on the first success. Within a
// tier the first node in load order wins, which keeps ties
// deterministic.
func (m *Matcher) matchLevel(nodes []Node, candidate string) *Node {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || len(nodes) == 0 {
		return nil
	}

	if n := matchExact(nodes, candidate); n != nil {
		return n
	}
	if n := matchSubstring(nodes, candidate); n != nil {
		return n
	}

	for _, expanded := range m.expand(candidate) {
		if n := matchExact(nodes, expanded); n != nil {
			return n
		}
	}
	for _, expanded := range m.expand(candidate) {
		if n := matchSubstring(nodes, expanded); n != nil {
			return n
		}
	}

	return nil
}

// expand rewrites the candidate once per recognized synonym term,
// substituting every member of that term's group. Order follows the
// synonym table's term order, so expansion is deterministic.
func (m *Matcher) expand(candidate string) []string {
	lower := strings.ToLower(candidate)

	var expanded []string
	for _, term := range m.synonyms.Terms() {
		if !strings.Contains(lower, term) {
			continue
		}
		for _, member := range m.synonyms.Expansions(term) {
			expanded = append(expanded, strings.ReplaceAll(lower, term, member))
		}
	}
	return expanded
}

func matchExact(nodes []Node, candidate string) *Node {
	for i := range nodes {
		if strings.EqualFold(nodes[i].Name, candidate) {
			return &nodes[i]
		}
	}
	return nil
}

func matchSubstring(nodes []Node, candidate string) *Node {
	lower := strings.ToLower(candidate)
	for i := range nodes {
		name := strings.ToLower(nodes[i].Name)
		if strings.Contains(lower, name) || strings.Contains(name, lower) {
			return &nodes[i]
		}
	}
	return nil
}

func splitPath(path string) []string {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	parts := strings.Split(path, PathSeparator)
	segments := make([]string, 0, 3)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		segments = append(segments, part)
		if len(segments) == 3 {
			break
		}
	}
	return segments
}
