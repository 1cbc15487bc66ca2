// Package taxonomy provides the three-level reference category
// hierarchy and fuzzy matching of free-text category paths against it.
package taxonomy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SalaazMarket/Converter/internal/tabular"
)

// Level identifies one of the three taxonomy levels.
type Level int

const (
	LevelCategory Level = iota
	LevelSubCategory
	LevelSubSubCategory
)

// String returns the level name used in errors and logs.
func (l Level) String() string {
	switch l {
	case LevelCategory:
		return "category"
	case LevelSubCategory:
		return "sub_category"
	case LevelSubSubCategory:
		return "sub_sub_category"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Node is a single taxonomy entry. ParentID is zero for top-level
// categories, which have no parent.
type Node struct {
	ID       int64
	Name     string
	ParentID int64
}

// LoadError reports a malformed taxonomy source. It is fatal to the
// conversion job.
type LoadError struct {
	Level  Level
	Reason string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s taxonomy: %s", e.Level, e.Reason)
}

// Store indexes the three taxonomy levels. It is built once at startup
// and read-only thereafter, so it may be shared across jobs without
// locking.
type Store struct {
	levels   [3][]Node
	byID     [3]map[int64]int
	children [3]map[int64][]int
}

// parentColumns lists accepted parent-id column names per level, in
// preference order. The reference exports name the parent column after
// the parent level.
var parentColumns = [3][]string{
	LevelSubCategory:    {"category_id", "parent_id"},
	LevelSubSubCategory: {"sub_category_id", "parent_id"},
}

// Load builds a Store from the three tabular sources. It fails with a
// *LoadError if a required column is missing, an id is duplicated
// within a level, or a parent reference points nowhere.
func Load(categories, subCategories, subSubCategories *tabular.Table) (*Store, error) {
	s := &Store{}
	sources := [3]*tabular.Table{categories, subCategories, subSubCategories}

	for level := LevelCategory; level <= LevelSubSubCategory; level++ {
		nodes, err := loadLevel(level, sources[level])
		if err != nil {
			return nil, err
		}

		s.levels[level] = nodes
		s.byID[level] = make(map[int64]int, len(nodes))
		s.children[level] = make(map[int64][]int)
		for i, n := range nodes {
			s.byID[level][n.ID] = i
			s.children[level][n.ParentID] = append(s.children[level][n.ParentID], i)
		}
	}

	// Referential integrity: every parent id must exist one level up.
	for level := LevelSubCategory; level <= LevelSubSubCategory; level++ {
		for _, n := range s.levels[level] {
			if _, ok := s.byID[level-1][n.ParentID]; !ok {
				return nil, &LoadError{
					Level:  level,
					Reason: fmt.Sprintf("node %d (%s) references unknown parent %d", n.ID, n.Name, n.ParentID),
				}
			}
		}
	}

	return s, nil
}

func loadLevel(level Level, source *tabular.Table) ([]Node, error) {
	if source == nil {
		return nil, &LoadError{Level: level, Reason: "source table is nil"}
	}

	for _, required := range []string{"id", "name"} {
		if !source.HasColumn(required) {
			return nil, &LoadError{Level: level, Reason: fmt.Sprintf("missing required column %q", required)}
		}
	}

	parentCol := ""
	if level != LevelCategory {
		for _, candidate := range parentColumns[level] {
			if source.HasColumn(candidate) {
				parentCol = candidate
				break
			}
		}
		if parentCol == "" {
			return nil, &LoadError{
				Level:  level,
				Reason: fmt.Sprintf("missing parent column (one of %s)", strings.Join(parentColumns[level], ", ")),
			}
		}
	}

	nodes := make([]Node, 0, source.Len())
	seen := make(map[int64]bool, source.Len())

	for i, row := range source.Rows {
		id, err := strconv.ParseInt(strings.TrimSpace(row["id"]), 10, 64)
		if err != nil {
			return nil, &LoadError{Level: level, Reason: fmt.Sprintf("row %d: invalid id %q", i, row["id"])}
		}
		if seen[id] {
			return nil, &LoadError{Level: level, Reason: fmt.Sprintf("duplicate id %d", id)}
		}
		seen[id] = true

		node := Node{ID: id, Name: strings.TrimSpace(row["name"])}
		if parentCol != "" {
			parent, err := strconv.ParseInt(strings.TrimSpace(row[parentCol]), 10, 64)
			if err != nil {
				return nil, &LoadError{Level: level, Reason: fmt.Sprintf("row %d: invalid %s %q", i, parentCol, row[parentCol])}
			}
			node.ParentID = parent
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

// Lookup returns the node with the given id at the given level, or nil.
func (s *Store) Lookup(level Level, id int64) *Node {
	idx, ok := s.byID[level][id]
	if !ok {
		return nil
	}
	return &s.levels[level][idx]
}

// ChildrenOf returns the nodes at the given level whose parent is
// parentID, in load order.
func (s *Store) ChildrenOf(level Level, parentID int64) []Node {
	indexes := s.children[level][parentID]
	nodes := make([]Node, 0, len(indexes))
	for _, idx := range indexes {
		nodes = append(nodes, s.levels[level][idx])
	}
	return nodes
}

// All returns every node at the given level, in load order.
func (s *Store) All(level Level) []Node {
	return s.levels[level]
}
