package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestMatcherMatch(t *testing.T) {
	store := testStore(t)
	matcher := NewMatcher(store, NewSynonymTable(DefaultSynonymGroups()), 1)

	tests := []struct {
		name string
		path string
		want Match
	}{
		{
			name: "empty path falls back to default",
			path: "",
			want: Match{CategoryID: 1},
		},
		{
			name: "whitespace only falls back to default",
			path: "   ",
			want: Match{CategoryID: 1},
		},
		{
			name: "unmatched category falls back to default",
			path: "Garden Tools",
			want: Match{CategoryID: 1},
		},
		{
			name: "category only",
			path: "Electronics",
			want: Match{CategoryID: 300},
		},
		{
			name: "full path with unmatched third level",
			path: "Apparel & Accessories > Clothing > Men's Clothing",
			want: Match{CategoryID: 175, SubCategoryID: int64Ptr(869)},
		},
		{
			name: "full path resolved at all levels",
			path: "apparel & accessories > clothing > t-shirts",
			want: Match{CategoryID: 175, SubCategoryID: int64Ptr(869), SubSubCategoryID: int64Ptr(9001)},
		},
		{
			name: "substring match in either direction",
			path: "Electronics & Gadgets",
			want: Match{CategoryID: 300},
		},
		{
			name: "synonym expansion at category level",
			path: "Fashion > Clothing",
			want: Match{CategoryID: 175, SubCategoryID: int64Ptr(869)},
		},
		{
			name: "sub level constrained to resolved parent",
			path: "Home & Living > Clothing",
			want: Match{CategoryID: 200},
		},
		{
			name: "unresolved category skips lower levels",
			path: "Garden Tools > Clothing > T-Shirts",
			want: Match{CategoryID: 1},
		},
		{
			name: "segments past the third are ignored",
			path: "Apparel & Accessories > Clothing > T-Shirts > Extra",
			want: Match{CategoryID: 175, SubCategoryID: int64Ptr(869), SubSubCategoryID: int64Ptr(9001)},
		},
		{
			name: "empty segments are skipped",
			path: " > Apparel & Accessories >  > Clothing",
			want: Match{CategoryID: 175, SubCategoryID: int64Ptr(869)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Match(tt.path))
		})
	}
}

func TestMatcherExactBeatsSubstring(t *testing.T) {
	categories := makeTable([]string{"id", "name"},
		[]string{"1", "Other"},
		[]string{"2", "Clothing & More"},
		[]string{"3", "Clothing"},
	)
	subCategories := makeTable([]string{"id", "name", "category_id"})
	subSubCategories := makeTable([]string{"id", "name", "sub_category_id"})

	store, err := Load(categories, subCategories, subSubCategories)
	assert.NoError(t, err)

	matcher := NewMatcher(store, nil, 1)
	assert.Equal(t, int64(3), matcher.Match("clothing").CategoryID)
}

func TestMatcherTieBreaksByLoadOrder(t *testing.T) {
	categories := makeTable([]string{"id", "name"},
		[]string{"5", "Home Decor"},
		[]string{"6", "Home Furniture"},
	)
	subCategories := makeTable([]string{"id", "name", "category_id"})
	subSubCategories := makeTable([]string{"id", "name", "sub_category_id"})

	store, err := Load(categories, subCategories, subSubCategories)
	assert.NoError(t, err)

	// "Home" is a substring of both names; the first loaded node wins.
	matcher := NewMatcher(store, nil, 1)
	assert.Equal(t, int64(5), matcher.Match("Home").CategoryID)
}

func TestMatcherIsDeterministic(t *testing.T) {
	store := testStore(t)
	matcher := NewMatcher(store, NewSynonymTable(DefaultSynonymGroups()), 1)

	path := "Fashion > Clothing > T-Shirts"
	first := matcher.Match(path)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, matcher.Match(path))
	}
}
