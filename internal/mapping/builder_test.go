package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalaazMarket/Converter/internal/schema"
)

func fullMapping() FieldMapping {
	return FieldMapping{
		schema.FieldName:        "Title",
		schema.FieldDescription: "Body",
		schema.FieldPrice:       "Price",
		schema.FieldBrand:       "Vendor",
		schema.FieldCategoryID:  "Category",
	}
}

func fullHeader() []string {
	return []string{"Title", "Body", "Price", "Vendor", "Category", "SKU"}
}

func TestBuilderFinalize(t *testing.T) {
	builder := NewBuilder(fullMapping(), fullHeader())

	frozen, err := builder.Finalize()
	require.NoError(t, err)

	col, ok := frozen.Source(schema.FieldName)
	require.True(t, ok)
	assert.Equal(t, "Title", col)

	_, ok = frozen.Source(schema.FieldImageURLs)
	assert.False(t, ok)
}

func TestBuilderOverride(t *testing.T) {
	builder := NewBuilder(fullMapping(), fullHeader())

	require.NoError(t, builder.Override(schema.FieldBrand, "SKU"))

	frozen, err := builder.Finalize()
	require.NoError(t, err)

	col, _ := frozen.Source(schema.FieldBrand)
	assert.Equal(t, "SKU", col)
}

func TestBuilderOverrideMatchesColumnCaseInsensitively(t *testing.T) {
	builder := NewBuilder(fullMapping(), fullHeader())

	require.NoError(t, builder.Override(schema.FieldBrand, "sku"))

	frozen, err := builder.Finalize()
	require.NoError(t, err)

	// The header's own spelling is kept.
	col, _ := frozen.Source(schema.FieldBrand)
	assert.Equal(t, "SKU", col)
}

func TestBuilderOverrideErrors(t *testing.T) {
	builder := NewBuilder(fullMapping(), fullHeader())

	assert.ErrorContains(t, builder.Override("not_a_field", "Title"), "unknown target field")
	assert.ErrorContains(t, builder.Override(schema.FieldBrand, "Missing Column"), "not present in header")
}

func TestBuilderFinalizeGate(t *testing.T) {
	tests := []struct {
		name        string
		clear       []string
		wantMissing []string
	}{
		{
			name:        "missing price",
			clear:       []string{schema.FieldPrice},
			wantMissing: []string{schema.FieldPrice},
		},
		{
			name:        "missing several",
			clear:       []string{schema.FieldName, schema.FieldBrand},
			wantMissing: []string{schema.FieldName, schema.FieldBrand},
		},
		{
			name:  "category id is exempt",
			clear: []string{schema.FieldCategoryID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := NewBuilder(fullMapping(), fullHeader())
			for _, field := range tt.clear {
				builder.Clear(field)
			}

			frozen, err := builder.Finalize()
			if len(tt.wantMissing) == 0 {
				require.NoError(t, err)
				assert.NotNil(t, frozen)
				return
			}

			var missingErr *MissingRequiredFieldsError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.wantMissing, missingErr.Fields)
		})
	}
}

func TestBuilderDoesNotMutateInitial(t *testing.T) {
	initial := fullMapping()
	builder := NewBuilder(initial, fullHeader())

	require.NoError(t, builder.Override(schema.FieldBrand, "SKU"))
	assert.Equal(t, "Vendor", initial[schema.FieldBrand])
}

func TestFrozenFieldsSorted(t *testing.T) {
	builder := NewBuilder(fullMapping(), fullHeader())
	frozen, err := builder.Finalize()
	require.NoError(t, err)

	assert.Equal(t, []string{
		schema.FieldBrand,
		schema.FieldCategoryID,
		schema.FieldDescription,
		schema.FieldName,
		schema.FieldPrice,
	}, frozen.Fields())
}
