package mapping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SalaazMarket/Converter/internal/schema"
)

// MissingRequiredFieldsError reports every required target field left
// unmapped at finalize time. It is fatal to the conversion job.
type MissingRequiredFieldsError struct {
	Fields []string
}

func (e *MissingRequiredFieldsError) Error() string {
	return fmt.Sprintf("required target fields unmapped: %s", strings.Join(e.Fields, ", "))
}

// gateFields are the required fields the finalize gate enforces.
// category_id is required on output but exempt here: an unmapped
// category source degrades to the default category id per policy
// instead of blocking the job.
var gateFields = []string{
	schema.FieldName,
	schema.FieldDescription,
	schema.FieldPrice,
	schema.FieldBrand,
}

// Builder accumulates manual overrides on top of an automatic mapping
// proposal. Mutation stops at Finalize; transformation only ever sees
// the frozen result.
type Builder struct {
	mapping FieldMapping
	header  []string
}

// NewBuilder starts from the automatic proposal for the given header.
func NewBuilder(initial FieldMapping, header []string) *Builder {
	m := make(FieldMapping, len(initial))
	for field, col := range initial {
		m[field] = col
	}
	return &Builder{mapping: m, header: header}
}

// Override replaces a single field's source column. The field must
// belong to the target schema and the column must exist in the header.
func (b *Builder) Override(field, column string) error {
	if !schema.IsKnown(field) {
		return fmt.Errorf("unknown target field %q", field)
	}

	for _, col := range b.header {
		if strings.EqualFold(col, column) {
			b.mapping[field] = col
			return nil
		}
	}
	return fmt.Errorf("column %q not present in header", column)
}

// Clear removes a field's mapping.
func (b *Builder) Clear(field string) {
	delete(b.mapping, field)
}

// Finalize freezes the mapping. It fails with a
// *MissingRequiredFieldsError naming every gated field still unmapped.
func (b *Builder) Finalize() (*Frozen, error) {
	var missing []string
	for _, field := range gateFields {
		if b.mapping[field] == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingRequiredFieldsError{Fields: missing}
	}

	frozen := make(map[string]string, len(b.mapping))
	for field, col := range b.mapping {
		if col != "" {
			frozen[field] = col
		}
	}
	return &Frozen{mapping: frozen}, nil
}

// Frozen is an immutable field mapping handed to the row transformer.
type Frozen struct {
	mapping map[string]string
}

// Source returns the source column mapped to a target field.
func (f *Frozen) Source(field string) (string, bool) {
	col, ok := f.mapping[field]
	return col, ok
}

// Fields returns the mapped target fields in sorted order.
func (f *Frozen) Fields() []string {
	fields := make([]string, 0, len(f.mapping))
	for field := range f.mapping {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
