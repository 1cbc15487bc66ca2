// Package transform applies a frozen field mapping plus per-field
// normalization rules to raw catalog rows, producing validated Salaaz
// upload rows.
package transform

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/SalaazMarket/Converter/internal/schema"
	"github.com/SalaazMarket/Converter/internal/tabular"
)

// TargetRow is one product in the Salaaz bulk-upload schema. Pointer
// fields are nil when the source carried no value. Immutable once
// produced.
type TargetRow struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Brand       string

	CategoryID       int64
	SubCategoryID    *int64
	SubSubCategoryID *int64

	Certification   *string
	CountryOfOrigin *string
	Details         *string
	Care            *string
	SizeFit         *string

	// VariantAttributes is keyed by cleaned attribute name, e.g.
	// {"color": "Red", "size": "M"}.
	VariantAttributes map[string]string
	VariantQuantity   *string

	// ImageURLs preserves source order with duplicates removed.
	ImageURLs []string
}

// ToRow serializes the target row for the tabular writer:
// variant_attributes as a JSON object, image_urls comma-joined.
func (r *TargetRow) ToRow() tabular.Row {
	row := tabular.Row{
		schema.FieldName:        r.Name,
		schema.FieldDescription: r.Description,
		schema.FieldPrice:       r.Price.String(),
		schema.FieldBrand:       r.Brand,
		schema.FieldCategoryID:  strconv.FormatInt(r.CategoryID, 10),
	}

	putID(row, schema.FieldSubCategoryID, r.SubCategoryID)
	putID(row, schema.FieldSubSubCategoryID, r.SubSubCategoryID)
	putString(row, schema.FieldCertification, r.Certification)
	putString(row, schema.FieldCountryOfOrigin, r.CountryOfOrigin)
	putString(row, schema.FieldDetails, r.Details)
	putString(row, schema.FieldCare, r.Care)
	putString(row, schema.FieldSizeFit, r.SizeFit)
	putString(row, schema.FieldVariantQuantity, r.VariantQuantity)

	if len(r.VariantAttributes) > 0 {
		// Map keys marshal in sorted order, keeping output stable.
		encoded, err := json.Marshal(r.VariantAttributes)
		if err == nil {
			row[schema.FieldVariantAttributes] = string(encoded)
		}
	} else {
		row[schema.FieldVariantAttributes] = ""
	}

	row[schema.FieldImageURLs] = joinURLs(r.ImageURLs)

	return row
}

// ToTable serializes rows into a table in the fixed output column
// order, preserving row order.
func ToTable(rows []*TargetRow) *tabular.Table {
	table := tabular.New(schema.AllFields())
	for _, r := range rows {
		table.Append(r.ToRow())
	}
	return table
}

func putID(row tabular.Row, field string, id *int64) {
	if id != nil {
		row[field] = strconv.FormatInt(*id, 10)
	} else {
		row[field] = ""
	}
}

func putString(row tabular.Row, field string, val *string) {
	if val != nil {
		row[field] = *val
	} else {
		row[field] = ""
	}
}

func joinURLs(urls []string) string {
	out := ""
	for i, u := range urls {
		if i > 0 {
			out += ","
		}
		out += u
	}
	return out
}
