package transform

import (
	"fmt"

	"github.com/SalaazMarket/Converter/internal/schema"
	"github.com/SalaazMarket/Converter/internal/taxonomy"
)

// FieldError names a target field that failed validation and why.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationOutcome is the per-row diagnostic result. It never affects
// the row itself.
type ValidationOutcome struct {
	RowIndex    int
	Passed      bool
	FieldErrors []FieldError
}

// Validator checks produced rows against the target schema's
// constraints. Purely diagnostic; never mutates a row.
type Validator struct {
	store *taxonomy.Store
}

// NewValidator creates a validator over the loaded taxonomy.
func NewValidator(store *taxonomy.Store) *Validator {
	return &Validator{store: store}
}

// Validate checks one row: required fields present, non-negative
// price, category id known, and sub-level ids chained to their
// parents.
func (v *Validator) Validate(rowIndex int, row *TargetRow) ValidationOutcome {
	outcome := ValidationOutcome{RowIndex: rowIndex}

	if row.Name == "" {
		outcome.fail(schema.FieldName, "must not be empty")
	}
	if row.Description == "" {
		outcome.fail(schema.FieldDescription, "must not be empty")
	}
	if row.Brand == "" {
		outcome.fail(schema.FieldBrand, "must not be empty")
	}
	if row.Price.IsNegative() {
		outcome.fail(schema.FieldPrice, "must be non-negative")
	}

	v.checkCategories(row, &outcome)

	outcome.Passed = len(outcome.FieldErrors) == 0
	return outcome
}

func (v *Validator) checkCategories(row *TargetRow, outcome *ValidationOutcome) {
	if row.CategoryID < 1 {
		outcome.fail(schema.FieldCategoryID, "must be a positive integer")
		return
	}
	if v.store.Lookup(taxonomy.LevelCategory, row.CategoryID) == nil {
		outcome.fail(schema.FieldCategoryID, fmt.Sprintf("unknown category id %d", row.CategoryID))
		return
	}

	if row.SubCategoryID != nil {
		sub := v.store.Lookup(taxonomy.LevelSubCategory, *row.SubCategoryID)
		switch {
		case sub == nil:
			outcome.fail(schema.FieldSubCategoryID, fmt.Sprintf("unknown sub-category id %d", *row.SubCategoryID))
		case sub.ParentID != row.CategoryID:
			outcome.fail(schema.FieldSubCategoryID,
				fmt.Sprintf("sub-category %d belongs to category %d, not %d", sub.ID, sub.ParentID, row.CategoryID))
		}
	}

	if row.SubSubCategoryID != nil {
		if row.SubCategoryID == nil {
			outcome.fail(schema.FieldSubSubCategoryID, "set without a sub-category id")
			return
		}
		subSub := v.store.Lookup(taxonomy.LevelSubSubCategory, *row.SubSubCategoryID)
		switch {
		case subSub == nil:
			outcome.fail(schema.FieldSubSubCategoryID, fmt.Sprintf("unknown sub-sub-category id %d", *row.SubSubCategoryID))
		case subSub.ParentID != *row.SubCategoryID:
			outcome.fail(schema.FieldSubSubCategoryID,
				fmt.Sprintf("sub-sub-category %d belongs to sub-category %d, not %d", subSub.ID, subSub.ParentID, *row.SubCategoryID))
		}
	}
}

func (o *ValidationOutcome) fail(field, reason string) {
	o.FieldErrors = append(o.FieldErrors, FieldError{Field: field, Reason: reason})
}
