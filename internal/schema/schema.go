// Package schema defines the Salaaz bulk-upload target schema shared by
// the field mapper, row transformer, and output writer.
package schema

// Target field names.
const (
	FieldName              = "name"
	FieldDescription       = "description"
	FieldPrice             = "price"
	FieldBrand             = "brand"
	FieldCategoryID        = "category_id"
	FieldSubCategoryID     = "sub_category_id"
	FieldSubSubCategoryID  = "sub_sub_category_id"
	FieldCertification     = "certification"
	FieldCountryOfOrigin   = "country_of_origin"
	FieldDetails           = "details"
	FieldCare              = "care"
	FieldSizeFit           = "size_fit"
	FieldVariantAttributes = "variant_attributes"
	FieldVariantQuantity   = "variant_quantity"
	FieldImageURLs         = "image_urls"
)

// RequiredFields are the target fields every upload row must carry.
func RequiredFields() []string {
	return []string{
		FieldName,
		FieldDescription,
		FieldPrice,
		FieldBrand,
		FieldCategoryID,
	}
}

// OptionalFields are the remaining target fields.
func OptionalFields() []string {
	return []string{
		FieldSubCategoryID,
		FieldSubSubCategoryID,
		FieldCertification,
		FieldCountryOfOrigin,
		FieldDetails,
		FieldCare,
		FieldSizeFit,
		FieldVariantAttributes,
		FieldVariantQuantity,
		FieldImageURLs,
	}
}

// AllFields returns the full output column order: required fields
// first, then optional, matching the bulk-upload template.
func AllFields() []string {
	return append(RequiredFields(), OptionalFields()...)
}

// IsRequired reports whether the field is part of the required set.
func IsRequired(field string) bool {
	for _, f := range RequiredFields() {
		if f == field {
			return true
		}
	}
	return false
}

// IsKnown reports whether the field belongs to the target schema.
func IsKnown(field string) bool {
	for _, f := range AllFields() {
		if f == field {
			return true
		}
	}
	return false
}
