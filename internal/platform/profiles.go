// Package platform classifies uploaded table headers into known
// e-commerce source platforms and carries their column conventions.
package platform

import (
	"strings"

	"github.com/SalaazMarket/Converter/internal/schema"
)

// Profile names.
const (
	Shopify     = "shopify"
	Amazon      = "amazon"
	WooCommerce = "woocommerce"
	Custom      = "custom"
)

// Profile describes a known source platform: the header tokens that
// identify it and, per target field, the candidate source columns in
// preference order.
type Profile struct {
	Name string
	// FieldCandidates maps a target field to candidate column names,
	// most specific first. The category_id entry lists the columns
	// that carry the free-text category path.
	FieldCandidates map[string][]string

	signature map[string]bool // lowercased candidate columns
}

// IsCustom reports whether this is the unknown-platform sentinel.
func (p Profile) IsCustom() bool {
	return p.Name == Custom
}

// SignatureHits counts the header columns that appear in this
// profile's signature set, case-insensitively.
func (p Profile) SignatureHits(header []string) int {
	hits := 0
	for _, col := range header {
		if p.signature[strings.ToLower(strings.TrimSpace(col))] {
			hits++
		}
	}
	return hits
}

// CustomProfile returns the sentinel used when no platform matches.
// It carries no candidates; mapping falls back to fuzzy column tests.
func CustomProfile() Profile {
	return Profile{Name: Custom, FieldCandidates: map[string][]string{}}
}

// builtins returns the known profiles keyed by name. The candidate
// lists mirror the export formats each platform actually produces.
func builtins() map[string]Profile {
	profiles := map[string]Profile{
		Shopify: newProfile(Shopify, map[string][]string{
			schema.FieldName:            {"Title", "Product Title", "title"},
			schema.FieldDescription:     {"Body (HTML)", "Description", "body_html"},
			schema.FieldPrice:           {"Variant Price", "Price", "price"},
			schema.FieldBrand:           {"Vendor", "Brand", "vendor"},
			schema.FieldVariantQuantity: {"Variant Inventory Qty", "Inventory Quantity", "inventory_quantity"},
			schema.FieldImageURLs:       {"Image Src", "Image URL", "image_src"},
			schema.FieldCategoryID:      {"Product Category", "Type", "Tags", "Category"},
		}),
		Amazon: newProfile(Amazon, map[string][]string{
			schema.FieldName:            {"Product Name", "Title", "item-name"},
			schema.FieldDescription:     {"Product Description", "Description", "product-description"},
			schema.FieldPrice:           {"Price", "Standard Price", "standard-price"},
			schema.FieldBrand:           {"Brand Name", "Brand", "brand-name"},
			schema.FieldVariantQuantity: {"Quantity", "Stock Quantity", "quantity"},
			schema.FieldImageURLs:       {"Main Image URL", "Image URL", "main-image-url"},
			schema.FieldCategoryID:      {"Category", "Product Type", "Department"},
		}),
		WooCommerce: newProfile(WooCommerce, map[string][]string{
			schema.FieldName:            {"Name", "Product Name", "post_title"},
			schema.FieldDescription:     {"Description", "Product Description", "post_content"},
			schema.FieldPrice:           {"Regular Price", "Price", "regular_price"},
			schema.FieldBrand:           {"Brand", "Manufacturer", "brand"},
			schema.FieldVariantQuantity: {"Stock", "Stock Quantity", "stock"},
			schema.FieldImageURLs:       {"Images", "Gallery Images", "images"},
			schema.FieldCategoryID:      {"Categories", "Product categories", "Category"},
		}),
	}
	return profiles
}

func newProfile(name string, candidates map[string][]string) Profile {
	signature := make(map[string]bool)
	for _, cols := range candidates {
		for _, col := range cols {
			signature[strings.ToLower(col)] = true
		}
	}
	return Profile{Name: name, FieldCandidates: candidates, signature: signature}
}

// Profiles returns the known profiles ordered by the given priority
// list. Unknown names are skipped; known profiles absent from the list
// are appended in the default order.
func Profiles(priority []string) []Profile {
	known := builtins()
	ordered := make([]Profile, 0, len(known))
	used := make(map[string]bool, len(known))

	for _, name := range priority {
		name = strings.ToLower(strings.TrimSpace(name))
		if p, ok := known[name]; ok && !used[name] {
			ordered = append(ordered, p)
			used[name] = true
		}
	}
	for _, name := range []string{Shopify, Amazon, WooCommerce} {
		if !used[name] {
			ordered = append(ordered, known[name])
		}
	}
	return ordered
}
