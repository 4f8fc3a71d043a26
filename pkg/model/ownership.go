package model

import "strings"

// Ownership is the top-level branch of the document.
type Ownership string

const (
	OwnershipSale Ownership = "sale"
	OwnershipRent Ownership = "rent"
)

// ParseOwnership matches case-insensitively. Unknown values report
// ok=false; callers treat that as "no match", never as an error.
func ParseOwnership(s string) (Ownership, bool) {
	switch strings.ToLower(s) {
	case "sale":
		return OwnershipSale, true
	case "rent":
		return OwnershipRent, true
	}
	return "", false
}

// PropertyType is a listing category. Commercial and Residential are
// aggregate aliases over two categories each and are valid for search
// but not for delete.
type PropertyType string

const (
	TypeLand        PropertyType = "land"
	TypeOffice      PropertyType = "office"
	TypeShop        PropertyType = "shop"
	TypeVilla       PropertyType = "villa"
	TypeApartment   PropertyType = "apartment"
	TypeCommercial  PropertyType = "commercial"
	TypeResidential PropertyType = "residential"
)

// ParsePropertyType matches case-insensitively, ok=false for unknown.
func ParsePropertyType(s string) (PropertyType, bool) {
	switch strings.ToLower(s) {
	case "land":
		return TypeLand, true
	case "office":
		return TypeOffice, true
	case "shop":
		return TypeShop, true
	case "villa":
		return TypeVilla, true
	case "apartment":
		return TypeApartment, true
	case "commercial":
		return TypeCommercial, true
	case "residential":
		return TypeResidential, true
	}
	return "", false
}

// Categories expands a property type into concrete categories in the
// fixed result order: land, office, shop, villa, apartment. The empty
// type means all five.
func (t PropertyType) Categories() []PropertyType {
	switch t {
	case "":
		return []PropertyType{TypeLand, TypeOffice, TypeShop, TypeVilla, TypeApartment}
	case TypeCommercial:
		return []PropertyType{TypeOffice, TypeShop}
	case TypeResidential:
		return []PropertyType{TypeVilla, TypeApartment}
	case TypeLand, TypeOffice, TypeShop, TypeVilla, TypeApartment:
		return []PropertyType{t}
	}
	return nil
}

// IsCategory reports whether t names a single concrete category, the
// only forms a delete may target.
func (t PropertyType) IsCategory() bool {
	switch t {
	case TypeLand, TypeOffice, TypeShop, TypeVilla, TypeApartment:
		return true
	}
	return false
}
