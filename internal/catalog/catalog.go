// Package catalog implements the listing catalog: search, keyword
// search, range filtering, statistics, pagination and the validated
// add/delete mutations. All query logic reads the capability view
// (model.View) so the ten listing variants are handled uniformly.
package catalog

import (
	"realty/internal/storage"
	"realty/pkg/model"
)

// Service coordinates queries and mutations against the store.
type Service struct {
	store *storage.Store
}

// New creates a catalog service backed by the given store.
func New(store *storage.Store) *Service {
	return &Service{store: store}
}

// Document returns the full in-memory document.
func (s *Service) Document() *model.RealEstate {
	return s.store.Get()
}

// Search returns the listings under the given ownership and property
// type as a flat list. Ownership and property type match
// case-insensitively; unknown values yield an empty result, not an
// error. An empty property type means the union of all five categories
// in the fixed order land, office, shop, villa, apartment; the aliases
// commercial and residential expand to their two categories.
func (s *Service) Search(ownership, propertyType string) []model.Listing {
	own, ok := model.ParseOwnership(ownership)
	if !ok {
		return []model.Listing{}
	}

	var categories []model.PropertyType
	if propertyType == "" {
		categories = model.PropertyType("").Categories()
	} else {
		pt, ok := model.ParsePropertyType(propertyType)
		if !ok {
			return []model.Listing{}
		}
		categories = pt.Categories()
	}

	doc := s.store.Get()
	result := make([]model.Listing, 0)
	for _, category := range categories {
		result = append(result, bucket(doc, own, category)...)
	}
	return result
}

// bucket returns one (ownership, category) collection as []model.Listing.
func bucket(doc *model.RealEstate, own model.Ownership, category model.PropertyType) []model.Listing {
	switch own {
	case model.OwnershipSale:
		switch category {
		case model.TypeLand:
			return collect(doc.Sale.Land)
		case model.TypeOffice:
			return collect(doc.Sale.Commercial.Office)
		case model.TypeShop:
			return collect(doc.Sale.Commercial.Shop)
		case model.TypeVilla:
			return collect(doc.Sale.Residential.Villa)
		case model.TypeApartment:
			return collect(doc.Sale.Residential.Apartment)
		}
	case model.OwnershipRent:
		switch category {
		case model.TypeLand:
			return collect(doc.Rent.Land)
		case model.TypeOffice:
			return collect(doc.Rent.Commercial.Office)
		case model.TypeShop:
			return collect(doc.Rent.Commercial.Shop)
		case model.TypeVilla:
			return collect(doc.Rent.Residential.Villa)
		case model.TypeApartment:
			return collect(doc.Rent.Residential.Apartment)
		}
	}
	return nil
}

func collect[T model.Listing](items []T) []model.Listing {
	out := make([]model.Listing, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
