package catalog

import (
	"github.com/google/uuid"

	"realty/pkg/model"
)

// Add operations: validate, assign a fresh id, append to the matching
// bucket and persist, all under the store lock. The stored listing,
// including its id, is returned. Nothing is inserted on a validation
// failure.

func (s *Service) AddLandSale(item model.LandSale) (model.LandSale, error) {
	if err := validateSaleData(item.Data); err != nil {
		return model.LandSale{}, err
	}
	if err := validateLandUse(item.WhatUse); err != nil {
		return model.LandSale{}, err
	}
	item.ID = uuid.New().String()
	err := s.store.Update(func(doc *model.RealEstate) (bool, error) {
		doc.Sale.Land = append(doc.Sale.Land, item)
		return true, nil
	})
	if err != nil {
		return model.LandSale{}, err
	}
	return item, nil
}

func (s *Service) AddOfficeSale(item model.OfficeSale) (model.OfficeSale, error) {
	if err := validateSaleData(item.Data); err != nil {
		return model.OfficeSale{}, err
	}
	item.ID = uuid.New().String()
	err := s.store.Update(func(doc *model.RealEstate) (bool, error) {
		doc.Sale.Commercial.Office = append(doc.Sale.Commercial.Office, item)
		return true, nil
	})
	if err != nil {
		return model.OfficeSale{}, err
	}
	return item, nil
}

func (s *Service) AddShopSale(item model.ShopSale) (model.ShopSale, error) {
	if err := validateSaleData(item.Data); err != nil {
		return model.ShopSale{}, err
	}
	item.ID = uuid.New().String()
	err := s.store.Update(func(doc *model.RealEstate) (bool, error) {
		doc.Sale.Commercial.Shop = append(doc.Sale.Commercial.Shop, item)
		return true, nil
	})
	if err != nil {
		return model.ShopSale{}, err
	}
	return item, nil
}

func (s *Service) AddVillaSale(item model.VillaSale) (model.VillaSale, error) {
	if err := validateSaleData(item.Data); err != nil {
		return model.VillaSale{}, err
	}
	item.ID = uuid.New().String()
	err := s.store.Update(func(doc *model.RealEstate) (bool, error) {
		doc.Sale.Residential.Villa = append(doc.Sale.Residential.Villa, item)
		return true, nil
	})
	if err != nil {
		return model.VillaSale{}, err
	}
	return item, nil
}

func (s *Service) AddApartmentSale(item model.ApartmentSale) (model.ApartmentSale, error) {
	if err := validateSaleData(item.Data); err != nil {
		return model.ApartmentSale{}, err
	}
	item.ID = uuid.New().String()
	err := s.store.Update(func(doc *model.RealEstate) (bool, error) {
		doc.Sale.Residential.Apartment = append(doc.Sale.Residential.Apartment, item)
		return true, nil
	})
	if err != nil {
		return model.ApartmentSale{}, err
	}
	return item, nil
}

func (s *Service) AddLandRent(item model.LandRent) (model.LandRent, error) {
	if err := validateRentData(item.Data); err != nil {
		return model.LandRent{}, err
	}
	if err := validateLandUse(item.WhatUse); err != nil {
		return model.LandRent{}, err
	}
	item.ID = uuid.New().String()
	err := s.store.Update(func(doc *model.RealEstate) (bool, error) {
		doc.Rent.Land = append(doc.Rent.Land, item)
		return true, nil
	})
	if err != nil {
		return model.LandRent{}, err
	}
	return item, nil
}

func (s *Service) AddOfficeRent(item model.OfficeRent) (model.OfficeRent, error) {
	if err := validateRentData(item.Data); err != nil {
		return model.OfficeRent{}, err
	}
	item.ID = uuid.New().String()
	err := s.store.Update(func(doc *model.RealEstate) (bool, error) {
		doc.Rent.Commercial.Office = append(doc.Rent.Commercial.Office, item)
		return true, nil
	})
	if err != nil {
		return model.OfficeRent{}, err
	}
	return item, nil
}

func (s *Service) AddShopRent(item model.ShopRent) (model.ShopRent, error) {
	if err := validateRentData(item.Data); err != nil {
		return model.ShopRent{}, err
	}
	item.ID = uuid.New().String()
	err := s.store.Update(func(doc *model.RealEstate) (bool, error) {
		doc.Rent.Commercial.Shop = append(doc.Rent.Commercial.Shop, item)
		return true, nil
	})
	if err != nil {
		return model.ShopRent{}, err
	}
	return item, nil
}

func (s *Service) AddVillaRent(item model.VillaRent) (model.VillaRent, error) {
	if err := validateRentData(item.Data); err != nil {
		return model.VillaRent{}, err
	}
	item.ID = uuid.New().String()
	err := s.store.Update(func(doc *model.RealEstate) (bool, error) {
		doc.Rent.Residential.Villa = append(doc.Rent.Residential.Villa, item)
		return true, nil
	})
	if err != nil {
		return model.VillaRent{}, err
	}
	return item, nil
}

func (s *Service) AddApartmentRent(item model.ApartmentRent) (model.ApartmentRent, error) {
	if err := validateRentData(item.Data); err != nil {
		return model.ApartmentRent{}, err
	}
	item.ID = uuid.New().String()
	err := s.store.Update(func(doc *model.RealEstate) (bool, error) {
		doc.Rent.Residential.Apartment = append(doc.Rent.Residential.Apartment, item)
		return true, nil
	})
	if err != nil {
		return model.ApartmentRent{}, err
	}
	return item, nil
}

// Delete removes the listing with the given id from the single category
// named by (ownership, propertyType). The aggregate aliases commercial
// and residential are not valid delete targets. It reports whether a
// removal occurred and persists only then; a second delete of the same
// id returns false.
func (s *Service) Delete(ownership, propertyType, id string) (bool, error) {
	own, ok := model.ParseOwnership(ownership)
	if !ok {
		return false, nil
	}
	pt, ok := model.ParsePropertyType(propertyType)
	if !ok || !pt.IsCategory() {
		return false, nil
	}

	removed := false
	err := s.store.Update(func(doc *model.RealEstate) (bool, error) {
		switch own {
		case model.OwnershipSale:
			switch pt {
			case model.TypeLand:
				doc.Sale.Land, removed = removeByID(doc.Sale.Land, id)
			case model.TypeOffice:
				doc.Sale.Commercial.Office, removed = removeByID(doc.Sale.Commercial.Office, id)
			case model.TypeShop:
				doc.Sale.Commercial.Shop, removed = removeByID(doc.Sale.Commercial.Shop, id)
			case model.TypeVilla:
				doc.Sale.Residential.Villa, removed = removeByID(doc.Sale.Residential.Villa, id)
			case model.TypeApartment:
				doc.Sale.Residential.Apartment, removed = removeByID(doc.Sale.Residential.Apartment, id)
			}
		case model.OwnershipRent:
			switch pt {
			case model.TypeLand:
				doc.Rent.Land, removed = removeByID(doc.Rent.Land, id)
			case model.TypeOffice:
				doc.Rent.Commercial.Office, removed = removeByID(doc.Rent.Commercial.Office, id)
			case model.TypeShop:
				doc.Rent.Commercial.Shop, removed = removeByID(doc.Rent.Commercial.Shop, id)
			case model.TypeVilla:
				doc.Rent.Residential.Villa, removed = removeByID(doc.Rent.Residential.Villa, id)
			case model.TypeApartment:
				doc.Rent.Residential.Apartment, removed = removeByID(doc.Rent.Residential.Apartment, id)
			}
		}
		return removed, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// removeByID drops the first listing whose id matches. Ids are unique,
// so at most one listing is removed.
func removeByID[T model.Listing](items []T, id string) ([]T, bool) {
	for i, item := range items {
		if item.ListingID() == id {
			return append(items[:i:i], items[i+1:]...), true
		}
	}
	return items, false
}
