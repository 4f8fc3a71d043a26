package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"realty/internal/storage"
	"realty/pkg/model"
)

// testService returns a service over a store in a temp directory,
// seeded with one listing per bucket.
func testService(t *testing.T) *Service {
	t.Helper()
	svc := emptyService(t)
	require.NoError(t, svc.store.Update(func(doc *model.RealEstate) (bool, error) {
		*doc = *fixtureDoc()
		return true, nil
	}))
	return svc
}

func emptyService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.Open(storage.Config{
		DataFile: filepath.Join(t.TempDir(), "realestate.json"),
	})
	require.NoError(t, err)
	return New(store)
}

func fixtureDoc() *model.RealEstate {
	doc := model.NewRealEstate()

	doc.Sale.Land = []model.LandSale{{ID: "sale-land-1", WhatUse: "residential", Data: model.SaleData{
		Address: "12 Oak Road", Email: "alice@example.com", Area: 500, FullPrice: 100000, OwnerFullName: "Alice Brown"}}}
	doc.Sale.Commercial.Office = []model.OfficeSale{{ID: "sale-office-1", RoomCount: 3, Data: model.SaleData{
		Address: "3 Market St", Email: "bob@example.com", Area: 80, FullPrice: 90000, OwnerFullName: "Bob Stone"}}}
	doc.Sale.Commercial.Shop = []model.ShopSale{{ID: "sale-shop-1", RoomCount: 2, Data: model.SaleData{
		Address: "4 Market St", Email: "carl@example.com", Area: 45, FullPrice: 60000, OwnerFullName: "Carl Mason"}}}
	doc.Sale.Residential.Villa = []model.VillaSale{{ID: "sale-villa-1", YardArea: 80, Data: model.SaleData{
		Address: "X", Email: "j@s.com", Area: 120, FullPrice: 500000, OwnerFullName: "John Smith"}}}
	doc.Sale.Residential.Apartment = []model.ApartmentSale{{ID: "sale-apartment-1", FloorCount: 4, RoomCount: 3, Data: model.SaleData{
		Address: "9 Hill Ave", Email: "dana@example.com", Area: 95, FullPrice: 220000, OwnerFullName: "Dana Reed"}}}

	doc.Rent.Land = []model.LandRent{{ID: "rent-land-1", WhatUse: "commercial", Data: model.RentData{
		Address: "77 Field Way", Email: "eva@example.com", Area: 900, RentPrice: 1700, MortgagePrice: 0, OwnerFullName: "Eva Long"}}}
	doc.Rent.Commercial.Office = []model.OfficeRent{{ID: "rent-office-1", RoomCount: 5, Data: model.RentData{
		Address: "8 Tower Rd", Email: "finn@example.com", Area: 150, RentPrice: 2600, MortgagePrice: 50, OwnerFullName: "Finn Hale"}}}
	doc.Rent.Commercial.Shop = []model.ShopRent{{ID: "rent-shop-1", RoomCount: 1, Data: model.RentData{
		Address: "2 Corner Ln", Email: "gina@example.com", Area: 35, RentPrice: 850, MortgagePrice: 150, OwnerFullName: "Gina Ward"}}}
	doc.Rent.Residential.Villa = []model.VillaRent{{ID: "rent-villa-1", YardArea: 60, Data: model.RentData{
		Address: "5 Lake View", Email: "hugo@example.com", Area: 200, RentPrice: 3300, MortgagePrice: 20000, OwnerFullName: "Hugo Pratt"}}}
	doc.Rent.Residential.Apartment = []model.ApartmentRent{{ID: "rent-apartment-1", FloorCount: 7, RoomCount: 2, Data: model.RentData{
		Address: "14 Station Rd", Email: "iris@example.com", Area: 70, RentPrice: 1300, MortgagePrice: 180, OwnerFullName: "Iris Vale"}}}

	return doc
}

func listingIDs(items []model.Listing) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ListingID()
	}
	return ids
}
