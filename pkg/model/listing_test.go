package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_PriceMapping(t *testing.T) {
	sale := VillaSale{ID: "v1", YardArea: 80, Data: SaleData{
		Address: "X", Email: "j@s.com", Area: 120, FullPrice: 500000, OwnerFullName: "John Smith",
	}}
	v := sale.Fields()
	assert.Equal(t, "v1", v.ID)
	assert.Equal(t, 500000.0, v.Price)
	assert.Nil(t, v.MortgagePrice)
	require.NotNil(t, v.YardArea)
	assert.Equal(t, 80.0, *v.YardArea)

	rent := VillaRent{ID: "v2", YardArea: 60, Data: RentData{
		Address: "Y", Email: "a@b.com", Area: 90, RentPrice: 1200, MortgagePrice: 300, OwnerFullName: "Jane Field",
	}}
	rv := rent.Fields()
	assert.Equal(t, 1200.0, rv.Price)
	require.NotNil(t, rv.MortgagePrice)
	assert.Equal(t, 300.0, *rv.MortgagePrice)
}

func TestFields_OptionalCapabilities(t *testing.T) {
	tests := []struct {
		name       string
		listing    Listing
		whatUse    string
		hasRooms   bool
		hasFloors  bool
		hasYard    bool
		hasMortage bool
	}{
		{"land sale", LandSale{ID: "l", WhatUse: "residential"}, "residential", false, false, false, false},
		{"office sale", OfficeSale{ID: "o", RoomCount: 3}, "", true, false, false, false},
		{"shop rent", ShopRent{ID: "s", RoomCount: 2}, "", true, false, false, true},
		{"villa sale", VillaSale{ID: "v", YardArea: 10}, "", false, false, true, false},
		{"apartment rent", ApartmentRent{ID: "a", FloorCount: 5, RoomCount: 2}, "", true, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.listing.Fields()
			assert.Equal(t, tt.whatUse, v.WhatUse)
			assert.Equal(t, tt.hasRooms, v.RoomCount != nil)
			assert.Equal(t, tt.hasFloors, v.FloorCount != nil)
			assert.Equal(t, tt.hasYard, v.YardArea != nil)
			assert.Equal(t, tt.hasMortage, v.MortgagePrice != nil)
		})
	}
}

func TestListingID(t *testing.T) {
	assert.Equal(t, "x", ApartmentSale{ID: "x"}.ListingID())
	assert.Equal(t, "y", LandRent{ID: "y"}.ListingID())
}

func TestNewRealEstate_EmptyCollectionsPresent(t *testing.T) {
	doc := NewRealEstate()
	assert.NotNil(t, doc.Sale.Land)
	assert.NotNil(t, doc.Sale.Commercial.Office)
	assert.NotNil(t, doc.Sale.Commercial.Shop)
	assert.NotNil(t, doc.Sale.Residential.Villa)
	assert.NotNil(t, doc.Sale.Residential.Apartment)
	assert.NotNil(t, doc.Rent.Land)
	assert.NotNil(t, doc.Rent.Commercial.Office)
	assert.NotNil(t, doc.Rent.Commercial.Shop)
	assert.NotNil(t, doc.Rent.Residential.Villa)
	assert.NotNil(t, doc.Rent.Residential.Apartment)
	assert.Empty(t, doc.Sale.Land)
}
