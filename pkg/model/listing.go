package model

// View is the capability view over a listing: the set of named fields a
// query may read regardless of the concrete variant. Required fields are
// plain values; fields only some variants carry are pointers (or the
// empty string for WhatUse) so "absent" is distinguishable from zero.
//
// Price maps to FullPrice for sale payloads and RentPrice for rent
// payloads. MortgagePrice is present on rent listings only.
type View struct {
	ID            string
	OwnerFullName string
	Address       string
	Email         string
	Area          float64
	Price         float64
	WhatUse       string
	RoomCount     *int
	FloorCount    *int
	YardArea      *float64
	MortgagePrice *float64
}

// Listing is implemented by all ten listing variants. Query logic is
// written against Fields() only, never against the concrete type.
type Listing interface {
	ListingID() string
	Fields() View
}

func saleView(id string, d SaleData) View {
	return View{
		ID:            id,
		OwnerFullName: d.OwnerFullName,
		Address:       d.Address,
		Email:         d.Email,
		Area:          d.Area,
		Price:         d.FullPrice,
	}
}

func rentView(id string, d RentData) View {
	mortgage := d.MortgagePrice
	return View{
		ID:            id,
		OwnerFullName: d.OwnerFullName,
		Address:       d.Address,
		Email:         d.Email,
		Area:          d.Area,
		Price:         d.RentPrice,
		MortgagePrice: &mortgage,
	}
}

func (l LandSale) ListingID() string { return l.ID }
func (l LandSale) Fields() View {
	v := saleView(l.ID, l.Data)
	v.WhatUse = l.WhatUse
	return v
}

func (l OfficeSale) ListingID() string { return l.ID }
func (l OfficeSale) Fields() View {
	v := saleView(l.ID, l.Data)
	rooms := l.RoomCount
	v.RoomCount = &rooms
	return v
}

func (l ShopSale) ListingID() string { return l.ID }
func (l ShopSale) Fields() View {
	v := saleView(l.ID, l.Data)
	rooms := l.RoomCount
	v.RoomCount = &rooms
	return v
}

func (l VillaSale) ListingID() string { return l.ID }
func (l VillaSale) Fields() View {
	v := saleView(l.ID, l.Data)
	yard := l.YardArea
	v.YardArea = &yard
	return v
}

func (l ApartmentSale) ListingID() string { return l.ID }
func (l ApartmentSale) Fields() View {
	v := saleView(l.ID, l.Data)
	rooms, floors := l.RoomCount, l.FloorCount
	v.RoomCount = &rooms
	v.FloorCount = &floors
	return v
}

func (l LandRent) ListingID() string { return l.ID }
func (l LandRent) Fields() View {
	v := rentView(l.ID, l.Data)
	v.WhatUse = l.WhatUse
	return v
}

func (l OfficeRent) ListingID() string { return l.ID }
func (l OfficeRent) Fields() View {
	v := rentView(l.ID, l.Data)
	rooms := l.RoomCount
	v.RoomCount = &rooms
	return v
}

func (l ShopRent) ListingID() string { return l.ID }
func (l ShopRent) Fields() View {
	v := rentView(l.ID, l.Data)
	rooms := l.RoomCount
	v.RoomCount = &rooms
	return v
}

func (l VillaRent) ListingID() string { return l.ID }
func (l VillaRent) Fields() View {
	v := rentView(l.ID, l.Data)
	yard := l.YardArea
	v.YardArea = &yard
	return v
}

func (l ApartmentRent) ListingID() string { return l.ID }
func (l ApartmentRent) Fields() View {
	v := rentView(l.ID, l.Data)
	rooms, floors := l.RoomCount, l.FloorCount
	v.RoomCount = &rooms
	v.FloorCount = &floors
	return v
}
