package model

// RealEstate is the root document: both ownership branches with their
// five listing collections each. The whole document is the unit of
// persistence.
type RealEstate struct {
	Sale Sale `json:"sale"`
	Rent Rent `json:"rent"`
}

// NewRealEstate returns a document with every collection present but
// empty, so a fresh file round-trips with the full branch skeleton.
func NewRealEstate() *RealEstate {
	return &RealEstate{
		Sale: Sale{
			Land:        []LandSale{},
			Commercial:  CommercialSale{Office: []OfficeSale{}, Shop: []ShopSale{}},
			Residential: ResidentialSale{Villa: []VillaSale{}, Apartment: []ApartmentSale{}},
		},
		Rent: Rent{
			Land:        []LandRent{},
			Commercial:  CommercialRent{Office: []OfficeRent{}, Shop: []ShopRent{}},
			Residential: ResidentialRent{Villa: []VillaRent{}, Apartment: []ApartmentRent{}},
		},
	}
}

// SaleData is the payload shared by all sale listings.
type SaleData struct {
	Address       string  `json:"address"`
	Email         string  `json:"email"`
	Area          float64 `json:"area"`
	FullPrice     float64 `json:"fullPrice"`
	OwnerFullName string  `json:"ownerFullName"`
}

// RentData is the payload shared by all rent listings.
type RentData struct {
	Address       string  `json:"address"`
	Email         string  `json:"email"`
	Area          float64 `json:"area"`
	RentPrice     float64 `json:"rentPrice"`
	MortgagePrice float64 `json:"mortgagePrice"`
	OwnerFullName string  `json:"ownerFullName"`
}

// Sale branch.

type Sale struct {
	Land        []LandSale      `json:"land"`
	Commercial  CommercialSale  `json:"commercial"`
	Residential ResidentialSale `json:"residential"`
}

type CommercialSale struct {
	Office []OfficeSale `json:"office"`
	Shop   []ShopSale   `json:"shop"`
}

type ResidentialSale struct {
	Villa     []VillaSale     `json:"villa"`
	Apartment []ApartmentSale `json:"apartment"`
}

type LandSale struct {
	ID      string   `json:"id"`
	WhatUse string   `json:"whatUse"`
	Data    SaleData `json:"data"`
}

type OfficeSale struct {
	ID        string   `json:"id"`
	RoomCount int      `json:"roomCount"`
	Data      SaleData `json:"data"`
}

type ShopSale struct {
	ID        string   `json:"id"`
	RoomCount int      `json:"roomCount"`
	Data      SaleData `json:"data"`
}

type VillaSale struct {
	ID       string   `json:"id"`
	YardArea float64  `json:"yardArea"`
	Data     SaleData `json:"data"`
}

type ApartmentSale struct {
	ID         string   `json:"id"`
	FloorCount int      `json:"floorCount"`
	RoomCount  int      `json:"roomCount"`
	Data       SaleData `json:"data"`
}

// Rent branch.

type Rent struct {
	Land        []LandRent      `json:"land"`
	Commercial  CommercialRent  `json:"commercial"`
	Residential ResidentialRent `json:"residential"`
}

type CommercialRent struct {
	Office []OfficeRent `json:"office"`
	Shop   []ShopRent   `json:"shop"`
}

type ResidentialRent struct {
	Villa     []VillaRent     `json:"villa"`
	Apartment []ApartmentRent `json:"apartment"`
}

type LandRent struct {
	ID      string   `json:"id"`
	WhatUse string   `json:"whatUse"`
	Data    RentData `json:"data"`
}

type OfficeRent struct {
	ID        string   `json:"id"`
	RoomCount int      `json:"roomCount"`
	Data      RentData `json:"data"`
}

type ShopRent struct {
	ID        string   `json:"id"`
	RoomCount int      `json:"roomCount"`
	Data      RentData `json:"data"`
}

type VillaRent struct {
	ID       string   `json:"id"`
	YardArea float64  `json:"yardArea"`
	Data     RentData `json:"data"`
}

type ApartmentRent struct {
	ID         string   `json:"id"`
	FloorCount int      `json:"floorCount"`
	RoomCount  int      `json:"roomCount"`
	Data       RentData `json:"data"`
}
