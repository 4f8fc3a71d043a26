package loadtest

import (
	"fmt"
	"math/rand"

	"realty/pkg/model"
)

var (
	firstNames = []string{
		"Alice", "Bruno", "Clara", "Daniel", "Elena", "Felix",
		"Greta", "Hans", "Ivana", "Jonas", "Klara", "Leo",
	}
	lastNames = []string{
		"Becker", "Costa", "Dubois", "Eriksen", "Fischer", "Gruber",
		"Halden", "Ivanov", "Jensen", "Keller", "Lang", "Moretti",
	}
	streets = []string{
		"Oak Road", "Market Street", "Hill Avenue", "Station Road",
		"Lake View", "Field Way", "Corner Lane", "Tower Road",
		"Birch Lane", "Ridge Way",
	}
	landUses = []string{"residential", "commercial"}
)

// listingSpec is one generated listing together with the endpoint and
// category it belongs to.
type listingSpec struct {
	Path         string // endpoint path under /api/v1/real-estate
	Ownership    string
	PropertyType string
	Body         any
}

// Generator produces random but valid listings across all ten category
// endpoints. It is not safe for concurrent use; the scenario guards it
// with its own lock.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with the given seed. Equal seeds
// yield equal listing sequences.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Listing returns the next random listing.
func (g *Generator) Listing() listingSpec {
	ownership := "sale"
	if g.rng.Intn(2) == 1 {
		ownership = "rent"
	}

	switch propertyType := g.propertyType(); propertyType {
	case "land":
		return g.land(ownership)
	case "office":
		return g.commercial(ownership, "office")
	case "shop":
		return g.commercial(ownership, "shop")
	case "villa":
		return g.villa(ownership)
	default:
		return g.apartment(ownership)
	}
}

// Keyword returns a search term drawn from the generator's name and
// street pools, so most lookups hit seeded data.
func (g *Generator) Keyword() string {
	if g.rng.Intn(2) == 0 {
		return lastNames[g.rng.Intn(len(lastNames))]
	}
	return streets[g.rng.Intn(len(streets))]
}

// PriceRange returns a random well-formed [min, max] price interval.
func (g *Generator) PriceRange() (float64, float64) {
	low := float64(g.rng.Intn(400)+1) * 1000
	return low, low + float64(g.rng.Intn(600)+1)*1000
}

// Ownership returns "sale" or "rent" uniformly.
func (g *Generator) Ownership() string {
	if g.rng.Intn(2) == 0 {
		return "sale"
	}
	return "rent"
}

// PropertyTypeFilter returns a property type parameter for search
// requests: a concrete category, an aggregate alias or empty for the
// full branch.
func (g *Generator) PropertyTypeFilter() string {
	options := []string{"", "land", "office", "shop", "villa", "apartment", "commercial", "residential"}
	return options[g.rng.Intn(len(options))]
}

func (g *Generator) propertyType() string {
	options := []string{"land", "office", "shop", "villa", "apartment"}
	return options[g.rng.Intn(len(options))]
}

func (g *Generator) land(ownership string) listingSpec {
	whatUse := landUses[g.rng.Intn(len(landUses))]
	spec := listingSpec{
		Path:         ownership + "/land",
		Ownership:    ownership,
		PropertyType: "land",
	}
	if ownership == "sale" {
		spec.Body = model.LandSale{WhatUse: whatUse, Data: g.saleData()}
	} else {
		spec.Body = model.LandRent{WhatUse: whatUse, Data: g.rentData()}
	}
	return spec
}

func (g *Generator) commercial(ownership, propertyType string) listingSpec {
	rooms := g.rng.Intn(10) + 1
	spec := listingSpec{
		Path:         fmt.Sprintf("%s/commercial/%s", ownership, propertyType),
		Ownership:    ownership,
		PropertyType: propertyType,
	}
	switch {
	case ownership == "sale" && propertyType == "office":
		spec.Body = model.OfficeSale{RoomCount: rooms, Data: g.saleData()}
	case ownership == "sale":
		spec.Body = model.ShopSale{RoomCount: rooms, Data: g.saleData()}
	case propertyType == "office":
		spec.Body = model.OfficeRent{RoomCount: rooms, Data: g.rentData()}
	default:
		spec.Body = model.ShopRent{RoomCount: rooms, Data: g.rentData()}
	}
	return spec
}

func (g *Generator) villa(ownership string) listingSpec {
	yard := float64(g.rng.Intn(200) + 20)
	spec := listingSpec{
		Path:         ownership + "/residential/villa",
		Ownership:    ownership,
		PropertyType: "villa",
	}
	if ownership == "sale" {
		spec.Body = model.VillaSale{YardArea: yard, Data: g.saleData()}
	} else {
		spec.Body = model.VillaRent{YardArea: yard, Data: g.rentData()}
	}
	return spec
}

func (g *Generator) apartment(ownership string) listingSpec {
	floors := g.rng.Intn(20) + 1
	rooms := g.rng.Intn(6) + 1
	spec := listingSpec{
		Path:         ownership + "/residential/apartment",
		Ownership:    ownership,
		PropertyType: "apartment",
	}
	if ownership == "sale" {
		spec.Body = model.ApartmentSale{FloorCount: floors, RoomCount: rooms, Data: g.saleData()}
	} else {
		spec.Body = model.ApartmentRent{FloorCount: floors, RoomCount: rooms, Data: g.rentData()}
	}
	return spec
}

func (g *Generator) saleData() model.SaleData {
	first, last := g.ownerName()
	return model.SaleData{
		Address:       g.address(),
		Email:         g.email(first, last),
		Area:          float64(g.rng.Intn(950) + 30),
		FullPrice:     float64(g.rng.Intn(900)+50) * 1000,
		OwnerFullName: first + " " + last,
	}
}

func (g *Generator) rentData() model.RentData {
	first, last := g.ownerName()
	return model.RentData{
		Address:       g.address(),
		Email:         g.email(first, last),
		Area:          float64(g.rng.Intn(950) + 30),
		RentPrice:     float64(g.rng.Intn(5000) + 300),
		MortgagePrice: float64(g.rng.Intn(40)) * 500,
		OwnerFullName: first + " " + last,
	}
}

func (g *Generator) ownerName() (string, string) {
	return firstNames[g.rng.Intn(len(firstNames))], lastNames[g.rng.Intn(len(lastNames))]
}

func (g *Generator) address() string {
	return fmt.Sprintf("%d %s", g.rng.Intn(200)+1, streets[g.rng.Intn(len(streets))])
}

func (g *Generator) email(first, last string) string {
	return fmt.Sprintf("%s.%s%d@example.com", first, last, g.rng.Intn(1000))
}
