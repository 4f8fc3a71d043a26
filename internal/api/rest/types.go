package rest

import "realty/internal/catalog"

// Query parameter shapes, decoded with gorilla/schema. Page, size and
// all bounds are pointers: an absent parameter is not the same as zero.

type searchParams struct {
	Ownership    string `schema:"ownership"`
	PropertyType string `schema:"propertyType"`
	Page         *int   `schema:"page"`
	Size         *int   `schema:"size"`
}

type keywordParams struct {
	Keyword string `schema:"keyword"`
	Page    *int   `schema:"page"`
	Size    *int   `schema:"size"`
}

type statsParams struct {
	Ownership    string `schema:"ownership"`
	PropertyType string `schema:"propertyType"`
}

type filterParams struct {
	Ownership        string   `schema:"ownership"`
	PropertyType     string   `schema:"propertyType"`
	MinPrice         *float64 `schema:"minPrice"`
	MaxPrice         *float64 `schema:"maxPrice"`
	MinArea          *float64 `schema:"minArea"`
	MaxArea          *float64 `schema:"maxArea"`
	MinRoomCount     *int     `schema:"minRoomCount"`
	MaxRoomCount     *int     `schema:"maxRoomCount"`
	MinYardArea      *float64 `schema:"minYardArea"`
	MaxYardArea      *float64 `schema:"maxYardArea"`
	MinFloorCount    *int     `schema:"minFloorCount"`
	MaxFloorCount    *int     `schema:"maxFloorCount"`
	MinMortgagePrice *float64 `schema:"minMortgagePrice"`
	MaxMortgagePrice *float64 `schema:"maxMortgagePrice"`
	Page             *int     `schema:"page"`
	Size             *int     `schema:"size"`
}

func (p filterParams) bounds() catalog.Bounds {
	return catalog.Bounds{
		MinPrice:         p.MinPrice,
		MaxPrice:         p.MaxPrice,
		MinArea:          p.MinArea,
		MaxArea:          p.MaxArea,
		MinRoomCount:     p.MinRoomCount,
		MaxRoomCount:     p.MaxRoomCount,
		MinYardArea:      p.MinYardArea,
		MaxYardArea:      p.MaxYardArea,
		MinFloorCount:    p.MinFloorCount,
		MaxFloorCount:    p.MaxFloorCount,
		MinMortgagePrice: p.MinMortgagePrice,
		MaxMortgagePrice: p.MaxMortgagePrice,
	}
}
