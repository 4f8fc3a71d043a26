package catalog

import "realty/pkg/model"

// Stats holds the elementwise min/max of the numeric capabilities over
// a search result. A field absent on every matching listing stays nil
// and serializes as null, never as zero. Mortgage bounds are reported
// for the rent branch only.
type Stats struct {
	MinArea          *float64 `json:"minArea"`
	MaxArea          *float64 `json:"maxArea"`
	MinPrice         *float64 `json:"minPrice"`
	MaxPrice         *float64 `json:"maxPrice"`
	MinRoomCount     *int     `json:"minRoomCount"`
	MaxRoomCount     *int     `json:"maxRoomCount"`
	MinFloorCount    *int     `json:"minFloorCount"`
	MaxFloorCount    *int     `json:"maxFloorCount"`
	MinYardArea      *float64 `json:"minYardArea"`
	MaxYardArea      *float64 `json:"maxYardArea"`
	MinMortgagePrice *float64 `json:"minMortgagePrice"`
	MaxMortgagePrice *float64 `json:"maxMortgagePrice"`
}

// Stats aggregates min/max over the Search result for (ownership,
// propertyType).
func (s *Service) Stats(ownership, propertyType string) Stats {
	own, _ := model.ParseOwnership(ownership)

	var st Stats
	for _, item := range s.Search(ownership, propertyType) {
		v := item.Fields()

		st.MinArea = lowerFloat(st.MinArea, v.Area)
		st.MaxArea = upperFloat(st.MaxArea, v.Area)
		st.MinPrice = lowerFloat(st.MinPrice, v.Price)
		st.MaxPrice = upperFloat(st.MaxPrice, v.Price)

		if own == model.OwnershipRent && v.MortgagePrice != nil {
			st.MinMortgagePrice = lowerFloat(st.MinMortgagePrice, *v.MortgagePrice)
			st.MaxMortgagePrice = upperFloat(st.MaxMortgagePrice, *v.MortgagePrice)
		}
		if v.RoomCount != nil {
			st.MinRoomCount = lowerInt(st.MinRoomCount, *v.RoomCount)
			st.MaxRoomCount = upperInt(st.MaxRoomCount, *v.RoomCount)
		}
		if v.FloorCount != nil {
			st.MinFloorCount = lowerInt(st.MinFloorCount, *v.FloorCount)
			st.MaxFloorCount = upperInt(st.MaxFloorCount, *v.FloorCount)
		}
		if v.YardArea != nil {
			st.MinYardArea = lowerFloat(st.MinYardArea, *v.YardArea)
			st.MaxYardArea = upperFloat(st.MaxYardArea, *v.YardArea)
		}
	}
	return st
}

func lowerFloat(cur *float64, v float64) *float64 {
	if cur == nil || v < *cur {
		return &v
	}
	return cur
}

func upperFloat(cur *float64, v float64) *float64 {
	if cur == nil || v > *cur {
		return &v
	}
	return cur
}

func lowerInt(cur *int, v int) *int {
	if cur == nil || v < *cur {
		return &v
	}
	return cur
}

func upperInt(cur *int, v int) *int {
	if cur == nil || v > *cur {
		return &v
	}
	return cur
}
