package catalog

import "realty/pkg/model"

// Bounds is a set of optional inclusive range predicates. A bound on a
// field the listing does not expose passes vacuously: a missing
// capability skips the predicate rather than rejecting the listing.
type Bounds struct {
	MinPrice         *float64
	MaxPrice         *float64
	MinArea          *float64
	MaxArea          *float64
	MinRoomCount     *int
	MaxRoomCount     *int
	MinYardArea      *float64
	MaxYardArea      *float64
	MinFloorCount    *int
	MaxFloorCount    *int
	MinMortgagePrice *float64
	MaxMortgagePrice *float64
}

// Match reports whether the view satisfies every supplied bound.
func (b Bounds) Match(v model.View) bool {
	if !inRangeFloat(v.Area, b.MinArea, b.MaxArea) {
		return false
	}
	if !inRangeFloat(v.Price, b.MinPrice, b.MaxPrice) {
		return false
	}
	if v.MortgagePrice != nil && !inRangeFloat(*v.MortgagePrice, b.MinMortgagePrice, b.MaxMortgagePrice) {
		return false
	}
	if v.RoomCount != nil && !inRangeInt(*v.RoomCount, b.MinRoomCount, b.MaxRoomCount) {
		return false
	}
	if v.YardArea != nil && !inRangeFloat(*v.YardArea, b.MinYardArea, b.MaxYardArea) {
		return false
	}
	if v.FloorCount != nil && !inRangeInt(*v.FloorCount, b.MinFloorCount, b.MaxFloorCount) {
		return false
	}
	return true
}

// Filter restricts the Search result for (ownership, propertyType) by
// the given bounds.
func (s *Service) Filter(ownership, propertyType string, b Bounds) []model.Listing {
	base := s.Search(ownership, propertyType)
	result := make([]model.Listing, 0, len(base))
	for _, item := range base {
		if b.Match(item.Fields()) {
			result = append(result, item)
		}
	}
	return result
}

func inRangeFloat(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func inRangeInt(v int, min, max *int) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}
