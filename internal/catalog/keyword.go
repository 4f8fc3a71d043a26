package catalog

import (
	"strconv"
	"strings"

	"realty/pkg/model"
)

// SearchByKeyword returns every listing, across both ownerships and all
// categories, whose searchable text contains the keyword. Matching is a
// case-insensitive substring test; a blank keyword yields an empty
// result. The sale branch is scanned before the rent branch, each in
// the fixed category order.
func (s *Service) SearchByKeyword(keyword string) []model.Listing {
	term := strings.ToLower(strings.TrimSpace(keyword))
	if term == "" {
		return []model.Listing{}
	}

	all := s.Search(string(model.OwnershipSale), "")
	all = append(all, s.Search(string(model.OwnershipRent), "")...)

	result := make([]model.Listing, 0)
	for _, item := range all {
		if strings.Contains(searchableText(item.Fields()), term) {
			result = append(result, item)
		}
	}
	return result
}

// searchableText joins the listing's text and numeric fields with
// spaces, lower-cased: id, owner, address, email, then the optional
// whatUse, roomCount, floorCount and yardArea, then area and price.
// Mortgage price is deliberately not searchable.
func searchableText(v model.View) string {
	parts := []string{
		strings.ToLower(v.ID),
		strings.ToLower(v.OwnerFullName),
		strings.ToLower(v.Address),
		strings.ToLower(v.Email),
	}
	if v.WhatUse != "" {
		parts = append(parts, strings.ToLower(v.WhatUse))
	}
	if v.RoomCount != nil {
		parts = append(parts, strconv.Itoa(*v.RoomCount))
	}
	if v.FloorCount != nil {
		parts = append(parts, strconv.Itoa(*v.FloorCount))
	}
	if v.YardArea != nil {
		parts = append(parts, formatNumber(*v.YardArea))
	}
	parts = append(parts, formatNumber(v.Area), formatNumber(v.Price))
	return strings.Join(parts, " ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
