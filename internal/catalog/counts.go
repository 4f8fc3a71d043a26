package catalog

// BranchCounts is the per-category listing tally for one ownership
// branch.
type BranchCounts struct {
	Land      int `json:"land"`
	Office    int `json:"office"`
	Shop      int `json:"shop"`
	Villa     int `json:"villa"`
	Apartment int `json:"apartment"`
	Total     int `json:"total"`
}

// OverallCounts sums both branches.
type OverallCounts struct {
	TotalProperties int `json:"totalProperties"`
	SaleProperties  int `json:"saleProperties"`
	RentProperties  int `json:"rentProperties"`
}

// TypeCounts tallies each property type across both branches.
type TypeCounts struct {
	Land      int `json:"land"`
	Office    int `json:"office"`
	Shop      int `json:"shop"`
	Villa     int `json:"villa"`
	Apartment int `json:"apartment"`
}

// Counts is the document-wide tally served by the API index.
type Counts struct {
	Sale           BranchCounts  `json:"sale"`
	Rent           BranchCounts  `json:"rent"`
	Overall        OverallCounts `json:"overall"`
	ByPropertyType TypeCounts    `json:"byPropertyType"`
}

// Counts tallies the current document per bucket, per branch and per
// property type.
func (s *Service) Counts() Counts {
	doc := s.store.Get()

	sale := BranchCounts{
		Land:      len(doc.Sale.Land),
		Office:    len(doc.Sale.Commercial.Office),
		Shop:      len(doc.Sale.Commercial.Shop),
		Villa:     len(doc.Sale.Residential.Villa),
		Apartment: len(doc.Sale.Residential.Apartment),
	}
	sale.Total = sale.Land + sale.Office + sale.Shop + sale.Villa + sale.Apartment

	rent := BranchCounts{
		Land:      len(doc.Rent.Land),
		Office:    len(doc.Rent.Commercial.Office),
		Shop:      len(doc.Rent.Commercial.Shop),
		Villa:     len(doc.Rent.Residential.Villa),
		Apartment: len(doc.Rent.Residential.Apartment),
	}
	rent.Total = rent.Land + rent.Office + rent.Shop + rent.Villa + rent.Apartment

	return Counts{
		Sale: sale,
		Rent: rent,
		Overall: OverallCounts{
			TotalProperties: sale.Total + rent.Total,
			SaleProperties:  sale.Total,
			RentProperties:  rent.Total,
		},
		ByPropertyType: TypeCounts{
			Land:      sale.Land + rent.Land,
			Office:    sale.Office + rent.Office,
			Shop:      sale.Shop + rent.Shop,
			Villa:     sale.Villa + rent.Villa,
			Apartment: sale.Apartment + rent.Apartment,
		},
	}
}
