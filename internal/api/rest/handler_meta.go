package rest

import (
	"net/http"

	"realty/internal/catalog"
)

type indexResponse struct {
	Message     string         `json:"message"`
	Description string         `json:"description"`
	Routes      []string       `json:"routes"`
	Statistics  catalog.Counts `json:"statistics"`
}

// handleIndex serves the API index: a route listing plus per-bucket
// counts of the current document.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{
		Message:     "Welcome to the Real Estate API",
		Description: "CRUD and search over a file-backed catalog of sale and rent listings.",
		Routes: []string{
			"GET /api/v1/real-estate",

			"GET /api/v1/real-estate/search?ownership={sale|rent}&propertyType={land|office|shop|villa|apartment}&page={n}&size={m}",
			"GET /api/v1/real-estate/search/keyword?keyword={text}&page={n}&size={m}",
			"GET /api/v1/real-estate/filter?ownership={sale|rent}&propertyType={land|office|shop|villa|apartment}&minPrice={n}&maxPrice={n}&minArea={n}&maxArea={n}&minRoomCount={n}&maxRoomCount={n}&minYardArea={n}&maxYardArea={n}&minFloorCount={n}&maxFloorCount={n}&minMortgagePrice={n}&maxMortgagePrice={n}&page={n}&size={m}",
			"GET /api/v1/real-estate/stats?ownership={sale|rent}&propertyType={land|office|shop|villa|apartment}",

			"POST /api/v1/real-estate/sale/land",
			"POST /api/v1/real-estate/sale/commercial/office",
			"POST /api/v1/real-estate/sale/commercial/shop",
			"POST /api/v1/real-estate/sale/residential/villa",
			"POST /api/v1/real-estate/sale/residential/apartment",

			"POST /api/v1/real-estate/rent/land",
			"POST /api/v1/real-estate/rent/commercial/office",
			"POST /api/v1/real-estate/rent/commercial/shop",
			"POST /api/v1/real-estate/rent/residential/villa",
			"POST /api/v1/real-estate/rent/residential/apartment",

			"DELETE /api/v1/real-estate/{ownership}/{propertyType}/{id}",

			"GET /api/",
		},
		Statistics: h.catalog.Counts(),
	})
}
