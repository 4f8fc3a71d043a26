package rest

import "net/http"

// Routes builds the ServeMux for the whole API surface.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api", h.handleIndex)
	mux.HandleFunc("GET /api/{$}", h.handleIndex)

	mux.HandleFunc("GET /api/v1/real-estate", h.handleGetAll)
	mux.HandleFunc("GET /api/v1/real-estate/search", h.handleSearch)
	mux.HandleFunc("GET /api/v1/real-estate/search/keyword", h.handleSearchByKeyword)
	mux.HandleFunc("GET /api/v1/real-estate/filter", h.handleFilter)
	mux.HandleFunc("GET /api/v1/real-estate/stats", h.handleStats)

	mux.Handle("POST /api/v1/real-estate/sale/land", createHandler(h.catalog.AddLandSale))
	mux.Handle("POST /api/v1/real-estate/sale/commercial/office", createHandler(h.catalog.AddOfficeSale))
	mux.Handle("POST /api/v1/real-estate/sale/commercial/shop", createHandler(h.catalog.AddShopSale))
	mux.Handle("POST /api/v1/real-estate/sale/residential/villa", createHandler(h.catalog.AddVillaSale))
	mux.Handle("POST /api/v1/real-estate/sale/residential/apartment", createHandler(h.catalog.AddApartmentSale))

	mux.Handle("POST /api/v1/real-estate/rent/land", createHandler(h.catalog.AddLandRent))
	mux.Handle("POST /api/v1/real-estate/rent/commercial/office", createHandler(h.catalog.AddOfficeRent))
	mux.Handle("POST /api/v1/real-estate/rent/commercial/shop", createHandler(h.catalog.AddShopRent))
	mux.Handle("POST /api/v1/real-estate/rent/residential/villa", createHandler(h.catalog.AddVillaRent))
	mux.Handle("POST /api/v1/real-estate/rent/residential/apartment", createHandler(h.catalog.AddApartmentRent))

	mux.HandleFunc("DELETE /api/v1/real-estate/{ownership}/{propertyType}/{id}", h.handleDelete)

	return mux
}
