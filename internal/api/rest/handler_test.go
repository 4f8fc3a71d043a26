package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty/internal/catalog"
	"realty/internal/storage"
	"realty/pkg/model"
)

// newTestServer returns a mux over a seeded catalog in a temp
// directory, plus the backing store for direct inspection.
func newTestServer(t *testing.T) (*http.ServeMux, *storage.Store) {
	t.Helper()
	store, err := storage.Open(storage.Config{
		DataFile: filepath.Join(t.TempDir(), "realestate.json"),
	})
	require.NoError(t, err)
	require.NoError(t, store.Update(func(doc *model.RealEstate) (bool, error) {
		doc.Sale.Land = []model.LandSale{{ID: "sale-land-1", WhatUse: "residential", Data: model.SaleData{
			Address: "12 Oak Road", Email: "alice@example.com", Area: 500, FullPrice: 100000, OwnerFullName: "Alice Brown"}}}
		doc.Sale.Commercial.Office = []model.OfficeSale{{ID: "sale-office-1", RoomCount: 3, Data: model.SaleData{
			Address: "3 Market St", Email: "bob@example.com", Area: 80, FullPrice: 90000, OwnerFullName: "Bob Stone"}}}
		doc.Sale.Residential.Villa = []model.VillaSale{{ID: "sale-villa-1", YardArea: 80, Data: model.SaleData{
			Address: "7 Ridge Way", Email: "john@example.com", Area: 120, FullPrice: 500000, OwnerFullName: "John Smith"}}}
		doc.Rent.Commercial.Shop = []model.ShopRent{{ID: "rent-shop-1", RoomCount: 1, Data: model.RentData{
			Address: "2 Corner Ln", Email: "gina@example.com", Area: 35, RentPrice: 850, MortgagePrice: 150, OwnerFullName: "Gina Ward"}}}
		doc.Rent.Residential.Apartment = []model.ApartmentRent{{ID: "rent-apartment-1", FloorCount: 7, RoomCount: 2, Data: model.RentData{
			Address: "14 Station Rd", Email: "iris@example.com", Area: 70, RentPrice: 1300, MortgagePrice: 180, OwnerFullName: "Iris Vale"}}}
		return true, nil
	}))
	return NewHandler(catalog.New(store)).Routes(), store
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

// resultIDs extracts the id of each element of a JSON array response.
func resultIDs(t *testing.T, rr *httptest.ResponseRecorder) []string {
	t.Helper()
	items := decodeBody[[]map[string]any](t, rr)
	ids := make([]string, 0, len(items))
	for _, item := range items {
		id, ok := item["id"].(string)
		require.True(t, ok, "element without id: %v", item)
		ids = append(ids, id)
	}
	return ids
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]string](t, rr)["message"]
}

func TestGetAll(t *testing.T) {
	mux, _ := newTestServer(t)

	rr := doRequest(t, mux, http.MethodGet, "/api/v1/real-estate", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	doc := decodeBody[model.RealEstate](t, rr)
	assert.Len(t, doc.Sale.Land, 1)
	assert.Len(t, doc.Rent.Residential.Apartment, 1)
	// Empty buckets serialize as [], not null.
	assert.Contains(t, rr.Body.String(), `"shop":[]`)
}

func TestSearch(t *testing.T) {
	mux, _ := newTestServer(t)

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantIDs  []string
		wantMsg  string
	}{
		{"sale union in category order", "/api/v1/real-estate/search?ownership=sale",
			http.StatusOK, []string{"sale-land-1", "sale-office-1", "sale-villa-1"}, ""},
		{"single category", "/api/v1/real-estate/search?ownership=rent&propertyType=shop",
			http.StatusOK, []string{"rent-shop-1"}, ""},
		{"commercial alias", "/api/v1/real-estate/search?ownership=sale&propertyType=commercial",
			http.StatusOK, []string{"sale-office-1"}, ""},
		{"case-insensitive", "/api/v1/real-estate/search?ownership=SALE&propertyType=Villa",
			http.StatusOK, []string{"sale-villa-1"}, ""},
		{"unknown ownership is empty", "/api/v1/real-estate/search?ownership=lease",
			http.StatusOK, []string{}, ""},
		{"unknown property type is empty", "/api/v1/real-estate/search?ownership=sale&propertyType=castle",
			http.StatusOK, []string{}, ""},
		{"second page", "/api/v1/real-estate/search?ownership=sale&page=1&size=2",
			http.StatusOK, []string{"sale-villa-1"}, ""},
		{"missing ownership", "/api/v1/real-estate/search",
			http.StatusBadRequest, nil, "ownership is required"},
		{"non-numeric page", "/api/v1/real-estate/search?ownership=sale&page=abc",
			http.StatusBadRequest, nil, "Invalid value for parameter 'page'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, mux, http.MethodGet, tt.target, "")
			require.Equal(t, tt.wantCode, rr.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errorMessage(t, rr))
				return
			}
			assert.Equal(t, tt.wantIDs, resultIDs(t, rr))
		})
	}
}

func TestSearchByKeyword(t *testing.T) {
	mux, _ := newTestServer(t)

	tests := []struct {
		name    string
		target  string
		wantIDs []string
	}{
		{"owner name", "/api/v1/real-estate/search/keyword?keyword=Smith", []string{"sale-villa-1"}},
		{"shared domain, sale before rent", "/api/v1/real-estate/search/keyword?keyword=example.com",
			[]string{"sale-land-1", "sale-office-1", "sale-villa-1", "rent-shop-1", "rent-apartment-1"}},
		{"blank keyword", "/api/v1/real-estate/search/keyword?keyword=++", []string{}},
		{"missing keyword", "/api/v1/real-estate/search/keyword", []string{}},
		{"no match", "/api/v1/real-estate/search/keyword?keyword=zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, mux, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantIDs, resultIDs(t, rr))
		})
	}
}

func TestFilter(t *testing.T) {
	mux, _ := newTestServer(t)

	rr := doRequest(t, mux, http.MethodGet,
		"/api/v1/real-estate/filter?ownership=sale&minPrice=90000&maxPrice=200000", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"sale-land-1", "sale-office-1"}, resultIDs(t, rr))

	// A room-count bound passes listings without rooms.
	rr = doRequest(t, mux, http.MethodGet,
		"/api/v1/real-estate/filter?ownership=sale&minRoomCount=2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"sale-land-1", "sale-office-1", "sale-villa-1"}, resultIDs(t, rr))

	rr = doRequest(t, mux, http.MethodGet, "/api/v1/real-estate/filter?minPrice=1", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "ownership is required", errorMessage(t, rr))

	rr = doRequest(t, mux, http.MethodGet,
		"/api/v1/real-estate/filter?ownership=sale&minPrice=high", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid value for parameter 'minPrice'", errorMessage(t, rr))
}

func TestStats(t *testing.T) {
	mux, _ := newTestServer(t)

	rr := doRequest(t, mux, http.MethodGet, "/api/v1/real-estate/stats?ownership=sale", "")
	require.Equal(t, http.StatusOK, rr.Code)

	st := decodeBody[catalog.Stats](t, rr)
	require.NotNil(t, st.MinPrice)
	assert.Equal(t, 90000.0, *st.MinPrice)
	assert.Equal(t, 500000.0, *st.MaxPrice)
	assert.Equal(t, 80.0, *st.MaxYardArea)

	// Absent capabilities serialize as null, never as zero.
	assert.Contains(t, rr.Body.String(), `"minMortgagePrice":null`)
	assert.Contains(t, rr.Body.String(), `"minFloorCount":null`)

	rr = doRequest(t, mux, http.MethodGet, "/api/v1/real-estate/stats", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "ownership is required", errorMessage(t, rr))
}

func TestCreate(t *testing.T) {
	mux, store := newTestServer(t)

	body := `{
		"yardArea": 55,
		"data": {
			"address": "21 Birch Lane",
			"ownerFullName": "Mara Quinn",
			"email": "mara@example.com",
			"area": 140,
			"fullPrice": 310000
		}
	}`
	rr := doRequest(t, mux, http.MethodPost, "/api/v1/real-estate/sale/residential/villa", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	stored := decodeBody[model.VillaSale](t, rr)
	_, err := uuid.Parse(stored.ID)
	assert.NoError(t, err)
	assert.Equal(t, 55.0, stored.YardArea)
	assert.Equal(t, "Mara Quinn", stored.Data.OwnerFullName)

	doc := store.Get()
	require.Len(t, doc.Sale.Residential.Villa, 2)
	assert.Equal(t, stored.ID, doc.Sale.Residential.Villa[1].ID)
}

func TestCreate_ValidationFailure(t *testing.T) {
	mux, store := newTestServer(t)

	tests := []struct {
		name    string
		target  string
		body    string
		wantMsg string
	}{
		{"missing payload", "/api/v1/real-estate/rent/commercial/office", `{"roomCount": 2}`,
			"data is required"},
		{"zero rent price", "/api/v1/real-estate/rent/commercial/office",
			`{"roomCount": 2, "data": {"address": "1 A St", "ownerFullName": "Ana Bell", "email": "ana@example.com", "area": 40, "rentPrice": 0, "mortgagePrice": 10}}`,
			"rentPrice must be greater than 0"},
		{"invalid land use", "/api/v1/real-estate/sale/land",
			`{"whatUse": "industrial", "data": {"address": "1 A St", "ownerFullName": "Ana Bell", "email": "ana@example.com", "area": 40, "fullPrice": 1000}}`,
			"Invalid whatUse for land. Allowed: residential, commercial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, mux, http.MethodPost, tt.target, tt.body)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rr))
		})
	}

	// Failed creates never touch the document.
	doc := store.Get()
	assert.Empty(t, doc.Rent.Commercial.Office)
	assert.Len(t, doc.Sale.Land, 1)
}

func TestCreate_MalformedBody(t *testing.T) {
	mux, _ := newTestServer(t)

	rr := doRequest(t, mux, http.MethodPost, "/api/v1/real-estate/sale/residential/villa",
		`{"yardArea": "big"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid value for field 'yardArea'. Expected float64", errorMessage(t, rr))

	rr = doRequest(t, mux, http.MethodPost, "/api/v1/real-estate/sale/residential/villa", `not json`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid request format", errorMessage(t, rr))
}

func TestDelete(t *testing.T) {
	mux, store := newTestServer(t)

	rr := doRequest(t, mux, http.MethodDelete, "/api/v1/real-estate/rent/shop/rent-shop-1", "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Empty(t, store.Get().Rent.Commercial.Shop)

	rr = doRequest(t, mux, http.MethodDelete, "/api/v1/real-estate/rent/shop/rent-shop-1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "listing not found", errorMessage(t, rr))

	// Aggregate aliases are not valid delete targets.
	rr = doRequest(t, mux, http.MethodDelete, "/api/v1/real-estate/sale/commercial/sale-office-1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Len(t, store.Get().Sale.Commercial.Office, 1)
}

func TestIndex(t *testing.T) {
	mux, _ := newTestServer(t)

	for _, target := range []string{"/api", "/api/"} {
		rr := doRequest(t, mux, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rr.Code, target)

		idx := decodeBody[indexResponse](t, rr)
		assert.Equal(t, "Welcome to the Real Estate API", idx.Message)
		assert.NotEmpty(t, idx.Routes)
		assert.True(t, strings.HasPrefix(idx.Routes[0], "GET /api/v1/real-estate"))
		assert.Equal(t, 5, idx.Statistics.Overall.TotalProperties)
		assert.Equal(t, 3, idx.Statistics.Overall.SaleProperties)
		assert.Equal(t, 1, idx.Statistics.ByPropertyType.Shop)
	}
}
