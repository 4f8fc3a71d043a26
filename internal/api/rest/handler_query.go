package rest

import (
	"net/http"

	"realty/internal/catalog"
)

func (h *Handler) handleGetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Document())
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var p searchParams
	if err := decodeQuery(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, queryErrorMessage(err))
		return
	}
	if p.Ownership == "" {
		writeError(w, http.StatusBadRequest, "ownership is required")
		return
	}

	results := h.catalog.Search(p.Ownership, p.PropertyType)
	writeJSON(w, http.StatusOK, catalog.Paginate(results, p.Page, p.Size))
}

func (h *Handler) handleSearchByKeyword(w http.ResponseWriter, r *http.Request) {
	var p keywordParams
	if err := decodeQuery(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, queryErrorMessage(err))
		return
	}

	results := h.catalog.SearchByKeyword(p.Keyword)
	writeJSON(w, http.StatusOK, catalog.Paginate(results, p.Page, p.Size))
}

func (h *Handler) handleFilter(w http.ResponseWriter, r *http.Request) {
	var p filterParams
	if err := decodeQuery(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, queryErrorMessage(err))
		return
	}
	if p.Ownership == "" {
		writeError(w, http.StatusBadRequest, "ownership is required")
		return
	}

	results := h.catalog.Filter(p.Ownership, p.PropertyType, p.bounds())
	writeJSON(w, http.StatusOK, catalog.Paginate(results, p.Page, p.Size))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	var p statsParams
	if err := decodeQuery(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, queryErrorMessage(err))
		return
	}
	if p.Ownership == "" {
		writeError(w, http.StatusBadRequest, "ownership is required")
		return
	}

	writeJSON(w, http.StatusOK, h.catalog.Stats(p.Ownership, p.PropertyType))
}
