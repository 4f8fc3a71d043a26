package rest

import (
	"encoding/json"
	"net/http"

	"realty/pkg/model"
)

// createHandler decodes a listing-shaped body (sans id), runs the add
// operation and returns the stored listing with its assigned id.
func createHandler[T model.Listing](add func(T) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item T
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeError(w, http.StatusBadRequest, bodyErrorMessage(err))
			return
		}

		stored, err := add(item)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, stored)
	}
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.catalog.Delete(
		r.PathValue("ownership"),
		r.PathValue("propertyType"),
		r.PathValue("id"),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, model.ErrNotFound.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
