package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/kasozi/homefind/internal/model"
	"github.com/kasozi/homefind/internal/store"
)

// ReferenceHandler serves the amenity and property-type reference data.
type ReferenceHandler struct {
	DB *sql.DB
}

type createAmenityRequest struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type createPropertyTypeRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ListAmenities handles GET /api/amenities.
func (h *ReferenceHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := store.ListAmenities(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list amenities", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list amenities")
		return
	}
	if amenities == nil {
		amenities = []model.Amenity{}
	}
	jsonResponse(w, http.StatusOK, amenities)
}

// CreateAmenity handles POST /api/amenities.
func (h *ReferenceHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var req createAmenityRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	amenity, err := store.CreateAmenity(r.Context(), h.DB, req.Name, req.Icon, req.Description)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create amenity")
		return
	}
	jsonResponse(w, http.StatusCreated, amenity)
}

// ListPropertyTypes handles GET /api/property-types.
func (h *ReferenceHandler) ListPropertyTypes(w http.ResponseWriter, r *http.Request) {
	types, err := store.ListPropertyTypes(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list property types", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list property types")
		return
	}
	if types == nil {
		types = []model.PropertyType{}
	}
	jsonResponse(w, http.StatusOK, types)
}

// CreatePropertyType handles POST /api/property-types.
func (h *ReferenceHandler) CreatePropertyType(w http.ResponseWriter, r *http.Request) {
	var req createPropertyTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	pt, err := store.CreatePropertyType(r.Context(), h.DB, req.Name, req.Icon)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create property type")
		return
	}
	jsonResponse(w, http.StatusCreated, pt)
}
