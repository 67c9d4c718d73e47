package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kasozi/homefind/internal/catalog"
	"github.com/kasozi/homefind/internal/imaging"
	"github.com/kasozi/homefind/internal/model"
	"github.com/kasozi/homefind/internal/store"
)

// PropertiesHandler handles catalog browsing and management endpoints.
type PropertiesHandler struct {
	DB *sql.DB
}

// loadCatalog fetches all properties for the in-memory query helpers.
func (h *PropertiesHandler) loadCatalog(w http.ResponseWriter, r *http.Request) ([]model.Property, bool) {
	props, err := store.ListProperties(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list properties", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list properties")
		return nil, false
	}
	if props == nil {
		props = []model.Property{}
	}
	return props, true
}

// List handles GET /api/properties.
func (h *PropertiesHandler) List(w http.ResponseWriter, r *http.Request) {
	props, ok := h.loadCatalog(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, props)
}

// Featured handles GET /api/properties/featured.
func (h *PropertiesHandler) Featured(w http.ResponseWriter, r *http.Request) {
	props, ok := h.loadCatalog(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, catalog.Featured(props))
}

// ByCategory handles GET /api/properties/category/{category}.
func (h *PropertiesHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	props, ok := h.loadCatalog(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, catalog.ByCategory(props, r.PathValue("category")))
}

// Search handles GET /api/properties/search?q=.
func (h *PropertiesHandler) Search(w http.ResponseWriter, r *http.Request) {
	props, ok := h.loadCatalog(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, catalog.Search(props, r.URL.Query().Get("q")))
}

// Filter handles POST /api/properties/filter.
func (h *PropertiesHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var filter catalog.Filter
	if err := decodeJSON(r, &filter); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid filter body")
		return
	}

	props, ok := h.loadCatalog(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, filter.Apply(props))
}

// Get handles GET /api/properties/{id}.
func (h *PropertiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	prop, err := store.GetProperty(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get property", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get property")
		return
	}
	if prop == nil {
		jsonError(w, http.StatusNotFound, "property not found")
		return
	}

	jsonResponse(w, http.StatusOK, prop)
}

// Create handles POST /api/properties.
func (h *PropertiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.Property
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if p.Title == "" || p.Location == "" {
		jsonError(w, http.StatusBadRequest, "title and location required")
		return
	}
	if !model.ValidCategory(p.Category) {
		jsonError(w, http.StatusBadRequest, "invalid category")
		return
	}
	if p.Category == model.CategoryBankSales && p.AuctionDate != nil {
		if p.BidIncrement <= 0 {
			jsonError(w, http.StatusBadRequest, "auction requires a positive bid increment")
			return
		}
		if p.CurrentBid == 0 {
			p.CurrentBid = p.StartingBid
		}
		// The current bid only ever moves in whole increments from the
		// starting bid, so reject listings that start off that grid.
		if p.CurrentBid < p.StartingBid {
			jsonError(w, http.StatusBadRequest, "current bid cannot be below the starting bid")
			return
		}
		if (p.CurrentBid-p.StartingBid)%p.BidIncrement != 0 {
			jsonError(w, http.StatusBadRequest, "current bid must be a whole number of increments above the starting bid")
			return
		}
		if p.AuctionStatus == "" {
			p.AuctionStatus = model.AuctionActive
		}
	}

	created, err := store.CreateProperty(r.Context(), h.DB, p)
	if err != nil {
		slog.Error("failed to create property", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create property")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("property created", "user", claims.Username, "property", created.Title, "category", created.Category)
	jsonResponse(w, http.StatusCreated, created)
}

// UploadPhoto handles PUT /api/properties/{id}/photo.
func (h *PropertiesHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	prop, err := store.GetProperty(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get property")
		return
	}
	if prop == nil {
		jsonError(w, http.StatusNotFound, "property not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes)
	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetPropertyPhoto(r.Context(), h.DB, id, photo.Data, photo.MIME); err != nil {
		slog.Error("failed to save photo", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save photo")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo uploaded"})
}

// GetPhoto handles GET /api/properties/{id}/photo.
func (h *PropertiesHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	data, mime, err := store.GetPropertyPhoto(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get photo")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
