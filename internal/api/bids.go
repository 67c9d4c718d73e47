package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/kasozi/homefind/internal/auction"
	"github.com/kasozi/homefind/internal/store"
)

// BidsHandler handles auction bidding endpoints.
type BidsHandler struct {
	DB *sql.DB

	// now is swappable for tests.
	now func() time.Time
}

func (h *BidsHandler) clock() time.Time {
	if h.now != nil {
		return h.now()
	}
	return time.Now()
}

// Place handles POST /api/properties/{id}/bid. The bid amount is not
// client-supplied: each accepted bid advances the current bid by the
// property's fixed increment.
func (h *BidsHandler) Place(w http.ResponseWriter, r *http.Request) {
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

	amount, err := auction.NextBid(*prop, h.clock())
	switch {
	case errors.Is(err, auction.ErrNotAuction):
		jsonError(w, http.StatusBadRequest, "property is not an auction")
		return
	case errors.Is(err, auction.ErrAuctionClosed):
		jsonError(w, http.StatusConflict, "auction is closed for bidding")
		return
	case err != nil:
		jsonError(w, http.StatusInternalServerError, "failed to place bid")
		return
	}

	bid, err := store.RecordBid(r.Context(), h.DB, id, amount, uuid.NewString())
	if err != nil {
		slog.Error("failed to record bid", "error", err, "property", id)
		jsonError(w, http.StatusInternalServerError, "failed to record bid")
		return
	}

	slog.Info("bid placed", "property", prop.Title, "amount", amount, "receipt", bid.Receipt)
	jsonResponse(w, http.StatusCreated, bid)
}

// List handles GET /api/properties/{id}/bids.
func (h *BidsHandler) List(w http.ResponseWriter, r *http.Request) {
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

	bids, err := store.ListBids(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to list bids", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list bids")
		return
	}
	if bids == nil {
		bids = []store.Bid{}
	}
	jsonResponse(w, http.StatusOK, bids)
}
