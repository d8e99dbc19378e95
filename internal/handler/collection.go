package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/ocallan/figureshelf/internal/domain"
	"github.com/ocallan/figureshelf/internal/service"
)

// CollectionHandler handles collection HTTP requests.
type CollectionHandler struct {
	collection *service.CollectionService
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(collection *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collection: collection}
}

// HandleList returns the caller's collection, newest acquisitions first.
// GET /api/collection
func (h *CollectionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	entries, err := h.collection.List(r.Context(), user.ID)
	if err != nil {
		writeDomainError(w, "list collection", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"collection": toCollectionEntryDTOs(entries)})
}

// HandleAdd records ownership of an item.
// POST /api/collection/{itemID}
// Request:  {"condition":"mint","note":"","isFavorite":false,"acquiredAt":"..."} (all optional)
// Response: {"entry": {...}}
func (h *CollectionHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	itemID := r.PathValue("itemID")

	var req struct {
		Condition  string `json:"condition"`
		Note       string `json:"note"`
		IsFavorite bool   `json:"isFavorite"`
		AcquiredAt string `json:"acquiredAt"`
	}
	if r.ContentLength > 0 {
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
	}

	opts := service.AddOptions{
		Condition:  req.Condition,
		Note:       req.Note,
		IsFavorite: req.IsFavorite,
	}
	if req.AcquiredAt != "" {
		t, err := time.Parse(time.RFC3339, req.AcquiredAt)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "acquiredAt must be an RFC 3339 timestamp.")
			return
		}
		opts.AcquiredAt = t
	}

	entry, err := h.collection.Add(r.Context(), user.ID, itemID, opts)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			writeError(w, http.StatusConflict, "Item is already in your collection.")
			return
		}
		writeDomainError(w, "add to collection", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"entry": toCollectionEntryDTO(*entry)})
}

// HandleRemove deletes the ownership record. Removal of an absent record is
// not an error for the caller; X-Removed reports whether a row was deleted.
// DELETE /api/collection/{itemID}
func (h *CollectionHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	itemID := r.PathValue("itemID")

	removed := true
	if err := h.collection.Remove(r.Context(), user.ID, itemID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			writeDomainError(w, "remove from collection", err)
			return
		}
		removed = false
	}

	if removed {
		w.Header().Set("X-Removed", "true")
	} else {
		w.Header().Set("X-Removed", "false")
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetFavorite flips the favorite flag on an owned item.
// PATCH /api/collection/{itemID}/favorite
// Request: {"isFavorite":true}
func (h *CollectionHandler) HandleSetFavorite(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	itemID := r.PathValue("itemID")

	var req struct {
		IsFavorite bool `json:"isFavorite"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.collection.SetFavorite(r.Context(), user.ID, itemID, req.IsFavorite); err != nil {
		writeDomainError(w, "set favorite", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
