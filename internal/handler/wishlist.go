package handler

import (
	"errors"
	"net/http"

	"github.com/ocallan/figureshelf/internal/domain"
	"github.com/ocallan/figureshelf/internal/service"
)

// WishlistHandler handles wishlist HTTP requests.
type WishlistHandler struct {
	wishlist *service.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlist *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

// HandleList returns the caller's wishlist, newest first.
// GET /api/wishlist
func (h *WishlistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	entries, err := h.wishlist.List(r.Context(), user.ID)
	if err != nil {
		writeDomainError(w, "list wishlist", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"wishlist": toWishlistEntryDTOs(entries)})
}

// HandleAdd records desire for an item.
// POST /api/wishlist/{itemID}
// Request:  {"priority":3,"note":""} (all optional)
// Response: {"entry": {...}}
func (h *WishlistHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	itemID := r.PathValue("itemID")

	var req struct {
		Priority int    `json:"priority"`
		Note     string `json:"note"`
	}
	if r.ContentLength > 0 {
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
	}

	entry, err := h.wishlist.Add(r.Context(), user.ID, itemID, service.WishOptions{
		Priority: req.Priority,
		Note:     req.Note,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			writeError(w, http.StatusConflict, "Item is already on your wishlist.")
			return
		}
		writeDomainError(w, "add to wishlist", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"entry": toWishlistEntryDTO(*entry)})
}

// HandleRemove deletes the wishlist record. Removal of an absent record is
// not an error for the caller; X-Removed reports whether a row was deleted.
// DELETE /api/wishlist/{itemID}
func (h *WishlistHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	itemID := r.PathValue("itemID")

	removed := true
	if err := h.wishlist.Remove(r.Context(), user.ID, itemID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			writeDomainError(w, "remove from wishlist", err)
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
