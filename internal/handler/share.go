package handler

import (
	"net/http"

	"github.com/ocallan/figureshelf/internal/domain"
	"github.com/ocallan/figureshelf/internal/service"
)

// ShareHandler handles the owner-facing share link HTTP requests.
type ShareHandler struct {
	shares *service.ShareService
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(shares *service.ShareService) *ShareHandler {
	return &ShareHandler{shares: shares}
}

// HandleGet returns the caller's share link for the kind, if any.
// GET /api/shares/{kind}
func (h *ShareHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	kind, ok := domain.ParseShareKind(r.PathValue("kind"))
	if !ok {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}

	link, err := h.shares.Get(r.Context(), user.ID, kind)
	if err != nil {
		writeDomainError(w, "get share link", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"share": toShareLinkDTO(link)})
}

// HandleCreateOrRefresh creates the caller's share link for the kind, or
// refreshes the existing one in place without rotating its token.
// POST /api/shares/{kind}
// Request:  {"title":"My shelf","description":"..."}
// Response: {"share": {...}}
func (h *ShareHandler) HandleCreateOrRefresh(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	kind, ok := domain.ParseShareKind(r.PathValue("kind"))
	if !ok {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	link, err := h.shares.CreateOrRefresh(r.Context(), user.ID, kind, req.Title, req.Description)
	if err != nil {
		writeDomainError(w, "create share link", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"share": toShareLinkDTO(link)})
}

// HandleSetActive enables or disables the caller's share link. Disabling
// keeps the row, token, and view count.
// PATCH /api/shares/{kind}
// Request: {"active":false}
func (h *ShareHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	kind, ok := domain.ParseShareKind(r.PathValue("kind"))
	if !ok {
		writeError(w, http.StatusNotFound, "Not found.")
		return
	}

	var req struct {
		Active *bool `json:"active"`
	}
	if err := readJSON(r, &req); err != nil || req.Active == nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	link, err := h.shares.SetActive(r.Context(), user.ID, kind, *req.Active)
	if err != nil {
		writeDomainError(w, "set share link active", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"share": toShareLinkDTO(link)})
}
