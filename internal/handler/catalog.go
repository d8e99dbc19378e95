package handler

import (
	"net/http"

	"github.com/ocallan/figureshelf/internal/service"
)

// CatalogHandler handles read-only catalog HTTP requests.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// HandleList returns the full catalog.
// GET /api/items
func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.List(r.Context())
	if err != nil {
		writeDomainError(w, "list catalog", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toItemDTOs(items)})
}

// HandleSearch performs a catalog search against one allow-listed field.
// GET /api/items/search?q=mario&field=character
func (h *CatalogHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	field := r.URL.Query().Get("field")

	items, err := h.catalog.Search(r.Context(), term, field)
	if err != nil {
		writeDomainError(w, "search catalog", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toItemDTOs(items)})
}
