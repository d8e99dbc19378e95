package handler

import (
	"net/http"

	"github.com/ocallan/figureshelf/internal/domain"
	"github.com/ocallan/figureshelf/internal/service"
)

// PublicHandler serves the anonymous, token-addressed share views.
type PublicHandler struct {
	public *service.PublicViewService
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(public *service.PublicViewService) *PublicHandler {
	return &PublicHandler{public: public}
}

// HandleView resolves a share token to a read-only projection of the
// owner's collection or wishlist. Unknown and disabled tokens are
// indistinguishable to the viewer.
// GET /shared/{kind}/{token}
func (h *PublicHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	kind, ok := domain.ParseShareKind(r.PathValue("kind"))
	if !ok {
		writeError(w, http.StatusNotFound, "This share is not available.")
		return
	}

	view, err := h.public.ViewByToken(r.Context(), kind, r.PathValue("token"))
	if err != nil {
		writeDomainError(w, "view shared set", err)
		return
	}

	writeJSON(w, http.StatusOK, toPublicViewDTO(view))
}
