package handler

import (
	"net/http"
	"strconv"

	"github.com/ocallan/figureshelf/internal/service"
)

const (
	defaultRecommendationLimit = 9
	maxRecommendationLimit     = 60
)

// DashboardHandler serves the read aggregates behind the dashboard: stats
// and recommendations.
type DashboardHandler struct {
	stats           *service.StatsService
	recommendations *service.RecommendationService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(stats *service.StatsService, recommendations *service.RecommendationService) *DashboardHandler {
	return &DashboardHandler{stats: stats, recommendations: recommendations}
}

// HandleStats returns the caller's collection stats.
// GET /api/stats
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	stats, err := h.stats.ComputeStats(r.Context(), user.ID)
	if err != nil {
		writeDomainError(w, "compute stats", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"stats": toStatsDTO(stats)})
}

// HandleRecommendations returns a random sample of unowned items.
// GET /api/recommendations?limit=9
func (h *DashboardHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	limit := defaultRecommendationLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusUnprocessableEntity, "limit must be a positive integer.")
			return
		}
		limit = min(parsed, maxRecommendationLimit)
	}

	items, err := h.recommendations.Sample(r.Context(), user.ID, limit)
	if err != nil {
		writeDomainError(w, "sample recommendations", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toItemDTOs(items)})
}
