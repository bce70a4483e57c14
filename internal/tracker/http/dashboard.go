package http

import (
	"net/http"

	"github.com/crewlabs/crewlog/internal/tracker/domain"
	"github.com/crewlabs/crewlog/internal/tracker/service"
)

type DashboardHandler struct {
	StatsService *service.StatsService
}

type dashboardView struct {
	Stats domain.Stats
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.Compute(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, "dashboard.html", dashboardView{Stats: stats})
}
