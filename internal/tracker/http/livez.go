package http

import (
	"net/http"
	"time"

	"github.com/crewlabs/crewlog/internal/tracker/store"
	"github.com/crewlabs/crewlog/pkg/httpx"
)

// LivezHandler reports process liveness plus a store ping.
func LivezHandler(startTime time.Time, buildVersion string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK
		if err := st.Ping(r.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, map[string]any{
			"status":  status,
			"version": buildVersion,
			"uptime":  time.Since(startTime).String(),
		})
	})
}
