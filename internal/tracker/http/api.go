package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/crewlabs/crewlog/internal/tracker/domain"
	"github.com/crewlabs/crewlog/internal/tracker/service"
	"github.com/crewlabs/crewlog/pkg/httpx"
)

// ProjectAPIHandler is the JSON sub-API under /api/projects. It mirrors the
// HTML routes' semantics with status codes instead of rendered views.
type ProjectAPIHandler struct {
	ProjectService *service.ProjectService
	TaskService    *service.TaskService
	Publisher      *StatsPublisher
}

type apiProject struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

type apiCreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func toAPIProject(p domain.Project) apiProject {
	return apiProject{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Progress:    p.Progress,
	}
}

func (h *ProjectAPIHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ProjectService.List(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}

	out := make([]apiProject, 0, len(projects))
	for _, p := range projects {
		out = append(out, toAPIProject(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *ProjectAPIHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	project, err := h.ProjectService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAPIError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAPIProject(project))
}

func (h *ProjectAPIHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req apiCreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_json"})
		return
	}

	project, err := h.ProjectService.Create(ctx, req.Title, req.Description)
	if err != nil {
		writeAPIError(w, err)
		return
	}

	h.Publisher.Publish(ctx)
	httpx.WriteJSON(w, http.StatusCreated, toAPIProject(project))
}

func writeAPIError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "title_required"})
	case errors.Is(err, service.ErrInvalidReference):
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_id"})
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
	default:
		httpx.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal"})
	}
}
