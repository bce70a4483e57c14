package http

import (
	"net/http"

	"github.com/crewlabs/crewlog/internal/tracker/domain"
	"github.com/crewlabs/crewlog/internal/tracker/service"
)

type TasksHandler struct {
	TaskService *service.TaskService
	Publisher   *StatsPublisher
}

type taskListView struct {
	Tasks []domain.TaskWithProject
}

func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.ListWithProject(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, "tasks.html", taskListView{Tasks: tasks})
}

func (h *TasksHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := h.TaskService.Toggle(ctx, r.PathValue("id")); err != nil {
		renderError(w, r, err)
		return
	}

	h.Publisher.Publish(ctx)

	// Send the caller back where they came from; the toggle button lives on
	// both the task list and the project detail page.
	target := r.Referer()
	if target == "" {
		target = "/tasks"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
