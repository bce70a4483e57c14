package http

import (
	"errors"
	"net/http"

	"github.com/crewlabs/crewlog/internal/tracker/domain"
	"github.com/crewlabs/crewlog/internal/tracker/service"
)

type ProjectsHandler struct {
	ProjectService *service.ProjectService
	TaskService    *service.TaskService
	Publisher      *StatsPublisher
}

type projectListView struct {
	Projects []domain.Project
}

type projectNewView struct {
	Title       string
	Description string
	Error       string
}

type projectDetailView struct {
	Project domain.Project
	Tasks   []domain.Task
	Error   string
}

func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ProjectService.List(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, "projects.html", projectListView{Projects: projects})
}

func (h *ProjectsHandler) ShowNew(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "project_new.html", projectNewView{})
}

func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	title := r.FormValue("title")
	description := r.FormValue("description")

	_, err := h.ProjectService.Create(ctx, title, description)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			render(w, r, http.StatusOK, "project_new.html", projectNewView{
				Title:       title,
				Description: description,
				Error:       "Title is required.",
			})
			return
		}
		renderError(w, r, err)
		return
	}

	h.Publisher.Publish(ctx)
	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

func (h *ProjectsHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	project, err := h.ProjectService.Get(ctx, id)
	if err != nil {
		renderError(w, r, err)
		return
	}

	tasks, err := h.TaskService.ListByProject(ctx, project.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render(w, r, http.StatusOK, "project_detail.html", projectDetailView{
		Project: project,
		Tasks:   tasks,
	})
}

func (h *ProjectsHandler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("id")
	title := r.FormValue("title")

	_, err := h.TaskService.Create(ctx, title, projectID)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			// Re-render the detail view with the inline message.
			project, perr := h.ProjectService.Get(ctx, projectID)
			if perr != nil {
				renderError(w, r, perr)
				return
			}
			tasks, terr := h.TaskService.ListByProject(ctx, project.ID)
			if terr != nil {
				renderError(w, r, terr)
				return
			}
			render(w, r, http.StatusOK, "project_detail.html", projectDetailView{
				Project: project,
				Tasks:   tasks,
				Error:   "Task title is required.",
			})
			return
		}
		renderError(w, r, err)
		return
	}

	h.Publisher.Publish(ctx)
	http.Redirect(w, r, "/projects/"+projectID, http.StatusSeeOther)
}
