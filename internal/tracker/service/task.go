package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/crewlabs/crewlog/internal/tracker/domain"
	"github.com/crewlabs/crewlog/internal/tracker/store"
	"github.com/crewlabs/crewlog/pkg/idx"
)

type TaskService struct {
	Store store.Store
}

// ListWithProject returns all tasks annotated with the owning project title.
func (s *TaskService) ListWithProject(ctx context.Context) ([]domain.TaskWithProject, error) {
	return s.Store.Tasks().ListTasksWithProject(ctx)
}

// ListByProject returns the tasks belonging to one project.
func (s *TaskService) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	parsed, err := idx.Parse(projectID)
	if err != nil {
		return nil, ErrInvalidReference
	}
	return s.Store.Tasks().ListTasksByProject(ctx, parsed.String())
}

// Create inserts a new task under a project. The project id must be
// well-formed, but whether it names an existing project is deliberately not
// checked.
func (s *TaskService) Create(ctx context.Context, title, projectID string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, ErrTitleRequired
	}

	parsed, err := idx.Parse(projectID)
	if err != nil {
		return domain.Task{}, ErrInvalidReference
	}

	task := domain.Task{
		ID:        idx.New().String(),
		Title:     title,
		Completed: false,
		ProjectID: parsed.String(),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.Tasks().CreateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Toggle flips a task's completion flag and returns the updated task.
// Toggling an absent task is ErrNotFound, a malformed id ErrInvalidReference.
func (s *TaskService) Toggle(ctx context.Context, id string) (domain.Task, error) {
	parsed, err := idx.Parse(id)
	if err != nil {
		return domain.Task{}, ErrInvalidReference
	}

	task, err := s.Store.Tasks().GetTaskByID(ctx, parsed.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrNotFound
		}
		return domain.Task{}, err
	}

	task.Completed = !task.Completed
	if err := s.Store.Tasks().SetTaskCompleted(ctx, task.ID, task.Completed); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrNotFound
		}
		return domain.Task{}, err
	}

	return task, nil
}
