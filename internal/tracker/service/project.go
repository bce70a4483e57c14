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

var (
	ErrTitleRequired = errors.New("service: title is required")

	// ErrInvalidReference reports a malformed entity id.
	ErrInvalidReference = errors.New("service: invalid reference")

	ErrNotFound = errors.New("service: not found")
)

type ProjectService struct {
	Store store.Store
}

// List returns all projects.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.Store.Projects().ListProjects(ctx)
}

// Get returns a project by id. A malformed id is ErrInvalidReference, a
// valid-but-absent one is ErrNotFound.
func (s *ProjectService) Get(ctx context.Context, id string) (domain.Project, error) {
	parsed, err := idx.Parse(id)
	if err != nil {
		return domain.Project{}, ErrInvalidReference
	}

	project, err := s.Store.Projects().GetProjectByID(ctx, parsed.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, ErrNotFound
		}
		return domain.Project{}, err
	}
	return project, nil
}

// Create inserts a new project. The title is required; progress defaults to
// zero and is clamped into [0,100].
func (s *ProjectService) Create(ctx context.Context, title, description string) (domain.Project, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Project{}, ErrTitleRequired
	}

	project := domain.Project{
		ID:          idx.New().String(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Progress:    0,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Store.Projects().CreateProject(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}
