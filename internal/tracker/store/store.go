package store

import (
	"context"
	"errors"

	"github.com/crewlabs/crewlog/internal/tracker/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. There is deliberately no transaction surface: every operation
// here is a single statement and consistency relies on the driver's
// per-operation atomicity.
type Store interface {
	Users() Users
	Projects() Projects
	Tasks() Tasks

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and duplicate pre-checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is already registered.
	CreateUser(ctx context.Context, u domain.User) error
}

type Projects interface {
	// ListProjects returns all projects ordered by creation (oldest first).
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// GetProjectByID returns a project by id.
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)

	// CreateProject inserts a new project.
	CreateProject(ctx context.Context, p domain.Project) error
}

type Tasks interface {
	// ListTasks returns all tasks ordered by creation (oldest first).
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// ListTasksWithProject returns all tasks annotated with the owning
	// project's title. Tasks whose project is missing keep an empty title.
	ListTasksWithProject(ctx context.Context) ([]domain.TaskWithProject, error)

	// ListTasksByProject returns the tasks belonging to one project.
	ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error)

	// GetTaskByID returns a task by id.
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// CreateTask inserts a new task. The referenced project is not checked
	// for existence.
	CreateTask(ctx context.Context, t domain.Task) error

	// SetTaskCompleted flips the completion flag. ErrNotFound when the id
	// does not exist.
	SetTaskCompleted(ctx context.Context, id string, completed bool) error
}
