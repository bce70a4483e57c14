package domain

import "time"

type Task struct {
	ID        string
	Title     string
	Completed bool
	ProjectID string
	CreatedAt time.Time
}

// TaskWithProject is the denormalized read projection used by the task list:
// the task joined with its owning project's title for display. The title is
// empty when the referenced project does not exist.
type TaskWithProject struct {
	Task

	ProjectTitle string
}
