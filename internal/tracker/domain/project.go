package domain

import "time"

type Project struct {
	ID          string
	Title       string
	Description string
	// Progress is a stored 0-100 value. It is not recomputed from task
	// completion; the dashboard's overall percentage is task-derived but
	// this field is read back verbatim.
	Progress  int
	CreatedAt time.Time
}
