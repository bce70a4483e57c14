package domain

// ProjectSummary is the per-project slice of a stats snapshot. Progress is
// the stored field, not a completion ratio.
type ProjectSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

// Stats is the aggregate payload pushed to every open viewer connection.
type Stats struct {
	TotalProjects     int              `json:"totalProjects"`
	TotalTasks        int              `json:"totalTasks"`
	OverallCompletion int              `json:"overallCompletion"`
	Projects          []ProjectSummary `json:"projects"`
}
