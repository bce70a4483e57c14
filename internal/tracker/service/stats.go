package service

import (
	"context"
	"math"

	"github.com/crewlabs/crewlog/internal/tracker/domain"
	"github.com/crewlabs/crewlog/internal/tracker/store"
)

type StatsService struct {
	Store store.Store
}

// Compute reads the full project and task collections and aggregates them
// into a stats snapshot. Full scans are fine at this system's scale; there
// is no pagination.
//
// The overall completion percentage is derived from task state, while each
// project summary carries the stored progress field untouched. The two are
// intentionally independent.
func (s *StatsService) Compute(ctx context.Context) (domain.Stats, error) {
	projects, err := s.Store.Projects().ListProjects(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	tasks, err := s.Store.Tasks().ListTasks(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	summaries := make([]domain.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, domain.ProjectSummary{
			ID:          p.ID,
			Name:        p.Title,
			Description: p.Description,
			Progress:    p.Progress,
		})
	}

	return domain.Stats{
		TotalProjects:     len(projects),
		TotalTasks:        len(tasks),
		OverallCompletion: completionPercent(completed, len(tasks)),
		Projects:          summaries,
	}, nil
}

// completionPercent is round-half-up(100 * completed / total), and 0 when
// there are no tasks at all.
func completionPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
