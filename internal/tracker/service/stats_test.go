package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsService_Compute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestStore(t)
	projects := &ProjectService{Store: db}
	tasks := &TaskService{Store: db}
	stats := &StatsService{Store: db}

	t.Run("empty database", func(t *testing.T) {
		snapshot, err := stats.Compute(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, snapshot.TotalProjects)
		require.Equal(t, 0, snapshot.TotalTasks)
		require.Equal(t, 0, snapshot.OverallCompletion, "no tasks means zero, not NaN")
		require.Empty(t, snapshot.Projects)
	})

	project, err := projects.Create(ctx, "Rollout", "staged rollout")
	require.NoError(t, err)

	first, err := tasks.Create(ctx, "one", project.ID)
	require.NoError(t, err)
	_, err = tasks.Create(ctx, "two", project.ID)
	require.NoError(t, err)
	_, err = tasks.Create(ctx, "three", project.ID)
	require.NoError(t, err)

	t.Run("one of three completed rounds to 33", func(t *testing.T) {
		_, err := tasks.Toggle(ctx, first.ID)
		require.NoError(t, err)

		snapshot, err := stats.Compute(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, snapshot.TotalProjects)
		require.Equal(t, 3, snapshot.TotalTasks)
		require.Equal(t, 33, snapshot.OverallCompletion)
	})

	t.Run("project summaries carry the stored progress untouched", func(t *testing.T) {
		snapshot, err := stats.Compute(ctx)
		require.NoError(t, err)
		require.Len(t, snapshot.Projects, 1)
		require.Equal(t, project.ID, snapshot.Projects[0].ID)
		require.Equal(t, "Rollout", snapshot.Projects[0].Name)
		require.Equal(t, "staged rollout", snapshot.Projects[0].Description)
		require.Equal(t, 0, snapshot.Projects[0].Progress,
			"progress is the stored field, not derived from task state")
	})
}

func TestCompletionPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"no tasks", 0, 0, 0},
		{"none completed", 0, 5, 0},
		{"all completed", 5, 5, 100},
		{"one third", 1, 3, 33},
		{"two thirds", 2, 3, 67},
		{"exact half rounds up", 1, 2, 50},
		{"half percent rounds up", 1, 200, 1},
		{"five of six", 5, 6, 83},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, completionPercent(tt.completed, tt.total))
		})
	}
}
