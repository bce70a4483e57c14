package sqlite

import (
	"context"
	"database/sql"

	"github.com/crewlabs/crewlog/internal/tracker/domain"
	"github.com/crewlabs/crewlog/internal/tracker/store"
)

type tasksRepo struct {
	db *sql.DB
}

const taskColumns = `id, title, completed, project_id, created_at`

func (r *tasksRepo) ListTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *tasksRepo) ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = ? ORDER BY created_at, id`,
		projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListTasksWithProject joins the owning project's title for display. The
// join is LEFT so tasks referencing a missing project still list, with an
// empty title.
func (r *tasksRepo) ListTasksWithProject(ctx context.Context) ([]domain.TaskWithProject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.id, t.title, t.completed, t.project_id, t.created_at,
		        COALESCE(p.title, '')
		 FROM tasks t
		 LEFT JOIN projects p ON p.id = t.project_id
		 ORDER BY t.created_at, t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.TaskWithProject
	for rows.Next() {
		var t domain.TaskWithProject
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.ProjectID, &t.CreatedAt, &t.ProjectTitle); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)

	var t domain.Task
	err := row.Scan(&t.ID, &t.Title, &t.Completed, &t.ProjectID, &t.CreatedAt)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, completed, project_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Completed, t.ProjectID, t.CreatedAt)
	return err
}

func (r *tasksRepo) SetTaskCompleted(ctx context.Context, id string, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET completed = ? WHERE id = ?`, completed, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func collectTasks(rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.ProjectID, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
