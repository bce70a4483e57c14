package sqlite

import (
	"context"
	"database/sql"

	"github.com/crewlabs/crewlog/internal/tracker/domain"
)

type projectsRepo struct {
	db *sql.DB
}

const projectColumns = `id, title, description, progress, created_at`

func (r *projectsRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Progress, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)

	var p domain.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Progress, &p.CreatedAt)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, progress, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.Progress, p.CreatedAt)
	return err
}
