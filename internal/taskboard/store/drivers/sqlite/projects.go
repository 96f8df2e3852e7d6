package sqlite

import (
	"context"

	"github.com/taskboardhq/taskboard/internal/taskboard/domain"
	"github.com/taskboardhq/taskboard/internal/taskboard/store"
)

type projectsRepo struct {
	db dbtx
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, created_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *projectsRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, created_at FROM projects`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, created_at FROM projects WHERE id = ?`, id)

	var p domain.Project
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt); err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET title = ?, description = ? WHERE id = ?`,
		p.Title, p.Description, p.ID,
	)
	if err != nil {
		return err
	}
	return errIfNoRows(res)
}

func (r *projectsRepo) DeleteProject(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return errIfNoRows(res)
}

func errIfNoRows(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
