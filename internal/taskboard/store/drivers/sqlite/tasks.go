package sqlite

import (
	"context"
	"database/sql"

	"github.com/taskboardhq/taskboard/internal/taskboard/domain"
)

type tasksRepo struct {
	db dbtx
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, status, project_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Status.String(), t.ProjectID, t.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *tasksRepo) ListTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, status, project_id, created_at FROM tasks`)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

func (r *tasksRepo) ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, status, project_id, created_at FROM tasks WHERE project_id = ?`,
		projectID)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, status, project_id, created_at FROM tasks WHERE id = ?`, id)

	var t domain.Task
	var status string
	if err := row.Scan(&t.ID, &t.Title, &status, &t.ProjectID, &t.CreatedAt); err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	t.Status = domain.TaskStatus(status)
	return t, nil
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, status = ? WHERE id = ?`,
		t.Title, t.Status.String(), t.ID,
	)
	if err != nil {
		return err
	}
	return errIfNoRows(res)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return errIfNoRows(res)
}

func (r *tasksRepo) DeleteTasksByProject(ctx context.Context, projectID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, projectID)
	return err
}

func collectTasks(rows *sql.Rows) ([]domain.Task, error) {
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		var status string
		if err := rows.Scan(&t.ID, &t.Title, &status, &t.ProjectID, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Status = domain.TaskStatus(status)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
