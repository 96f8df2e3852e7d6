package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/taskboardhq/taskboard/internal/taskboard/domain"
	apperrors "github.com/taskboardhq/taskboard/internal/taskboard/domain/errors"
	"github.com/taskboardhq/taskboard/internal/taskboard/store"
	"github.com/taskboardhq/taskboard/pkg/idx"
)

type TaskService struct {
	Store store.Store
}

type CreateTaskParams struct {
	Title     string
	Status    string // empty defaults to ToDo
	ProjectID string
}

// Create inserts a new task. The referenced project is not checked for
// existence; the id only has to be well formed.
func (s *TaskService) Create(ctx context.Context, params CreateTaskParams) (domain.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return domain.Task{}, apperrors.Validation("Please provide a title")
	}
	if strings.TrimSpace(params.ProjectID) == "" {
		return domain.Task{}, apperrors.Validation("Task must belong to a project")
	}

	projectID, err := idx.Parse(params.ProjectID)
	if err != nil {
		return domain.Task{}, apperrors.Cast("projectId", params.ProjectID)
	}

	status := domain.TaskStatusToDo
	if params.Status != "" {
		status = domain.TaskStatus(params.Status)
		if !status.Valid() {
			return domain.Task{}, apperrors.Validation("Status can only be ToDo, InProgress or Done")
		}
	}

	t := domain.Task{
		ID:        idx.New().String(),
		Title:     title,
		Status:    status,
		ProjectID: projectID.String(),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.Tasks().CreateTask(ctx, t); err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasks(ctx)
}

// ListByProject returns the tasks of a project. A project with no tasks
// yields an empty slice, not an error.
func (s *TaskService) ListByProject(ctx context.Context, rawProjectID string) ([]domain.Task, error) {
	projectID, err := idx.Parse(rawProjectID)
	if err != nil {
		return nil, apperrors.Cast("projectId", rawProjectID)
	}
	return s.Store.Tasks().ListTasksByProject(ctx, projectID.String())
}

func (s *TaskService) Get(ctx context.Context, rawID string) (domain.Task, error) {
	id, err := idx.Parse(rawID)
	if err != nil {
		return domain.Task{}, apperrors.Cast("id", rawID)
	}

	t, err := s.Store.Tasks().GetTaskByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, apperrors.NotFound("Task")
		}
		return domain.Task{}, err
	}
	return t, nil
}

// UpdateTaskParams carries the optional fields of a partial update; nil means
// "leave unchanged".
type UpdateTaskParams struct {
	Title  *string
	Status *string
}

func (s *TaskService) Update(ctx context.Context, rawID string, params UpdateTaskParams) (domain.Task, error) {
	t, err := s.Get(ctx, rawID)
	if err != nil {
		return domain.Task{}, err
	}

	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return domain.Task{}, apperrors.Validation("Please provide a title")
		}
		t.Title = title
	}
	if params.Status != nil {
		status := domain.TaskStatus(*params.Status)
		if !status.Valid() {
			return domain.Task{}, apperrors.Validation("Status can only be ToDo, InProgress or Done")
		}
		t.Status = status
	}

	if err := s.Store.Tasks().UpdateTask(ctx, t); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, apperrors.NotFound("Task")
		}
		return domain.Task{}, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, rawID string) error {
	id, err := idx.Parse(rawID)
	if err != nil {
		return apperrors.Cast("id", rawID)
	}

	if err := s.Store.Tasks().DeleteTask(ctx, id.String()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Task")
		}
		return err
	}
	return nil
}
