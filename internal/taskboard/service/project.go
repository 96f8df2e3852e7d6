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

type ProjectService struct {
	Store store.Store
}

func (s *ProjectService) Create(ctx context.Context, title, description string) (domain.Project, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Project{}, apperrors.Validation("Please provide a title")
	}

	p := domain.Project{
		ID:          idx.New().String(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Store.Projects().CreateProject(ctx, p); err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.Store.Projects().ListProjects(ctx)
}

func (s *ProjectService) Get(ctx context.Context, rawID string) (domain.Project, error) {
	id, err := idx.Parse(rawID)
	if err != nil {
		return domain.Project{}, apperrors.Cast("id", rawID)
	}

	p, err := s.Store.Projects().GetProjectByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, apperrors.NotFound("Project")
		}
		return domain.Project{}, err
	}
	return p, nil
}

// UpdateProjectParams carries the optional fields of a partial update; nil
// means "leave unchanged".
type UpdateProjectParams struct {
	Title       *string
	Description *string
}

func (s *ProjectService) Update(ctx context.Context, rawID string, params UpdateProjectParams) (domain.Project, error) {
	p, err := s.Get(ctx, rawID)
	if err != nil {
		return domain.Project{}, err
	}

	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return domain.Project{}, apperrors.Validation("Please provide a title")
		}
		p.Title = title
	}
	if params.Description != nil {
		p.Description = *params.Description
	}

	// Last write wins; there is no conflict detection on concurrent updates.
	if err := s.Store.Projects().UpdateProject(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, apperrors.NotFound("Project")
		}
		return domain.Project{}, err
	}
	return p, nil
}

// Delete removes a project and every task referencing it. The task cascade
// and the project delete run in one transaction so a failure can't leave
// orphaned tasks behind.
func (s *ProjectService) Delete(ctx context.Context, rawID string) error {
	id, err := idx.Parse(rawID)
	if err != nil {
		return apperrors.Cast("id", rawID)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tasks().DeleteTasksByProject(ctx, id.String()); err != nil {
			return err
		}
		return tx.Projects().DeleteProject(ctx, id.String())
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Project")
		}
		return err
	}
	return nil
}
