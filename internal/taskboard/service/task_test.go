package service

import (
	"context"
	"testing"

	"github.com/taskboardhq/taskboard/internal/taskboard/domain"
	apperrors "github.com/taskboardhq/taskboard/internal/taskboard/domain/errors"

	"github.com/stretchr/testify/require"
)

func TestTaskCreate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	projects := &ProjectService{Store: st}
	svc := &TaskService{Store: st}

	p, err := projects.Create(ctx, "board", "")
	require.NoError(t, err)

	t.Run("defaults status to ToDo", func(t *testing.T) {
		task, err := svc.Create(ctx, CreateTaskParams{Title: "write docs", ProjectID: p.ID})
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusToDo, task.Status)

		got, err := svc.Get(ctx, task.ID)
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusToDo, got.Status)
	})

	t.Run("accepts each enumerated status", func(t *testing.T) {
		for _, status := range []string{"ToDo", "InProgress", "Done"} {
			task, err := svc.Create(ctx, CreateTaskParams{Title: "t", Status: status, ProjectID: p.ID})
			require.NoError(t, err)
			require.Equal(t, domain.TaskStatus(status), task.Status)
		}
	})

	t.Run("rejects status outside the enum", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateTaskParams{Title: "t", Status: "Blocked", ProjectID: p.ID})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("requires title and project", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateTaskParams{ProjectID: p.ID})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

		_, err = svc.Create(ctx, CreateTaskParams{Title: "t"})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("malformed project id is a cast failure", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateTaskParams{Title: "t", ProjectID: "nope"})
		require.Equal(t, apperrors.KindCast, apperrors.KindOf(err))
	})

	t.Run("does not verify the project exists", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateTaskParams{
			Title:     "orphan",
			ProjectID: "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		})
		require.NoError(t, err)
	})
}

func TestTaskListByProject(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	projects := &ProjectService{Store: st}
	svc := &TaskService{Store: st}

	p, err := projects.Create(ctx, "board", "")
	require.NoError(t, err)

	t.Run("empty project yields empty slice", func(t *testing.T) {
		tasks, err := svc.ListByProject(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, tasks)
		require.Empty(t, tasks)
	})

	t.Run("filters by exact project id", func(t *testing.T) {
		other, err := projects.Create(ctx, "other", "")
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateTaskParams{Title: "a", ProjectID: p.ID})
		require.NoError(t, err)
		_, err = svc.Create(ctx, CreateTaskParams{Title: "b", ProjectID: other.ID})
		require.NoError(t, err)

		tasks, err := svc.ListByProject(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, "a", tasks[0].Title)
	})

	t.Run("malformed project id is a cast failure", func(t *testing.T) {
		_, err := svc.ListByProject(ctx, "nope")
		require.Equal(t, apperrors.KindCast, apperrors.KindOf(err))
	})
}

func TestTaskUpdate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	projects := &ProjectService{Store: st}
	svc := &TaskService{Store: st}

	p, err := projects.Create(ctx, "board", "")
	require.NoError(t, err)
	task, err := svc.Create(ctx, CreateTaskParams{Title: "start", ProjectID: p.ID})
	require.NoError(t, err)

	t.Run("moves through statuses", func(t *testing.T) {
		status := "InProgress"
		updated, err := svc.Update(ctx, task.ID, UpdateTaskParams{Status: &status})
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusInProgress, updated.Status)
		require.Equal(t, "start", updated.Title)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		status := "Paused"
		_, err := svc.Update(ctx, task.ID, UpdateTaskParams{Status: &status})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("absent id is not found", func(t *testing.T) {
		title := "x"
		_, err := svc.Update(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV", UpdateTaskParams{Title: &title})
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})
}

func TestTaskDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	projects := &ProjectService{Store: st}
	svc := &TaskService{Store: st}

	p, err := projects.Create(ctx, "board", "")
	require.NoError(t, err)
	task, err := svc.Create(ctx, CreateTaskParams{Title: "temp", ProjectID: p.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))

	_, err = svc.Get(ctx, task.ID)
	require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	err = svc.Delete(ctx, task.ID)
	require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
