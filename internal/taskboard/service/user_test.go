package service

import (
	"context"
	"testing"

	apperrors "github.com/taskboardhq/taskboard/internal/taskboard/domain/errors"
	"github.com/taskboardhq/taskboard/internal/taskboard/store"
	"github.com/taskboardhq/taskboard/internal/taskboard/store/drivers/sqlite"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	t.Run("creates user with hashed password", func(t *testing.T) {
		u, err := svc.Register(ctx, "alice", "s3cret")
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		require.Equal(t, "alice", u.Username)
		require.NotEmpty(t, u.PasswordHash)
		require.NotEqual(t, "s3cret", u.PasswordHash)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "other")
		require.Equal(t, apperrors.KindDuplicate, apperrors.KindOf(err))
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "pw")
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

		_, err = svc.Register(ctx, "bob", "")
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	registered, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	t.Run("valid credentials return the user", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "alice", "s3cret")
		require.NoError(t, err)
		require.Equal(t, registered.ID, u.ID)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		_, wrongPw := svc.Authenticate(ctx, "alice", "wrong")
		require.Equal(t, apperrors.KindUnauthenticated, apperrors.KindOf(wrongPw))

		_, unknown := svc.Authenticate(ctx, "mallory", "whatever")
		require.Equal(t, apperrors.KindUnauthenticated, apperrors.KindOf(unknown))

		require.EqualError(t, wrongPw, unknown.Error())
	})

	t.Run("missing fields fail validation before lookup", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "", "")
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}
