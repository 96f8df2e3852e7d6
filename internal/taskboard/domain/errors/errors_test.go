package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	t.Run("tagged errors report their kind", func(t *testing.T) {
		require.Equal(t, KindValidation, KindOf(Validation("missing title")))
		require.Equal(t, KindDuplicate, KindOf(Duplicate("username")))
		require.Equal(t, KindCast, KindOf(Cast("id", "abc")))
		require.Equal(t, KindInvalidToken, KindOf(InvalidToken()))
		require.Equal(t, KindTokenExpired, KindOf(TokenExpired()))
		require.Equal(t, KindUnauthenticated, KindOf(Unauthenticated("no")))
		require.Equal(t, KindNotFound, KindOf(NotFound("Project")))
		require.Equal(t, KindInternal, KindOf(Internal(stderrors.New("boom"))))
	})

	t.Run("wrapped tagged errors still classify", func(t *testing.T) {
		err := fmt.Errorf("create project: %w", Validation("missing title"))
		require.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("untagged errors classify as internal", func(t *testing.T) {
		require.Equal(t, KindInternal, KindOf(stderrors.New("driver exploded")))
		require.Equal(t, KindInternal, KindOf(nil))
	})
}

func TestInternalKeepsCauseOutOfMessage(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("disk full")
	err := Internal(cause)

	require.Equal(t, "Something went wrong", err.Message)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "disk full")
}

func TestNotFoundMessage(t *testing.T) {
	t.Parallel()

	require.EqualError(t, NotFound("Task"), "Task not found")
}
