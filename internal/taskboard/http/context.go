package http

import (
	"context"

	"github.com/taskboardhq/taskboard/internal/taskboard/domain"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

func contextWithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, u)
}

// UserFromContext returns the authenticated user attached by the auth
// middleware, if any.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKeyUser).(domain.User)
	return u, ok
}
