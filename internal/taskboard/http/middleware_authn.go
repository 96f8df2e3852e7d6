package http

import (
	"net/http"
	"strings"

	apperrors "github.com/taskboardhq/taskboard/internal/taskboard/domain/errors"
	"github.com/taskboardhq/taskboard/pkg/slogx"
)

// requireAuth gates every project/task route. A request only reaches the
// wrapped handler when it carries a well-formed bearer token that verifies
// and resolves to a user that still exists; every other state is a 401.
func (rt *Router) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := slogx.FromContext(ctx)

		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			writeError(w, r, rt.env, apperrors.Unauthenticated("You are not logged in. Please log in to get access"))
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

		userID, err := rt.TokenService.Verify(raw)
		if err != nil {
			log.Warn("token verification failed", "error", err)
			writeError(w, r, rt.env, err)
			return
		}

		user, err := rt.UserService.GetByID(ctx, userID)
		if err != nil {
			writeError(w, r, rt.env, apperrors.Unauthenticated("User does not exist anymore"))
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithUser(ctx, user)))
	})
}
