package http

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/taskboardhq/taskboard/internal/taskboard/domain/errors"
	"github.com/taskboardhq/taskboard/pkg/httpx"
	"github.com/taskboardhq/taskboard/pkg/slogx"
)

// writeError is the single place service failures become client responses.
// Operational kinds (4xx) echo their message; anything else is logged and the
// client gets a generic 500, with the underlying detail echoed only in dev.
func writeError(w http.ResponseWriter, r *http.Request, env string, err error) {
	var apperr *apperrors.Error
	if !errors.As(err, &apperr) {
		apperr = apperrors.Internal(err)
	}

	switch apperr.Kind {
	case apperrors.KindValidation, apperrors.KindDuplicate, apperrors.KindCast:
		httpx.WriteFail(w, http.StatusBadRequest, apperr.Message)
	case apperrors.KindInvalidToken, apperrors.KindTokenExpired, apperrors.KindUnauthenticated:
		httpx.WriteFail(w, http.StatusUnauthorized, apperr.Message)
	case apperrors.KindNotFound:
		httpx.WriteFail(w, http.StatusNotFound, apperr.Message)
	case apperrors.KindInternal:
		fallthrough
	default:
		slogx.FromContext(r.Context()).Error("unhandled error", "error", err)
		message := "Something went wrong"
		if env == "dev" {
			message = fmt.Sprintf("%s: %v", message, err)
		}
		httpx.WriteError(w, http.StatusInternalServerError, message)
	}
}
