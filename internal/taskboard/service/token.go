package service

import (
	"errors"
	"time"

	apperrors "github.com/taskboardhq/taskboard/internal/taskboard/domain/errors"
	"github.com/taskboardhq/taskboard/pkg/jwtx"
)

// TokenService issues and verifies bearer tokens. The signing secret and TTL
// are process-wide configuration loaded once at startup; rotating the secret
// invalidates every outstanding token.
type TokenService struct {
	Signer *jwtx.Signer
}

// Issue produces a signed token embedding the user id as its subject.
func (s *TokenService) Issue(userID string) (string, error) {
	return s.Signer.Sign(userID, time.Now())
}

// Verify checks a raw bearer token and returns the embedded user id,
// translating signer failures into the service error taxonomy.
func (s *TokenService) Verify(raw string) (string, error) {
	userID, err := s.Signer.Verify(raw)
	if err != nil {
		if errors.Is(err, jwtx.ErrTokenExpired) {
			return "", apperrors.TokenExpired()
		}
		return "", apperrors.InvalidToken()
	}
	return userID, nil
}
