package http

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/taskboardhq/taskboard/internal/taskboard/domain/errors"
	"github.com/taskboardhq/taskboard/internal/taskboard/service"
	"github.com/taskboardhq/taskboard/pkg/httpx"
	"github.com/taskboardhq/taskboard/pkg/slogx"
)

// UsersHandler handles registration and login. Both endpoints are public and
// answer with a fresh bearer token plus the user record.
type UsersHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
	Env          string
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleRegister handles POST /api/v1/users/register
//
//	@Summary		Register User
//	@Description	Creates a new user account and returns a bearer token for it.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		credentialsRequest	true	"username and password"
//	@Success		201		{object}	httpx.Envelope		"token and user"
//	@Failure		400		{object}	httpx.Envelope		"validation or duplicate username"
//	@Router			/users/register [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.Env, apperrors.Validation("Invalid JSON in request body"))
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	token, err := h.TokenService.Issue(user.ID)
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	slogx.FromContext(r.Context()).Info("user registered", "user_id", user.ID)
	httpx.WriteSuccess(w, http.StatusCreated, AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// HandleLogin handles POST /api/v1/users/login
//
//	@Summary		Login
//	@Description	Verifies a username/password pair and returns a bearer token.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		credentialsRequest	true	"username and password"
//	@Success		200		{object}	httpx.Envelope		"token and user"
//	@Failure		401		{object}	httpx.Envelope		"incorrect username or password"
//	@Router			/users/login [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.Env, apperrors.Validation("Invalid JSON in request body"))
		return
	}

	user, err := h.UserService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	token, err := h.TokenService.Issue(user.ID)
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}
