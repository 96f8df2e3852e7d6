package http

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/taskboardhq/taskboard/internal/taskboard/domain/errors"
	"github.com/taskboardhq/taskboard/internal/taskboard/service"
	"github.com/taskboardhq/taskboard/pkg/httpx"
)

// ProjectsHandler handles all project CRUD endpoints. Every route is behind
// the auth middleware; there is no per-project ownership.
type ProjectsHandler struct {
	ProjectService *service.ProjectService
	Env            string
}

type createProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// HandleCreate handles POST /api/v1/projects
//
//	@Summary		Create Project
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		createProjectRequest	true	"title, optional description"
//	@Success		201		{object}	httpx.Envelope			"created project"
//	@Failure		400		{object}	httpx.Envelope			"missing title"
//	@Failure		401		{object}	httpx.Envelope			"not authenticated"
//	@Router			/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.Env, apperrors.Validation("Invalid JSON in request body"))
		return
	}

	project, err := h.ProjectService.Create(r.Context(), req.Title, req.Description)
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, toProjectResponse(project))
}

// HandleList handles GET /api/v1/projects
//
//	@Summary		List Projects
//	@Tags			Projects
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	httpx.Envelope	"all projects"
//	@Failure		401	{object}	httpx.Envelope	"not authenticated"
//	@Router			/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ProjectService.List(r.Context())
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, toProjectResponses(projects))
}

// HandleGet handles GET /api/v1/projects/{id}
//
//	@Summary		Get Project
//	@Tags			Projects
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string			true	"Project ID (ULID)"
//	@Success		200	{object}	httpx.Envelope	"project"
//	@Failure		404	{object}	httpx.Envelope	"project not found"
//	@Router			/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	project, err := h.ProjectService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, toProjectResponse(project))
}

// HandleUpdate handles PATCH /api/v1/projects/{id}
//
//	@Summary		Update Project
//	@Description	Partial update; omitted fields keep their value.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Project ID (ULID)"
//	@Param			request	body		updateProjectRequest	true	"fields to change"
//	@Success		200		{object}	httpx.Envelope			"updated project"
//	@Failure		404		{object}	httpx.Envelope			"project not found"
//	@Router			/projects/{id} [patch].
func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.Env, apperrors.Validation("Invalid JSON in request body"))
		return
	}

	project, err := h.ProjectService.Update(r.Context(), r.PathValue("id"), service.UpdateProjectParams{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, toProjectResponse(project))
}

// HandleDelete handles DELETE /api/v1/projects/{id}
//
//	@Summary		Delete Project
//	@Description	Deletes a project and every task referencing it.
//	@Tags			Projects
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Project ID (ULID)"
//	@Success		204	"deleted"
//	@Failure		404	{object}	httpx.Envelope	"project not found"
//	@Router			/projects/{id} [delete].
func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ProjectService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
