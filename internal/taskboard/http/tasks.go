package http

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/taskboardhq/taskboard/internal/taskboard/domain/errors"
	"github.com/taskboardhq/taskboard/internal/taskboard/service"
	"github.com/taskboardhq/taskboard/pkg/httpx"
)

// TasksHandler handles all task CRUD endpoints.
type TasksHandler struct {
	TaskService *service.TaskService
	Env         string
}

type createTaskRequest struct {
	Title     string `json:"title"`
	Status    string `json:"status"`
	ProjectID string `json:"projectId"`
}

type updateTaskRequest struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
}

// HandleCreate handles POST /api/v1/tasks
//
//	@Summary		Create Task
//	@Description	Creates a task in a project. Status defaults to ToDo.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		createTaskRequest	true	"title, optional status, projectId"
//	@Success		201		{object}	httpx.Envelope		"created task"
//	@Failure		400		{object}	httpx.Envelope		"missing field or invalid status"
//	@Router			/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.Env, apperrors.Validation("Invalid JSON in request body"))
		return
	}

	task, err := h.TaskService.Create(r.Context(), service.CreateTaskParams{
		Title:     req.Title,
		Status:    req.Status,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, toTaskResponse(task))
}

// HandleList handles GET /api/v1/tasks
//
//	@Summary		List Tasks
//	@Description	Returns all tasks across all projects.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	httpx.Envelope	"all tasks"
//	@Router			/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.List(r.Context())
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, toTaskResponses(tasks))
}

// HandleListByProject handles GET /api/v1/tasks/project/{projectId}
//
//	@Summary		List Tasks of a Project
//	@Description	Returns the tasks of one project; empty list when it has none.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			projectId	path		string			true	"Project ID (ULID)"
//	@Success		200			{object}	httpx.Envelope	"tasks of the project"
//	@Router			/tasks/project/{projectId} [get].
func (h *TasksHandler) HandleListByProject(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.ListByProject(r.Context(), r.PathValue("projectId"))
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, toTaskResponses(tasks))
}

// HandleGet handles GET /api/v1/tasks/{id}
//
//	@Summary		Get Task
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string			true	"Task ID (ULID)"
//	@Success		200	{object}	httpx.Envelope	"task"
//	@Failure		404	{object}	httpx.Envelope	"task not found"
//	@Router			/tasks/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	task, err := h.TaskService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, toTaskResponse(task))
}

// HandleUpdate handles PATCH /api/v1/tasks/{id}
//
//	@Summary		Update Task
//	@Description	Partial update; omitted fields keep their value.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"Task ID (ULID)"
//	@Param			request	body		updateTaskRequest	true	"fields to change"
//	@Success		200		{object}	httpx.Envelope		"updated task"
//	@Failure		404		{object}	httpx.Envelope		"task not found"
//	@Router			/tasks/{id} [patch].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.Env, apperrors.Validation("Invalid JSON in request body"))
		return
	}

	task, err := h.TaskService.Update(r.Context(), r.PathValue("id"), service.UpdateTaskParams{
		Title:  req.Title,
		Status: req.Status,
	})
	if err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, toTaskResponse(task))
}

// HandleDelete handles DELETE /api/v1/tasks/{id}
//
//	@Summary		Delete Task
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Task ID (ULID)"
//	@Success		204	"deleted"
//	@Failure		404	{object}	httpx.Envelope	"task not found"
//	@Router			/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.TaskService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, h.Env, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
