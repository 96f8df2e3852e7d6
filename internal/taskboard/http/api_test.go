package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpapi "github.com/taskboardhq/taskboard/internal/taskboard/http"
	"github.com/taskboardhq/taskboard/internal/taskboard/service"
	"github.com/taskboardhq/taskboard/internal/taskboard/store/drivers/sqlite"
	"github.com/taskboardhq/taskboard/pkg/jwtx"
)

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// setupServer spins up the full stack against an in-memory database and
// returns a ready test server.
func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer := &jwtx.Signer{
		Secret: []byte("integration-test-secret"),
		Issuer: "taskboard-test",
		TTL:    time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := httpapi.NewRouter("test", "test", nil, st, logger)
	router.UserService = &service.UserService{Store: st}
	router.TokenService = &service.TokenService{Signer: signer}
	router.ProjectService = &service.ProjectService{Store: st}
	router.TaskService = &service.TaskService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, envelope) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, url, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

// registerUser creates an account and returns its bearer token.
func registerUser(t *testing.T, baseURL, username, password string) string {
	t.Helper()

	resp, env := doJSON(t, http.MethodPost, baseURL+"/api/v1/users/register", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "success", env.Status)

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

func createProject(t *testing.T, baseURL, token, title string) string {
	t.Helper()

	resp, env := doJSON(t, http.MethodPost, baseURL+"/api/v1/projects", token, map[string]string{
		"title": title,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var project struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &project))
	require.NotEmpty(t, project.ID)
	return project.ID
}

func TestRegisterAndLogin(t *testing.T) {
	srv := setupServer(t)

	registerUser(t, srv.URL, "alice", "correct horse battery")

	t.Run("duplicate username rejected", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/v1/users/register", "", map[string]string{
			"username": "alice",
			"password": "another password",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "fail", env.Status)
		require.Contains(t, env.Message, "Duplicate field value")
	})

	t.Run("missing credentials rejected", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/v1/users/register", "", map[string]string{
			"username": "bob",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "fail", env.Status)
	})

	t.Run("login returns fresh token and user without password", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/v1/users/login", "", map[string]string{
			"username": "alice",
			"password": "correct horse battery",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "success", env.Status)
		require.NotContains(t, string(env.Data), "password")

		var auth struct {
			Token string `json:"token"`
			User  struct {
				Username string `json:"username"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &auth))
		require.NotEmpty(t, auth.Token)
		require.Equal(t, "alice", auth.User.Username)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		respWrong, envWrong := doJSON(t, http.MethodPost, srv.URL+"/api/v1/users/login", "", map[string]string{
			"username": "alice",
			"password": "not the password",
		})
		respUnknown, envUnknown := doJSON(t, http.MethodPost, srv.URL+"/api/v1/users/login", "", map[string]string{
			"username": "nobody",
			"password": "whatever",
		})

		require.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
		require.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
		require.Equal(t, envWrong.Message, envUnknown.Message)
		require.Equal(t, "Incorrect username or password.", envWrong.Message)
	})
}

func TestAuthGate(t *testing.T) {
	srv := setupServer(t)

	t.Run("no token", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "fail", env.Status)
		require.Equal(t, "You are not logged in. Please log in to get access", env.Message)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects", "not.a.jwt", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "fail", env.Status)
	})

	t.Run("expired token", func(t *testing.T) {
		// Sign a token with the server's secret that expired an hour ago.
		expired := &jwtx.Signer{
			Secret: []byte("integration-test-secret"),
			Issuer: "taskboard-test",
			TTL:    time.Hour,
		}
		raw, err := expired.Sign("01ARZ3NDEKTSV4RRFFQ69G5FAV", time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects", raw, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Contains(t, env.Message, "expired")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		rogue := &jwtx.Signer{
			Secret: []byte("some other secret"),
			Issuer: "taskboard-test",
			TTL:    time.Hour,
		}
		raw, err := rogue.Sign("01ARZ3NDEKTSV4RRFFQ69G5FAV", time.Now())
		require.NoError(t, err)

		resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects", raw, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token for deleted subject", func(t *testing.T) {
		good := &jwtx.Signer{
			Secret: []byte("integration-test-secret"),
			Issuer: "taskboard-test",
			TTL:    time.Hour,
		}
		raw, err := good.Sign("01ARZ3NDEKTSV4RRFFQ69G5FAV", time.Now())
		require.NoError(t, err)

		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects", raw, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "User does not exist anymore", env.Message)
	})
}

func TestProjectCRUD(t *testing.T) {
	srv := setupServer(t)
	token := registerUser(t, srv.URL, "dave", "password123")

	t.Run("create requires title", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/v1/projects", token, map[string]string{
			"description": "no title here",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "fail", env.Status)
	})

	id := createProject(t, srv.URL, token, "Website Redesign")

	t.Run("get round trip", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects/"+id, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var project struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &project))
		require.Equal(t, id, project.ID)
		require.Equal(t, "Website Redesign", project.Title)
	})

	t.Run("list contains the project", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var projects []struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &projects))
		require.Len(t, projects, 1)
		require.Equal(t, id, projects[0].ID)
	})

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPatch, srv.URL+"/api/v1/projects/"+id, token, map[string]string{
			"description": "new copy, new look",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var project struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &project))
		require.Equal(t, "Website Redesign", project.Title)
		require.Equal(t, "new copy, new look", project.Description)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects/not-a-ulid", token, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "fail", env.Status)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects/01ARZ3NDEKTSV4RRFFQ69G5FAV", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "fail", env.Status)
		require.Equal(t, "Project not found", env.Message)
	})

	t.Run("delete then 404", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/api/v1/projects/"+id, token, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects/"+id, token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/projects/"+id, token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestTaskCRUD(t *testing.T) {
	srv := setupServer(t)
	token := registerUser(t, srv.URL, "erin", "password123")
	projectID := createProject(t, srv.URL, token, "Backlog")

	t.Run("status defaults to ToDo", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/v1/tasks", token, map[string]string{
			"title":     "Write landing copy",
			"projectId": projectID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var task struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &task))
		require.Equal(t, "ToDo", task.Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/v1/tasks", token, map[string]string{
			"title":     "Bad status",
			"status":    "Blocked",
			"projectId": projectID,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Status can only be ToDo, InProgress or Done", env.Message)
	})

	t.Run("task must name a project", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/tasks", token, map[string]string{
			"title": "Orphan",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("update status", func(t *testing.T) {
		_, env := doJSON(t, http.MethodPost, srv.URL+"/api/v1/tasks", token, map[string]string{
			"title":     "Ship it",
			"projectId": projectID,
		})
		var task struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &task))

		resp, env := doJSON(t, http.MethodPatch, srv.URL+"/api/v1/tasks/"+task.ID, token, map[string]string{
			"status": "Done",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated struct {
			Title  string `json:"title"`
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &updated))
		require.Equal(t, "Ship it", updated.Title)
		require.Equal(t, "Done", updated.Status)
	})

	t.Run("list by project", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/tasks/project/"+projectID, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var tasks []struct {
			ProjectID string `json:"projectId"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &tasks))
		require.NotEmpty(t, tasks)
		for _, task := range tasks {
			require.Equal(t, projectID, task.ProjectID)
		}
	})

	t.Run("list by project with no tasks is empty, not an error", func(t *testing.T) {
		emptyID := createProject(t, srv.URL, token, "Empty")

		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/tasks/project/"+emptyID, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "success", env.Status)

		var tasks []json.RawMessage
		require.NoError(t, json.Unmarshal(env.Data, &tasks))
		require.Empty(t, tasks)
	})

	t.Run("unknown task id is a 404", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/tasks/01ARZ3NDEKTSV4RRFFQ69G5FAV", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "Task not found", env.Message)
	})
}

func TestProjectDeleteCascades(t *testing.T) {
	srv := setupServer(t)
	token := registerUser(t, srv.URL, "frank", "password123")

	projectID := createProject(t, srv.URL, token, "Doomed")
	survivorID := createProject(t, srv.URL, token, "Survivor")

	for _, title := range []string{"one", "two", "three"} {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/tasks", token, map[string]string{
			"title":     title,
			"projectId": projectID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/tasks", token, map[string]string{
		"title":     "keep me",
		"projectId": survivorID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/projects/"+projectID, token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	t.Run("tasks of the deleted project are gone", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/tasks/project/"+projectID, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var tasks []json.RawMessage
		require.NoError(t, json.Unmarshal(env.Data, &tasks))
		require.Empty(t, tasks)
	})

	t.Run("other projects keep their tasks", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/tasks/project/"+survivorID, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var tasks []struct {
			Title string `json:"title"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &tasks))
		require.Len(t, tasks, 1)
		require.Equal(t, "keep me", tasks[0].Title)
	})
}

func TestHealthEndpoints(t *testing.T) {
	srv := setupServer(t)

	for _, path := range []string{"/livez", "/readyz"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var health struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		resp.Body.Close()
		require.Equal(t, "ok", health.Status)
	}
}
