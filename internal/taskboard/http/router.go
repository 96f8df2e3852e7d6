package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/taskboardhq/taskboard/internal/taskboard/service"
	"github.com/taskboardhq/taskboard/internal/taskboard/store"
	"github.com/taskboardhq/taskboard/pkg/httpx"
	"github.com/taskboardhq/taskboard/pkg/slogx"

	_ "github.com/taskboardhq/taskboard/api/taskboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	env          string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	UserService    *service.UserService
	TokenService   *service.TokenService
	ProjectService *service.ProjectService
	TaskService    *service.TaskService
}

func NewRouter(
	env, buildVersion string,
	corsOrigins []string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		env:          env,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Global middleware chain: request logging first, then CORS
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins),
	}

	return r
}

func (rt *Router) ApplyRoutes() {
	rt.registerUsers()
	rt.registerProjects()
	rt.registerTasks()
	rt.registerSystem()

	rt.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TaskBoard API
//	@version		0.1.0
//	@description	Task-tracking service: users, projects, and tasks behind JWT bearer auth.
//	@description
//	@description				Register or log in to obtain a token; all project and task routes require it.
//
//	@contact.name				TaskBoard Team
//	@contact.url				https://github.com/taskboardhq/taskboard
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (rt *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(rt.Mux, rt.middlewares...).ServeHTTP(w, req)
}

// secured wraps a handler with the bearer-token gate.
func (rt *Router) secured(h http.Handler) http.Handler {
	return httpx.Chain(h, rt.requireAuth)
}

func (rt *Router) registerUsers() {
	h := &UsersHandler{
		UserService:  rt.UserService,
		TokenService: rt.TokenService,
		Env:          rt.env,
	}

	rt.Mux.Handle("POST /api/v1/users/register", http.HandlerFunc(h.HandleRegister))
	rt.Mux.Handle("POST /api/v1/users/login", http.HandlerFunc(h.HandleLogin))
}

func (rt *Router) registerProjects() {
	h := &ProjectsHandler{ProjectService: rt.ProjectService, Env: rt.env}

	rt.Mux.Handle("GET /api/v1/projects", rt.secured(http.HandlerFunc(h.HandleList)))
	rt.Mux.Handle("POST /api/v1/projects", rt.secured(http.HandlerFunc(h.HandleCreate)))
	rt.Mux.Handle("GET /api/v1/projects/{id}", rt.secured(http.HandlerFunc(h.HandleGet)))
	rt.Mux.Handle("PATCH /api/v1/projects/{id}", rt.secured(http.HandlerFunc(h.HandleUpdate)))
	rt.Mux.Handle("DELETE /api/v1/projects/{id}", rt.secured(http.HandlerFunc(h.HandleDelete)))
}

func (rt *Router) registerTasks() {
	h := &TasksHandler{TaskService: rt.TaskService, Env: rt.env}

	rt.Mux.Handle("GET /api/v1/tasks", rt.secured(http.HandlerFunc(h.HandleList)))
	rt.Mux.Handle("POST /api/v1/tasks", rt.secured(http.HandlerFunc(h.HandleCreate)))
	// The literal "project" segment is more specific than {id}, so ServeMux
	// routes it ahead of the task-by-id pattern.
	rt.Mux.Handle("GET /api/v1/tasks/project/{projectId}", rt.secured(http.HandlerFunc(h.HandleListByProject)))
	rt.Mux.Handle("GET /api/v1/tasks/{id}", rt.secured(http.HandlerFunc(h.HandleGet)))
	rt.Mux.Handle("PATCH /api/v1/tasks/{id}", rt.secured(http.HandlerFunc(h.HandleUpdate)))
	rt.Mux.Handle("DELETE /api/v1/tasks/{id}", rt.secured(http.HandlerFunc(h.HandleDelete)))
}

func (rt *Router) registerSystem() {
	rt.Mux.Handle("GET /livez", LivezHandler(rt.startTime, rt.buildVersion))
	rt.Mux.Handle("GET /readyz", ReadyzHandler(rt.startTime, rt.buildVersion, rt.store))
}
