package store

import (
	"context"
	"errors"

	"github.com/taskboardhq/taskboard/internal/taskboard/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Projects() Projects
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. A non-nil error from fn rolls
	// the transaction back; nil commits it. Use it for multi-step operations
	// that must be atomic (e.g. the project-delete cascade).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

type Projects interface {
	CreateProject(ctx context.Context, p domain.Project) error

	// ListProjects returns all projects in storage-natural (insertion) order.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	GetProjectByID(ctx context.Context, id string) (domain.Project, error)

	// UpdateProject overwrites title and description for the given id.
	UpdateProject(ctx context.Context, p domain.Project) error

	// DeleteProject removes the project row only. Cascading its tasks is the
	// service's job (see ProjectService.Delete). Returns ErrNotFound when the
	// id doesn't exist.
	DeleteProject(ctx context.Context, id string) error
}

type Tasks interface {
	CreateTask(ctx context.Context, t domain.Task) error

	// ListTasks returns all tasks across all projects.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// ListTasksByProject returns tasks with an exact project id match; an
	// empty slice when there are none.
	ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error)

	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// UpdateTask overwrites title and status for the given id.
	UpdateTask(ctx context.Context, t domain.Task) error

	DeleteTask(ctx context.Context, id string) error

	// DeleteTasksByProject bulk-deletes every task referencing the project.
	// Deleting zero rows is not an error.
	DeleteTasksByProject(ctx context.Context, projectID string) error
}
