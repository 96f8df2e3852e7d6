package domain

import "time"

// TaskStatus is the closed set of workflow states a task moves through.
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "ToDo"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusDone       TaskStatus = "Done"
)

// Valid reports whether s is one of the three workflow states.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

func (s TaskStatus) String() string { return string(s) }

type Task struct {
	ID        string
	Title     string
	Status    TaskStatus
	ProjectID string // References the parent project; tasks don't outlive it
	CreatedAt time.Time
}
