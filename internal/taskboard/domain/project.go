package domain

import "time"

type Project struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
}
