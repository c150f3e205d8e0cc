package model

import "time"

// Note is a free-text memo owned by a session.
type Note struct {
	ID        string
	SessionID string
	Title     string
	Content   string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
