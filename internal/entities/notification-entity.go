package entities

import "time"

type Notification struct {
	ID      uint64 `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Message string `json:"message" db:"message"`

	// info, warning, success
	Type string `json:"type" db:"type"`

	IsRead    bool      `json:"is_read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UserID    uint64    `json:"user_id" db:"user_id"`
}
