package entities

import (
	"github.com/aarondl/null/v8"
)

type User struct {
	ID       uint64 `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Name     string `json:"name" db:"name"`

	Password string `json:"-" db:"password"`

	// Manager, Technician, User
	Role string `json:"role" db:"role"`

	AvatarURL null.String `json:"avatar_url,omitempty" db:"avatar_url"`
	TeamID    null.Uint64 `json:"team_id,omitempty" db:"team_id"`
}
