package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type MaintenanceRequest struct {
	ID          uint64 `json:"id" db:"id"`
	Subject     string `json:"subject" db:"subject"`
	Description string `json:"description" db:"description"`

	// Corrective, Preventive
	Type string `json:"type" db:"type"`
	// New, In Progress, Repaired, Scrap
	Status string `json:"status" db:"status"`
	// Low, Medium, High
	Priority string `json:"priority" db:"priority"`

	ScheduledDate null.Time    `json:"scheduled_date,omitempty" db:"scheduled_date"`
	Duration      null.Float64 `json:"duration,omitempty" db:"duration"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`

	EquipmentID  uint64      `json:"equipment_id" db:"equipment_id"`
	AssignedToID null.Uint64 `json:"assigned_to_id,omitempty" db:"assigned_to_id"`
}
