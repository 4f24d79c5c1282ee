package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Equipment struct {
	ID           uint64    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	SerialNumber string    `json:"serial_number" db:"serial_number"`
	Department   string    `json:"department" db:"department"`
	OwnerName    string    `json:"owner_name" db:"owner_name"`
	Location     string    `json:"location" db:"location"`
	PurchaseDate time.Time `json:"purchase_date" db:"purchase_date"`
	WarrantyInfo string    `json:"warranty_info" db:"warranty_info"`
	IsScrapped   bool      `json:"is_scrapped" db:"is_scrapped"`

	TeamID              null.Uint64 `json:"team_id,omitempty" db:"team_id"`
	CategoryID          null.Uint64 `json:"category_id,omitempty" db:"category_id"`
	DefaultTechnicianID null.Uint64 `json:"default_technician_id,omitempty" db:"default_technician_id"`
}
