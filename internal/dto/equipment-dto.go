package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Name         string `json:"name" validate:"required,max=100"`
	SerialNumber string `json:"serial_number" validate:"required,max=100"`
	Department   string `json:"department" validate:"max=100"`
	OwnerName    string `json:"owner_name" validate:"max=100"`
	Location     string `json:"location" validate:"max=100"`
	WarrantyInfo string `json:"warranty_info" validate:"max=255"`

	CategoryID   null.Uint64 `json:"category_id"`
	TeamID       null.Uint64 `json:"team_id"`
	TechnicianID null.Uint64 `json:"technician_id"`
}

// EquipmentFilterDTO — параметры списка: фильтр по категории и
// поиск по подстроке в названии или серийном номере.
type EquipmentFilterDTO struct {
	CategoryID uint64
	Search     string
}

type EquipmentListItemDTO struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
	Department   string `json:"department"`
	Location     string `json:"location"`
	IsScrapped   bool   `json:"is_scrapped"`

	CategoryName null.String `json:"category_name"`
	TeamName     null.String `json:"team_name"`
}

type EquipmentDTO struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
	Department   string `json:"department"`
	OwnerName    string `json:"owner_name"`
	Location     string `json:"location"`
	PurchaseDate string `json:"purchase_date"`
	WarrantyInfo string `json:"warranty_info"`
	IsScrapped   bool   `json:"is_scrapped"`

	CategoryID   null.Uint64 `json:"category_id,omitempty"`
	TeamID       null.Uint64 `json:"team_id,omitempty"`
	TechnicianID null.Uint64 `json:"technician_id,omitempty"`

	// Заявки по активу, ещё не доведённые до Repaired.
	OpenRequestsCount uint64 `json:"open_requests_count"`
}

// EquipmentDetailsDTO — данные для виджета формы создания заявки.
type EquipmentDetailsDTO struct {
	Department   string `json:"department"`
	TeamName     string `json:"team_name"`
	CategoryName string `json:"category_name"`
	Technician   string `json:"technician"`
}

type ShortEquipmentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
