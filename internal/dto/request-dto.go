package dto

type CreateRequestDTO struct {
	EquipmentID uint64 `json:"equipment_id" validate:"required,gt=0"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Type        string `json:"type" validate:"required,request_type"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"omitempty,request_priority"`

	// Формат YYYY-MM-DD, пустая строка — без планируемой даты.
	ScheduledDate string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateRequestStatusDTO struct {
	Status string `json:"status" validate:"required,request_status"`
}

type RequestDTO struct {
	ID          uint64 `json:"id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`

	ScheduledDate string  `json:"scheduled_date,omitempty"`
	Duration      float64 `json:"duration,omitempty"`
	CreatedAt     string  `json:"created_at"`

	Equipment  ShortEquipmentDTO `json:"equipment"`
	AssignedTo *ShortUserDTO     `json:"assigned_to,omitempty"`
}

type StatusUpdateResultDTO struct {
	Success bool `json:"success"`
}
