package dto

type NotificationDTO struct {
	ID      uint64 `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	IsRead  bool   `json:"is_read"`

	// Только время HH:MM, как ожидает виджет в шапке.
	CreatedAt string `json:"created_at"`
}

type MarkReadResultDTO struct {
	Success bool `json:"success"`
}
