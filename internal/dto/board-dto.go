package dto

// KanbanBoardDTO — заявки, разложенные по колонкам доски. Other ловит
// строки с нераспознанным статусом, чтобы разбиение оставалось полным.
type KanbanBoardDTO struct {
	New        []RequestDTO `json:"New"`
	InProgress []RequestDTO `json:"In Progress"`
	Repaired   []RequestDTO `json:"Repaired"`
	Scrap      []RequestDTO `json:"Scrap"`
	Other      []RequestDTO `json:"Other,omitempty"`
}

type CalendarEventDTO struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	Color string `json:"color"`
}
