package dto

type TeamDTO struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	MemberCount    uint64 `json:"member_count"`
	EquipmentCount uint64 `json:"equipment_count"`
}

type TeamDetailDTO struct {
	ID      uint64         `json:"id"`
	Name    string         `json:"name"`
	Members []ShortUserDTO `json:"members"`

	// Все техники системы — кандидаты в состав команды.
	AllTechnicians []ShortUserDTO `json:"all_technicians"`
}

type UpdateTeamDTO struct {
	Name    string   `json:"name" validate:"required,max=100"`
	Members []uint64 `json:"members"`
}
