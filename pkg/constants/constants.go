package constants

// Статусы заявок. Порядок фиксирован — его же использует канбан-доска.
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusRepaired   = "Repaired"
	StatusScrap      = "Scrap"
)

// KnownStatuses — все распознаваемые статусы в порядке колонок доски.
var KnownStatuses = []string{StatusNew, StatusInProgress, StatusRepaired, StatusScrap}

func IsKnownStatus(s string) bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Типы заявок
const (
	RequestTypeCorrective = "Corrective"
	RequestTypePreventive = "Preventive"
)

// Приоритеты
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Роли пользователей
const (
	RoleManager    = "Manager"
	RoleTechnician = "Technician"
	RoleUser       = "User"
)

// Типы уведомлений
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationSuccess = "success"
)

// Цвета событий календаря
const (
	CalendarColorCorrective = "#ef4444"
	CalendarColorPreventive = "#0ea5e9"
)
