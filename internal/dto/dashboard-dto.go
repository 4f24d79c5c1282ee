package dto

type DashboardStatsDTO struct {
	TotalEquipment uint64 `json:"total_equipment"`
	OpenRequests   uint64 `json:"open_requests"`
	OverdueJobs    uint64 `json:"overdue_jobs"`

	// Целый процент со знаком %, "100%" при нуле заявок.
	ResolutionRate string `json:"resolution_rate"`
}

type DashboardDTO struct {
	Stats          DashboardStatsDTO `json:"stats"`
	RecentRequests []RequestDTO      `json:"recent_requests"`
	Teams          []TeamDTO         `json:"teams"`
}

type TeamAnalyticsDTO struct {
	Labels []string `json:"labels"`
	Counts []uint64 `json:"counts"`
}
