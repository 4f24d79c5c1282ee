package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/dto"
	"gearguard/pkg/constants"
)

func TestGroupRequestsByStatus(t *testing.T) {
	requests := []dto.RequestDTO{
		{ID: 1, Status: constants.StatusNew},
		{ID: 2, Status: constants.StatusInProgress},
		{ID: 3, Status: constants.StatusRepaired},
		{ID: 4, Status: constants.StatusScrap},
		{ID: 5, Status: constants.StatusNew},
		{ID: 6, Status: "Pending"},
	}

	board := GroupRequestsByStatus(requests)

	assert.Len(t, board.New, 2)
	assert.Len(t, board.InProgress, 1)
	assert.Len(t, board.Repaired, 1)
	assert.Len(t, board.Scrap, 1)

	// Нераспознанный статус не теряется, а попадает в Other
	require.Len(t, board.Other, 1)
	assert.Equal(t, uint64(6), board.Other[0].ID)

	total := len(board.New) + len(board.InProgress) + len(board.Repaired) + len(board.Scrap) + len(board.Other)
	assert.Equal(t, len(requests), total)
}

func TestGroupRequestsByStatus_Empty(t *testing.T) {
	board := GroupRequestsByStatus(nil)

	assert.NotNil(t, board.New)
	assert.NotNil(t, board.InProgress)
	assert.NotNil(t, board.Repaired)
	assert.NotNil(t, board.Scrap)
	assert.Empty(t, board.Other)
}

func TestBuildCalendarEvents(t *testing.T) {
	requests := []dto.RequestDTO{
		{
			ID: 1, Subject: "Replace fan", Type: constants.RequestTypeCorrective,
			ScheduledDate: "2026-09-01",
			Equipment:     dto.ShortEquipmentDTO{ID: 10, Name: "CNC Machine v2"},
		},
		{
			ID: 2, Subject: "Quarterly check", Type: constants.RequestTypePreventive,
			ScheduledDate: "2026-09-15",
			Equipment:     dto.ShortEquipmentDTO{ID: 11, Name: "MacBook Pro 16"},
		},
		{
			ID: 3, Subject: "No date", Type: constants.RequestTypeCorrective,
			Equipment: dto.ShortEquipmentDTO{ID: 12, Name: "Printer"},
		},
	}

	events := BuildCalendarEvents(requests)

	require.Len(t, events, 2)

	assert.Equal(t, uint64(1), events[0].ID)
	assert.Equal(t, "CNC Machine v2: Replace fan", events[0].Title)
	assert.Equal(t, "2026-09-01", events[0].Start)
	assert.Equal(t, constants.CalendarColorCorrective, events[0].Color)

	assert.Equal(t, "MacBook Pro 16: Quarterly check", events[1].Title)
	assert.Equal(t, constants.CalendarColorPreventive, events[1].Color)
}

func TestBuildCalendarEvents_Empty(t *testing.T) {
	events := BuildCalendarEvents(nil)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}
