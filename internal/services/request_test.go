package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
)

func TestCreateRequest_NotifiesDefaultTechnician(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{
		equipment: &entities.Equipment{
			ID:                  10,
			Name:                "CNC Machine v2",
			DefaultTechnicianID: null.Uint64From(7),
		},
	}
	requestRepo := &fakeRequestRepo{createID: 42}

	svc := NewRequestService(requestRepo, equipmentRepo, zap.NewNop())

	id, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		EquipmentID:   10,
		Subject:       "Spindle vibration",
		Type:          constants.RequestTypeCorrective,
		Priority:      constants.PriorityHigh,
		ScheduledDate: "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	created := requestRepo.lastCreated
	assert.Equal(t, constants.StatusNew, created.Status)
	assert.Equal(t, uint64(10), created.EquipmentID)
	assert.Equal(t, uint64(7), created.AssignedToID.Uint64)
	require.True(t, created.ScheduledDate.Valid)
	assert.Equal(t, "2026-09-01", created.ScheduledDate.Time.Format("2006-01-02"))

	notif := requestRepo.lastNotif
	require.NotNil(t, notif)
	assert.Equal(t, "New Maintenance Request", notif.Title)
	assert.Equal(t, "New request 'Spindle vibration' assigned to you for CNC Machine v2", notif.Message)
	assert.Equal(t, constants.NotificationInfo, notif.Type)
	assert.Equal(t, uint64(7), notif.UserID)
}

func TestCreateRequest_NoDefaultTechnician(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{
		equipment: &entities.Equipment{ID: 10, Name: "Printer"},
	}
	requestRepo := &fakeRequestRepo{createID: 1}

	svc := NewRequestService(requestRepo, equipmentRepo, zap.NewNop())

	_, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		EquipmentID: 10,
		Subject:     "Paper jam",
		Type:        constants.RequestTypeCorrective,
	})
	require.NoError(t, err)

	assert.False(t, requestRepo.lastCreated.AssignedToID.Valid)
	assert.Nil(t, requestRepo.lastNotif)
}

func TestCreateRequest_EquipmentNotFound(t *testing.T) {
	svc := NewRequestService(&fakeRequestRepo{}, &fakeEquipmentRepo{}, zap.NewNop())

	_, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		EquipmentID: 99,
		Subject:     "x",
		Type:        constants.RequestTypeCorrective,
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestCreateRequest_BadScheduledDate(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{
		equipment: &entities.Equipment{ID: 10, Name: "Printer"},
	}
	svc := NewRequestService(&fakeRequestRepo{}, equipmentRepo, zap.NewNop())

	_, err := svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		EquipmentID:   10,
		Subject:       "x",
		Type:          constants.RequestTypePreventive,
		ScheduledDate: "01.09.2026",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUpdateRequestStatus(t *testing.T) {
	requestRepo := &fakeRequestRepo{}
	svc := NewRequestService(requestRepo, &fakeEquipmentRepo{}, zap.NewNop())

	err := svc.UpdateRequestStatus(context.Background(), 5, constants.StatusRepaired)
	require.NoError(t, err)

	assert.Equal(t, uint64(5), requestRepo.updatedID)
	assert.Equal(t, constants.StatusRepaired, requestRepo.updatedStatus)
}

func TestUpdateRequestStatus_UnknownStatus(t *testing.T) {
	requestRepo := &fakeRequestRepo{}
	svc := NewRequestService(requestRepo, &fakeEquipmentRepo{}, zap.NewNop())

	err := svc.UpdateRequestStatus(context.Background(), 5, "Broken")

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	// До репозитория дело не дошло
	assert.Zero(t, requestRepo.updateCalls)
}

func TestUpdateRequestStatus_NotFound(t *testing.T) {
	requestRepo := &fakeRequestRepo{updateErr: apperrors.ErrNotFound}
	svc := NewRequestService(requestRepo, &fakeEquipmentRepo{}, zap.NewNop())

	err := svc.UpdateRequestStatus(context.Background(), 404, constants.StatusScrap)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestGetRequestsByEquipment_EquipmentNotFound(t *testing.T) {
	svc := NewRequestService(&fakeRequestRepo{}, &fakeEquipmentRepo{}, zap.NewNop())

	_, err := svc.GetRequestsByEquipment(context.Background(), 77)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
