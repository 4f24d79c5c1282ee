package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

func TestFindEquipment(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{
		equipment: &entities.Equipment{
			ID:           10,
			Name:         "CNC Machine v2",
			SerialNumber: "SN-CNC-001",
			PurchaseDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		},
	}
	requestRepo := &fakeRequestRepo{openCount: 3}

	svc := NewEquipmentService(equipmentRepo, requestRepo, zap.NewNop())

	res, err := svc.FindEquipment(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "CNC Machine v2", res.Name)
	assert.Equal(t, "2025-03-12", res.PurchaseDate)
	assert.Equal(t, uint64(3), res.OpenRequestsCount)
}

func TestFindEquipment_NotFound(t *testing.T) {
	svc := NewEquipmentService(&fakeEquipmentRepo{}, &fakeRequestRepo{}, zap.NewNop())

	_, err := svc.FindEquipment(context.Background(), 404)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestGetActiveEquipments(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{
		active: []entities.Equipment{
			{ID: 1, Name: "MacBook Pro 16", SerialNumber: "SN12345"},
			{ID: 2, Name: "CNC Machine v2", SerialNumber: "SN-CNC-001"},
		},
	}

	svc := NewEquipmentService(equipmentRepo, &fakeRequestRepo{}, zap.NewNop())

	res, err := svc.GetActiveEquipments(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)

	// В списке для формы только id и имя
	assert.Equal(t, dto.ShortEquipmentDTO{ID: 1, Name: "MacBook Pro 16"}, res[0])
}

func TestCreateEquipment_DuplicateSerial(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{createErr: apperrors.ErrConflict}
	svc := NewEquipmentService(equipmentRepo, &fakeRequestRepo{}, zap.NewNop())

	_, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:         "MacBook Pro 16",
		SerialNumber: "SN12345",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
	assert.Equal(t, "Серийный номер SN12345 уже зарегистрирован", httpErr.Message)
}

func TestScrapEquipment(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{}
	svc := NewEquipmentService(equipmentRepo, &fakeRequestRepo{}, zap.NewNop())

	require.NoError(t, svc.ScrapEquipment(context.Background(), 10))
	assert.Equal(t, []uint64{10}, equipmentRepo.scrappedIDs)
}

func TestScrapEquipment_NotFound(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{scrapErr: apperrors.ErrNotFound}
	svc := NewEquipmentService(equipmentRepo, &fakeRequestRepo{}, zap.NewNop())

	err := svc.ScrapEquipment(context.Background(), 404)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
