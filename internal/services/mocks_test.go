package services

import (
	"context"
	"fmt"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

// Заглушки репозиториев для юнит-тестов сервисов: без БД и без Redis.

type fakeEquipmentRepo struct {
	equipment *entities.Equipment
	details   *dto.EquipmentDetailsDTO
	list      []dto.EquipmentListItemDTO
	active    []entities.Equipment

	createID  uint64
	createErr error
	scrapErr  error

	lastCreated entities.Equipment
	scrappedIDs []uint64
}

func (f *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) ([]dto.EquipmentListItemDTO, error) {
	return f.list, nil
}

func (f *fakeEquipmentRepo) GetActiveEquipments(ctx context.Context) ([]entities.Equipment, error) {
	return f.active, nil
}

func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	if f.equipment == nil || f.equipment.ID != id {
		return nil, apperrors.ErrNotFound
	}
	return f.equipment, nil
}

func (f *fakeEquipmentRepo) FindEquipmentDetails(ctx context.Context, id uint64) (*dto.EquipmentDetailsDTO, error) {
	if f.details == nil {
		return nil, apperrors.ErrNotFound
	}
	return f.details, nil
}

func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, eq entities.Equipment) (uint64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.lastCreated = eq
	return f.createID, nil
}

func (f *fakeEquipmentRepo) ScrapEquipment(ctx context.Context, id uint64) error {
	if f.scrapErr != nil {
		return f.scrapErr
	}
	f.scrappedIDs = append(f.scrappedIDs, id)
	return nil
}

type fakeRequestRepo struct {
	requests  []dto.RequestDTO
	openCount uint64

	createID  uint64
	createErr error
	updateErr error

	lastCreated    entities.MaintenanceRequest
	lastNotif      *entities.Notification
	updatedID      uint64
	updatedStatus  string
	updateCalls    int
	recentLimit    uint64
	byEquipmentIDs []uint64
}

func (f *fakeRequestRepo) GetRequests(ctx context.Context) ([]dto.RequestDTO, error) {
	return f.requests, nil
}

func (f *fakeRequestRepo) GetRecentRequests(ctx context.Context, limit uint64) ([]dto.RequestDTO, error) {
	f.recentLimit = limit
	if uint64(len(f.requests)) > limit {
		return f.requests[:limit], nil
	}
	return f.requests, nil
}

func (f *fakeRequestRepo) GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]dto.RequestDTO, error) {
	f.byEquipmentIDs = append(f.byEquipmentIDs, equipmentID)
	return f.requests, nil
}

func (f *fakeRequestRepo) CountOpenByEquipment(ctx context.Context, equipmentID uint64) (uint64, error) {
	return f.openCount, nil
}

func (f *fakeRequestRepo) CreateRequest(ctx context.Context, req entities.MaintenanceRequest, notif *entities.Notification) (uint64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.lastCreated = req
	f.lastNotif = notif
	return f.createID, nil
}

func (f *fakeRequestRepo) UpdateRequestStatus(ctx context.Context, id uint64, status string) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

type fakeUserRepo struct {
	users map[string]*entities.User

	nextID      uint64
	technicians []entities.User
	teamMembers []entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User), nextID: 1}
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user entities.User) (uint64, error) {
	if _, exists := f.users[user.Username]; exists {
		return 0, apperrors.ErrConflict
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Username] = &user
	return user.ID, nil
}

func (f *fakeUserRepo) GetTechnicians(ctx context.Context) ([]entities.User, error) {
	return f.technicians, nil
}

func (f *fakeUserRepo) GetTeamMembers(ctx context.Context, teamID uint64) ([]entities.User, error) {
	return f.teamMembers, nil
}

// fakeCache — карта вместо Redis, значения хранятся строками как в нём.
type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.data[key] = fmt.Sprint(value)
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", apperrors.ErrSessionNotFound
	}
	return v, nil
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

type fakeTeamRepo struct {
	teams []dto.TeamDTO
	team  *entities.Team

	updateErr   error
	updatedID   uint64
	updatedName string
	updatedIDs  []uint64
}

func (f *fakeTeamRepo) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	return f.teams, nil
}

func (f *fakeTeamRepo) FindTeam(ctx context.Context, id uint64) (*entities.Team, error) {
	if f.team == nil || f.team.ID != id {
		return nil, apperrors.ErrNotFound
	}
	return f.team, nil
}

func (f *fakeTeamRepo) UpdateTeam(ctx context.Context, id uint64, name string, memberIDs []uint64) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedName = name
	f.updatedIDs = memberIDs
	return nil
}

type fakeNotificationRepo struct {
	notifications []entities.Notification

	requestedLimit uint64
	markedUserID   uint64
	markCalls      int
}

func (f *fakeNotificationRepo) GetByUser(ctx context.Context, userID uint64, limit uint64) ([]entities.Notification, error) {
	f.requestedLimit = limit
	if uint64(len(f.notifications)) > limit {
		return f.notifications[:limit], nil
	}
	return f.notifications, nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID uint64) error {
	f.markedUserID = userID
	f.markCalls++
	return nil
}

type fakeDashboardRepo struct {
	equipmentCount uint64
	counters       repositories.RequestCounters
	teamCounts     []repositories.TeamRequestCount

	overdueBefore time.Time
}

func (f *fakeDashboardRepo) CountEquipment(ctx context.Context) (uint64, error) {
	return f.equipmentCount, nil
}

func (f *fakeDashboardRepo) GetRequestCounters(ctx context.Context, overdueBefore time.Time) (*repositories.RequestCounters, error) {
	f.overdueBefore = overdueBefore
	counters := f.counters
	return &counters, nil
}

func (f *fakeDashboardRepo) GetTeamRequestCounts(ctx context.Context) ([]repositories.TeamRequestCount, error) {
	return f.teamCounts, nil
}
