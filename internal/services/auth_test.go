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
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
)

func newTestAuthService(userRepo *fakeUserRepo, cache *fakeCache) AuthServiceInterface {
	jwtSvc := service.NewJWTService("test-secret", time.Hour, zap.NewNop())
	return NewAuthService(userRepo, cache, jwtSvc, zap.NewNop())
}

func TestSignupAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	cache := newFakeCache()
	svc := newTestAuthService(userRepo, cache)
	ctx := context.Background()

	signupRes, err := svc.Signup(ctx, dto.SignupDTO{
		Username: "tech3",
		Password: "secret123",
		Name:     "New Technician",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, signupRes.Token)
	assert.Equal(t, constants.RoleTechnician, signupRes.User.Role)

	// Пароль в хранилище не в открытом виде
	stored := userRepo.users["tech3"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)

	loginRes, err := svc.Login(ctx, dto.LoginDTO{Username: "tech3", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, loginRes.Token)
	assert.Equal(t, signupRes.User.ID, loginRes.User.ID)
}

func TestSignup_UsernameTaken(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeCache())
	ctx := context.Background()

	_, err := svc.Signup(ctx, dto.SignupDTO{Username: "tech1", Password: "x", Name: "First"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, dto.SignupDTO{Username: "tech1", Password: "y", Name: "Second"})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestLogin_WrongCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeCache())
	ctx := context.Background()

	_, err := svc.Signup(ctx, dto.SignupDTO{Username: "tech1", Password: "correct", Name: "Tech"})
	require.NoError(t, err)

	// Ответ одинаковый и для чужого логина, и для чужого пароля
	_, err = svc.Login(ctx, dto.LoginDTO{Username: "nobody", Password: "correct"})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Equal(t, "Неверное имя пользователя или пароль", httpErr.Message)

	_, err = svc.Login(ctx, dto.LoginDTO{Username: "tech1", Password: "wrong"})
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Неверное имя пользователя или пароль", httpErr.Message)
}

func TestResolveSession(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeCache())
	ctx := context.Background()

	res, err := svc.Signup(ctx, dto.SignupDTO{Username: "tech1", Password: "x", Name: "Tech"})
	require.NoError(t, err)

	userID, sessionID, err := svc.ResolveSession(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, userID)
	assert.NotEmpty(t, sessionID)
}

func TestResolveSession_AfterLogout(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo, newFakeCache())
	ctx := context.Background()

	res, err := svc.Signup(ctx, dto.SignupDTO{Username: "tech1", Password: "x", Name: "Tech"})
	require.NoError(t, err)

	_, sessionID, err := svc.ResolveSession(ctx, res.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sessionID))

	// Подпись токена всё ещё верна, но сессии больше нет
	_, _, err = svc.ResolveSession(ctx, res.Token)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestResolveSession_GarbageToken(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeCache())

	_, _, err := svc.ResolveSession(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
