package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

const sessionKeyPrefix = "session:"

type AuthServiceInterface interface {
	Signup(ctx context.Context, payload dto.SignupDTO) (*dto.AuthResponseDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
	Logout(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, token string) (userID uint64, sessionID string, err error)
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	jwtSvc    service.JWTService
	logger    *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		jwtSvc:    jwtSvc,
		logger:    logger,
	}
}

// Signup регистрирует пользователя с ролью Technician по умолчанию и
// сразу открывает сессию.
func (s *AuthService) Signup(ctx context.Context, payload dto.SignupDTO) (*dto.AuthResponseDTO, error) {
	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := entities.User{
		Username: payload.Username,
		Password: hashed,
		Name:     payload.Name,
		Role:     constants.RoleTechnician,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if err == apperrors.ErrConflict {
			s.logger.Warn("Signup: имя пользователя занято", zap.String("username", payload.Username))
			return nil, apperrors.NewConflictError("Имя пользователя уже занято")
		}
		return nil, err
	}
	user.ID = id

	s.logger.Info("Зарегистрирован новый пользователь",
		zap.Uint64("userID", id),
		zap.String("username", payload.Username),
	)
	return s.openSession(ctx, &user)
}

// Login сверяет пароль с хешем. Ответ не уточняет, что именно неверно —
// логин или пароль.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindByUsername(ctx, payload.Username)
	if err != nil {
		s.logger.Warn("Login: пользователь не найден", zap.String("username", payload.Username))
		return nil, apperrors.NewUnauthorizedError("Неверное имя пользователя или пароль")
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.logger.Warn("Login: пароль не совпал", zap.String("username", payload.Username))
		return nil, apperrors.NewUnauthorizedError("Неверное имя пользователя или пароль")
	}

	return s.openSession(ctx, user)
}

// openSession создаёт запись сессии в Redis и выпускает токен с её id.
func (s *AuthService) openSession(ctx context.Context, user *entities.User) (*dto.AuthResponseDTO, error) {
	sessionID := uuid.New().String()

	if err := s.cacheRepo.Set(ctx, sessionKeyPrefix+sessionID, user.ID, s.jwtSvc.GetSessionTTL()); err != nil {
		return nil, fmt.Errorf("не удалось сохранить сессию: %w", err)
	}

	token, err := s.jwtSvc.GenerateSessionToken(user.ID, sessionID)
	if err != nil {
		_ = s.cacheRepo.Del(ctx, sessionKeyPrefix+sessionID)
		return nil, fmt.Errorf("не удалось выпустить сессионный токен: %w", err)
	}

	return &dto.AuthResponseDTO{
		Token: token,
		User:  dto.ShortUserDTO{ID: user.ID, Name: user.Name, Role: user.Role},
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.cacheRepo.Del(ctx, sessionKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("не удалось удалить сессию: %w", err)
	}
	s.logger.Info("Сессия закрыта", zap.String("sessionID", sessionID))
	return nil
}

// ResolveSession проверяет подпись токена и наличие живой сессии в
// Redis. Идентичность определяется записью сессии, а не самим токеном.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (uint64, string, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return 0, "", err
	}

	stored, err := s.cacheRepo.Get(ctx, sessionKeyPrefix+claims.ID)
	if err != nil {
		return 0, "", apperrors.ErrSessionNotFound
	}

	storedUserID, err := strconv.ParseUint(stored, 10, 64)
	if err != nil || storedUserID != claims.UserID {
		return 0, "", apperrors.ErrSessionNotFound
	}

	return claims.UserID, claims.ID, nil
}
