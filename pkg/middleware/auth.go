package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type AuthMiddleware struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthMiddleware(authService services.AuthServiceInterface, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// Auth - это основная функция middleware.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// 1. Извлекаем токен из заголовка
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: Пустой заголовок Authorization")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		// 2. Проверяем формат заголовка "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: Неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		tokenString := parts[1]

		// 3. Проверяем подпись токена и сессию в Redis
		userID, sessionID, err := m.authService.ResolveSession(c.Request().Context(), tokenString)
		if err != nil {
			m.logger.Warn("AuthMiddleware: Ошибка проверки сессии", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		// 4. Записываем UserID и SessionID в контекст запроса
		ctx := c.Request().Context()
		newCtx := context.WithValue(ctx, contextkeys.UserIDKey, userID)
		newCtx = context.WithValue(newCtx, contextkeys.SessionIDKey, sessionID)
		c.SetRequest(c.Request().WithContext(newCtx))

		return next(c)
	}
}
