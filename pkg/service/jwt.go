package service

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "gearguard/pkg/errors"
)

// SessionClaims — содержимое сессионного токена. Сам по себе токен не
// даёт доступа: его jti (RegisteredClaims.ID) дополнительно проверяется
// по хранилищу сессий в Redis.
type SessionClaims struct {
	UserID uint64 `json:"userId"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateSessionToken(userID uint64, sessionID string) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
	GetSessionTTL() time.Duration
}

type jwtService struct {
	secretKey  string
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewJWTService(secretKey string, sessionTTL time.Duration, logger *zap.Logger) JWTService {
	return &jwtService{
		secretKey:  secretKey,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (s *jwtService) GenerateSessionToken(userID uint64, sessionID string) (string, error) {
	claims := &SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *jwtService) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.secretKey), nil
		default:
			return nil, apperrors.ErrInvalidSigningMethod
		}
	})
	if err != nil {
		s.logger.Warn("Ошибка парсинга или проверки подписи токена", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.ID == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

func (s *jwtService) GetSessionTTL() time.Duration {
	return s.sessionTTL
}
