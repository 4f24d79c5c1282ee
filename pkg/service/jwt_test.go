package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "gearguard/pkg/errors"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, zap.NewNop())

	token, err := svc.GenerateSessionToken(7, "session-abc")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, "session-abc", claims.ID)
}

func TestValidateToken_WrongKey(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour, zap.NewNop())
	verifier := NewJWTService("secret-b", time.Hour, zap.NewNop())

	token, err := issuer.GenerateSessionToken(7, "session-abc")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("secret", -time.Minute, zap.NewNop())

	token, err := svc.GenerateSessionToken(7, "session-abc")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_EmptySessionID(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, zap.NewNop())

	// Токен без jti не привязан к сессии и не принимается
	token, err := svc.GenerateSessionToken(7, "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, zap.NewNop())

	_, err := svc.ValidateToken("definitely.not.a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
