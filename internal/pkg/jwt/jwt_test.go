//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"github.com/bothrasports-ops/arena-manager/internal/pkg/clock"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour, clock.NewRealClock())

	token, err := svc.GenerateToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Subject)
}

func TestServiceRejectsForgedToken(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour, clock.NewRealClock())
	other := jwt.NewService("different-secret", time.Hour, clock.NewRealClock())

	token, err := other.GenerateToken("admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestServiceRejectsExpiredToken(t *testing.T) {
	past := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	svc := jwt.NewService("secret", time.Hour, past)

	token, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestServiceRejectsGarbage(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour, clock.NewRealClock())

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
