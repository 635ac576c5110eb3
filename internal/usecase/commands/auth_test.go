//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "github.com/bothrasports-ops/arena-manager/internal/handler/dto/request"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/clock"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/config"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/jwt"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestJWTService() *jwt.Service {
	return jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
}

func frontDeskConfig(username, password, hash string) config.Config {
	cfg := config.NewTestConfig()
	cfg.FrontDesk = config.FrontDeskConfig{
		Username:     username,
		Password:     password,
		PasswordHash: hash,
	}
	return cfg
}

func TestAuthCommandsLogin(t *testing.T) {
	ctx := context.Background()

	verifier := commands.NewFrontDeskVerifier(frontDeskConfig("admin", "arena2024", ""))
	auth := commands.NewAuthCommands(verifier, newTestJWTService())

	t.Run("valid credentials yield a token", func(t *testing.T) {
		result, err := auth.Login(ctx, reqdto.LoginRequest{Username: "admin", Password: "arena2024"})
		require.NoError(t, err)

		assert.Equal(t, "admin", result.Username)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("input is trimmed before verification", func(t *testing.T) {
		result, err := auth.Login(ctx, reqdto.LoginRequest{Username: "  admin  ", Password: " arena2024 "})
		require.NoError(t, err)
		assert.Equal(t, "admin", result.Username)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := auth.Login(ctx, reqdto.LoginRequest{Username: "admin", Password: "wrong"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("wrong username is rejected with the same error", func(t *testing.T) {
		_, err := auth.Login(ctx, reqdto.LoginRequest{Username: "intruder", Password: "arena2024"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}

func TestFrontDeskVerifier(t *testing.T) {
	t.Run("bcrypt hash takes precedence over plain password", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
		require.NoError(t, err)

		v := commands.NewFrontDeskVerifier(frontDeskConfig("admin", "plain-secret", string(hash)))

		assert.True(t, v.Verify("admin", "hashed-secret"))
		assert.False(t, v.Verify("admin", "plain-secret"))
	})

	t.Run("plain password fallback", func(t *testing.T) {
		v := commands.NewFrontDeskVerifier(frontDeskConfig("admin", "plain-secret", ""))

		assert.True(t, v.Verify("admin", "plain-secret"))
		assert.False(t, v.Verify("admin", "other"))
	})

	t.Run("no configured credential means nobody logs in", func(t *testing.T) {
		v := commands.NewFrontDeskVerifier(frontDeskConfig("admin", "", ""))

		assert.False(t, v.Verify("admin", ""))
		assert.False(t, v.Verify("admin", "anything"))
	})
}
