package services

import (
	"context"
	"testing"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/config"
	"dealerhub/internal/core/domain"
	"dealerhub/internal/pkg/jwt"
	"dealerhub/internal/pkg/password"
	"dealerhub/internal/pkg/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", AccessTokenMins: 5}}
	repo := repositories.NewAdminRepository(db)
	svc := NewAuthService(repo, cfg, zap.NewNop())

	hash, err := password.HashWithCost("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	admin := &models.Admin{Username: "admin", Email: "admin@example.com", Password: hash}
	require.NoError(t, repo.Create(ctx, admin))

	t.Run("Valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, &LoginInput{Username: "admin", Password: "s3cret-pass"})
		require.NoError(t, err)

		claims, err := jwt.ValidateAccessToken(resp.AccessToken, cfg.JWT.Secret)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, claims.AdminID)
		assert.Equal(t, "admin", claims.Username)

		me, err := svc.Me(ctx, claims.AdminID)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", me.Email)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginInput{Username: "admin", Password: "nope"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginInput{Username: "ghost", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginInput{Username: "admin"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
