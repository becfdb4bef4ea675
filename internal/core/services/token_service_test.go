package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
	"github.com/shopforge/shop_manager_app/internal/core/services"
	"github.com/shopforge/shop_manager_app/internal/platform/config"
	"github.com/shopforge/shop_manager_app/internal/utils"
)

// The expiry returned alongside the token must be the exact instant stored in
// the exp claim, not a second time.Now() reading.
func TestGenerateAccessToken_ExpiryMatchesClaim(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test-issuer",
	}
	svc := services.NewTokenService(cfg)

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), &domain.User{UserID: "user-1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.True(t, claims.ExpiresAt.Time.Equal(expiresAt),
		"claim exp %v differs from returned expiry %v", claims.ExpiresAt.Time, expiresAt)
}
