//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"stay-marketplace/internal/pkg/config"
	"stay-marketplace/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, h.cfg.Issuer, duration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, username string) string {
	t.Helper()
	token, err := h.Service(t).GenerateToken(userID, username)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, username string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, username)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

func (h *JWTHelper) CreateForeignToken(t *testing.T, userID uuid.UUID, username string) string {
	t.Helper()
	service := jwt.NewService("some-other-secret", h.cfg.Issuer, time.Minute)
	token, err := service.GenerateToken(userID, username)
	require.NoError(t, err)
	return token
}
