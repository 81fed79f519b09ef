//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"dynamic-pricing/internal/domain/operator"
	"dynamic-pricing/internal/pkg/clock"
	"dynamic-pricing/internal/pkg/config"
	"dynamic-pricing/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, operatorID uuid.UUID, role operator.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, h.cfg.Issuer, clock.NewRealClock())
	token, _, err := service.GenerateToken(operatorID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose expiry is already in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, operatorID uuid.UUID, role operator.Role) string {
	t.Helper()
	issuedAt := clock.NewMockClock(time.Now().Add(-2 * h.cfg.Duration))
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, h.cfg.Issuer, issuedAt)
	token, _, err := service.GenerateToken(operatorID, role)
	require.NoError(t, err)
	return token
}

// NewOperator returns a fresh operator ID with a token for role.
func (h *JWTHelper) NewOperator(t *testing.T, role operator.Role) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, role)
}
