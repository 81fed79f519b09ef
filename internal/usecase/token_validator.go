package usecase

import (
	"dynamic-pricing/internal/domain/operator"
	"dynamic-pricing/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, operator.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken also rejects tokens whose role is no longer recognised.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, operator.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := operator.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	return claims.OperatorID, role, nil
}
