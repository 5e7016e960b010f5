package auth

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saifuldipak/eoffice/internal"
)

// Service resolves bearer tokens to users. Token issuance lives outside
// this service; it only validates what it is handed.
type Service struct {
	repo      RepositoryAPI
	validator TokenValidatorAPI
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, validator TokenValidatorAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

func (s *Service) ResolveToken(tokenString string) (*User, error) {
	claims, err := s.validator.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.GetUserWithPermissions(claims.UserID)
	if err != nil {
		s.logger.Error("failed to load user for token", "user_id", claims.UserID, "error", err)
		return nil, internal.ErrInvalidToken
	}
	if u == nil {
		return nil, internal.ErrInvalidToken
	}

	return u, nil
}

func (v *TokenValidator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrInvalidToken.WithCause(jwt.ErrTokenExpired)
		}
		return nil, internal.ErrInvalidToken.WithCause(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}

	return claims, nil
}
