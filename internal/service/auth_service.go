package service

import (
	"context"
	"errors"
	"fmt"

	"quizroom/internal/config"
	"quizroom/internal/domain"
	"quizroom/internal/dto"
	"quizroom/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// ErrInvalidJWTToken is returned when a bearer token cannot be validated.
var ErrInvalidJWTToken = errors.New("invalid or expired JWT token")

// AuthService validates bearer tokens issued by the external identity
// collaborator and turns their claims into a domain session. Token issuance
// and login are out of scope.
type AuthService interface {
	ValidateJWT(ctx context.Context, tokenString string) (*domain.Session, error)
}

type authServiceImpl struct {
	secret []byte
}

// NewAuthService creates a new instance of authServiceImpl
func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret cannot be empty")
	}
	return &authServiceImpl{secret: []byte(cfg.JWTSecret)}, nil
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*domain.Session, error) {
	appLogger := logger.Get()
	token, err := jwt.ParseWithClaims(tokenString, &dto.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			appLogger.Warn("JWT token expired", zap.Error(err))
		} else {
			appLogger.Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}

	role := domain.Role(claims.Role)
	if role != domain.RoleStudent && role != domain.RoleEducator {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidJWTToken, claims.Role)
	}

	return &domain.Session{
		ID:          claims.Subject,
		DisplayName: claims.DisplayName,
		Contact:     claims.Contact,
		Role:        role,
	}, nil
}
