package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service defines the authentication collaborator consumed by the sync core.
type Service interface {
	// IsAuthenticated checks if a non-expired session exists
	IsAuthenticated(ctx context.Context) (bool, error)

	// AccessToken returns the current access token
	// Returns storage.ErrAuthNotFound if no session exists
	AccessToken(ctx context.Context) (string, error)

	// Reauthenticate exchanges the stored refresh token for a new token pair
	Reauthenticate(ctx context.Context) error

	// Login authenticates with the gateway and stores the session
	Login(ctx context.Context, username, password string) error

	// Logout removes the stored session
	Logout(ctx context.Context) error
}

//go:generate moq -out gateway_mock.go . Gateway

// Gateway is the slice of the sheet gateway client used for token exchange.
type Gateway interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error)
}

type service struct {
	gateway Gateway
	store   storage.AuthStorage
	logger  *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(gateway Gateway, store storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		gateway: gateway,
		store:   store,
		logger:  logger,
	}
}

// Login authenticates with the gateway and stores the session
func (s *service) Login(ctx context.Context, username, password string) error {
	resp, err := s.gateway.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	auth := &storage.AuthData{
		Username:     username,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    expiresAt(resp),
	}

	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Info("Logged in", "username", username)
	return nil
}

// Logout removes the stored session
func (s *service) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete auth data: %w", err)
	}
	return nil
}

// IsAuthenticated checks if a non-expired session exists
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, err
	}

	// Проверяем, не истек ли токен
	if time.Now().Unix() >= auth.ExpiresAt {
		return false, nil
	}

	return true, nil
}

// AccessToken returns the current access token
func (s *service) AccessToken(ctx context.Context) (string, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		return "", err
	}
	return auth.AccessToken, nil
}

// Reauthenticate exchanges the stored refresh token for a new token pair.
// Called once per sync cycle when the session has expired; a second
// failure is fatal for the cycle.
func (s *service) Reauthenticate(ctx context.Context) error {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		return fmt.Errorf("no stored session: %w", err)
	}

	resp, err := s.gateway.Refresh(ctx, api.RefreshRequest{RefreshToken: auth.RefreshToken})
	if err != nil {
		return fmt.Errorf("token refresh failed: %w", err)
	}

	auth.AccessToken = resp.AccessToken
	if resp.RefreshToken != "" {
		auth.RefreshToken = resp.RefreshToken
	}
	auth.ExpiresAt = expiresAt(resp)

	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save refreshed auth data: %w", err)
	}

	s.logger.Info("Session refreshed", "username", auth.Username)
	return nil
}

// expiresAt derives the session deadline from the token response.
// The JWT exp claim wins when present (unverified parse - the gateway
// verifies signatures, the client only needs the deadline); ExpiresIn
// is the fallback.
func expiresAt(resp *api.TokenResponse) int64 {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(resp.AccessToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Unix()
		}
	}
	return time.Now().Unix() + resp.ExpiresIn
}
