package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memAuthStore is an in-memory AuthStorage.
type memAuthStore struct {
	auth *storage.AuthData
}

func (m *memAuthStore) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	m.auth = auth
	return nil
}

func (m *memAuthStore) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if m.auth == nil {
		return nil, storage.ErrAuthNotFound
	}
	return m.auth, nil
}

func (m *memAuthStore) DeleteAuth(ctx context.Context) error {
	if m.auth == nil {
		return storage.ErrAuthNotFound
	}
	m.auth = nil
	return nil
}

var _ storage.AuthStorage = (*memAuthStore)(nil)

// signedToken выпускает HS256 токен с заданным exp
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "coordinator",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLogin_StoresSession(t *testing.T) {
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)

	gateway := &GatewayMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			assert.Equal(t, "coordinator", req.Username)
			assert.Equal(t, "secret", req.Password)
			return &api.TokenResponse{
				AccessToken:  signedToken(t, exp),
				RefreshToken: "refresh1",
				ExpiresIn:    3600,
			}, nil
		},
	}
	store := &memAuthStore{}
	service := NewService(gateway, store, testLogger())

	require.NoError(t, service.Login(ctx, "coordinator", "secret"))

	require.NotNil(t, store.auth)
	assert.Equal(t, "coordinator", store.auth.Username)
	assert.Equal(t, "refresh1", store.auth.RefreshToken)
	// Дедлайн сессии берется из exp-клейма токена
	assert.Equal(t, exp.Unix(), store.auth.ExpiresAt)

	token, err := service.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.auth.AccessToken, token)
}

func TestLogin_GatewayFailure(t *testing.T) {
	gateway := &GatewayMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return nil, errors.New("invalid credentials")
		},
	}
	store := &memAuthStore{}
	service := NewService(gateway, store, testLogger())

	err := service.Login(context.Background(), "coordinator", "wrong")
	require.Error(t, err)
	assert.Nil(t, store.auth)
}

func TestIsAuthenticated(t *testing.T) {
	ctx := context.Background()
	store := &memAuthStore{}
	service := NewService(&GatewayMock{}, store, testLogger())

	// Нет сессии
	ok, err := service.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Живая сессия
	store.auth = &storage.AuthData{
		AccessToken: "access",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}
	ok, err = service.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// Истекшая сессия
	store.auth.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	ok, err = service.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccessToken_NoSession(t *testing.T) {
	service := NewService(&GatewayMock{}, &memAuthStore{}, testLogger())

	_, err := service.AccessToken(context.Background())
	require.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestReauthenticate_RotatesTokens(t *testing.T) {
	ctx := context.Background()
	exp := time.Now().Add(2 * time.Hour)

	gateway := &GatewayMock{
		RefreshFunc: func(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
			assert.Equal(t, "refresh1", req.RefreshToken)
			return &api.TokenResponse{
				AccessToken:  signedToken(t, exp),
				RefreshToken: "refresh2",
				ExpiresIn:    7200,
			}, nil
		},
	}
	store := &memAuthStore{auth: &storage.AuthData{
		Username:     "coordinator",
		AccessToken:  "stale",
		RefreshToken: "refresh1",
		ExpiresAt:    time.Now().Add(-time.Minute).Unix(),
	}}
	service := NewService(gateway, store, testLogger())

	require.NoError(t, service.Reauthenticate(ctx))

	assert.Equal(t, "refresh2", store.auth.RefreshToken)
	assert.Equal(t, exp.Unix(), store.auth.ExpiresAt)
	assert.NotEqual(t, "stale", store.auth.AccessToken)

	ok, err := service.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReauthenticate_KeepsRefreshTokenWhenNotRotated(t *testing.T) {
	ctx := context.Background()

	gateway := &GatewayMock{
		RefreshFunc: func(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
			// Шлюз вернул только новый access token
			return &api.TokenResponse{AccessToken: "access2", ExpiresIn: 3600}, nil
		},
	}
	store := &memAuthStore{auth: &storage.AuthData{RefreshToken: "refresh1"}}
	service := NewService(gateway, store, testLogger())

	require.NoError(t, service.Reauthenticate(ctx))
	assert.Equal(t, "refresh1", store.auth.RefreshToken)
	assert.Equal(t, "access2", store.auth.AccessToken)
}

func TestReauthenticate_NoSession(t *testing.T) {
	service := NewService(&GatewayMock{}, &memAuthStore{}, testLogger())

	err := service.Reauthenticate(context.Background())
	require.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	store := &memAuthStore{auth: &storage.AuthData{AccessToken: "access"}}
	service := NewService(&GatewayMock{}, store, testLogger())

	require.NoError(t, service.Logout(ctx))
	assert.Nil(t, store.auth)

	// Повторный logout без сессии не является ошибкой
	require.NoError(t, service.Logout(ctx))
}

func TestExpiresAt_FallsBackToExpiresIn(t *testing.T) {
	before := time.Now().Unix()
	got := expiresAt(&api.TokenResponse{AccessToken: "opaque-token", ExpiresIn: 3600})
	after := time.Now().Unix()

	// Непарсящийся токен: дедлайн считается от ExpiresIn
	assert.GreaterOrEqual(t, got, before+3600)
	assert.LessOrEqual(t, got, after+3600)
}
