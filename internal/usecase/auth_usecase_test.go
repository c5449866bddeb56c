package usecase

import (
	"context"
	"testing"
	"time"

	"healthcare-management/config"
	"healthcare-management/internal/delivery/dto"
	"healthcare-management/internal/repository/repositorytest"
	"healthcare-management/pkg/apperror"
	"healthcare-management/pkg/jwt"
	"healthcare-management/pkg/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	usecase  AuthUsecase
	store    *repositorytest.Store
	sessions *session.RedisStore
	jwt      *jwt.JWTService
	redis    *miniredis.Miniredis
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := repositorytest.NewStore()
	sessions := session.NewRedisStore(client, time.Hour)
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	return &authFixture{
		usecase:  NewAuthUsecase(newTestLogger(), store.Users(), sessions, jwtService),
		store:    store,
		sessions: sessions,
		jwt:      jwtService,
		redis:    mr,
	}
}

func TestRegisterIssuesSessionAndToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resp, err := f.usecase.Register(ctx, &dto.RegisterRequest{Name: "User", Email: "u@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "u@x.com", resp.Email)

	claims, err := f.jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)

	sess, err := f.sessions.Get(ctx, resp.SessionID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, resp.ID, sess.UserID)

	stored, err := f.store.Users().FindByEmail(ctx, "u@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	req := &dto.RegisterRequest{Name: "User", Email: "u@x.com", Password: "secret1"}

	_, err := f.usecase.Register(ctx, req)
	require.NoError(t, err)

	_, err = f.usecase.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.usecase.Register(ctx, &dto.RegisterRequest{Name: "User", Email: "u@x.com", Password: "secret1"})
	require.NoError(t, err)

	resp, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: "u@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.SessionID)

	_, err = f.usecase.Login(ctx, &dto.LoginRequest{Email: "u@x.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.usecase.Login(ctx, &dto.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutDestroysSession(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resp, err := f.usecase.Register(ctx, &dto.RegisterRequest{Name: "User", Email: "u@x.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, f.usecase.Logout(ctx, resp.SessionID))
	require.NoError(t, f.usecase.Logout(ctx, ""))

	sess, err := f.sessions.Get(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestGetCurrentUserMissing(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.usecase.GetCurrentUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRegisterSessionStoreDownFallsBackToToken(t *testing.T) {
	f := newAuthFixture(t)
	f.redis.Close()
	ctx := context.Background()

	resp, err := f.usecase.Register(ctx, &dto.RegisterRequest{Name: "User", Email: "u@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Empty(t, resp.SessionID)

	claims, err := f.jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)

	// The account is usable; a retry is a login, not a duplicate registration.
	login, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: "u@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}
