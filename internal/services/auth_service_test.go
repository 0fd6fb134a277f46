package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) *authService {
	t.Helper()
	rc, _ := newTestRedis(t)
	users := NewUserService(newFakeUserRepo())
	require.NoError(t, users.EnsureUser("admin", "s3nha-forte"))
	return NewAuthService(users, rc, "test-secret", time.Hour).(*authService)
}

func TestLoginAuthenticateLogout(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "admin", "s3nha-forte")
	require.NoError(t, err)
	assert.Equal(t, "admin", res.Username)

	sessionID, session, err := svc.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.Equal(t, "admin", session.Username)

	require.NoError(t, svc.Logout(ctx, sessionID))
	_, _, err = svc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken, "token dies with its session")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ghost", "s3nha-forte")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRejectsForeignAndExpiredTokens(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Authenticate(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewAuthService(svc.userService, svc.redis, "other-secret", time.Hour)
	res, err := other.Login(ctx, "admin", "s3nha-forte")
	require.NoError(t, err)
	_, _, err = svc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	res, err = svc.Login(ctx, "admin", "s3nha-forte")
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, _, err = svc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEnsureUserIsIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	users := NewUserService(repo)

	require.NoError(t, users.EnsureUser("ops", "pw"))
	require.NoError(t, users.EnsureUser("ops", "different"))
	assert.Len(t, repo.users, 1)

	u, err := users.GetUserByUsername("ops")
	require.NoError(t, err)
	assert.True(t, users.CheckPassword(u, "pw"))
	assert.False(t, users.CheckPassword(u, "different"))
}
