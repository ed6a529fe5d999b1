package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-mall-api/internal/domain"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	t.Parallel()

	svcs, _ := newTestServices(t)
	ctx := context.Background()

	u, err := svcs.Auth.Register(ctx, RegisterInput{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "secret123",
		FullName: "Carol C",
	})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsAdmin)

	tok, logged, err := svcs.Auth.Login(ctx, "carol", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.Equal(t, u.ID, logged.ID)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	mustUser(t, db, "dave", false)

	// 用户不存在和密码错误是同一个错误
	_, _, err := svcs.Auth.Login(ctx, "dave", "wrong-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svcs.Auth.Login(ctx, "nobody", "secret123")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveRejected(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	u := mustUser(t, db, "erin", false)

	_, err := svcs.Users.SetActive(ctx, u.ID, false)
	require.NoError(t, err)

	_, _, err = svcs.Auth.Login(ctx, "erin", "secret123")
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	t.Parallel()

	svcs, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Auth.Register(ctx, RegisterInput{
		Username: "frank", Email: "frank@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svcs.Auth.Register(ctx, RegisterInput{
		Username: "frank2", Email: "frank@example.com", Password: "secret123",
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = svcs.Auth.Register(ctx, RegisterInput{
		Username: "frank", Email: "frank2@example.com", Password: "secret123",
	})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthService_Resolve(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	u := mustUser(t, db, "grace", false)

	tok, _, err := svcs.Auth.Login(ctx, "grace", "secret123")
	require.NoError(t, err)

	claims, err := svcs.Auth.jwter.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "grace", claims.Subject)

	got, err := svcs.Auth.Resolve(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// 令牌还在有效期内，但账号被停用后解析即拒绝
	_, err = svcs.Users.SetActive(ctx, u.ID, false)
	require.NoError(t, err)
	_, err = svcs.Auth.Resolve(ctx, claims)
	require.ErrorIs(t, err, domain.ErrForbidden)
}
