package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-mall-api/internal/domain"
	"mini-mall-api/pkg/utils"
)

func TestUserService_UpdateMe(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	u := mustUser(t, db, "heidi", false)
	mustUser(t, db, "ivan", false)

	name := "Heidi H"
	pw := "new-password"
	got, err := svcs.Users.UpdateMe(ctx, u, UpdateUserInput{FullName: &name, Password: &pw})
	require.NoError(t, err)
	assert.Equal(t, "Heidi H", got.FullName)
	assert.True(t, utils.CheckPassword("new-password", got.PasswordHash))

	// 换成已被占用的邮箱要拒绝
	taken := "ivan@example.com"
	_, err = svcs.Users.UpdateMe(ctx, u, UpdateUserInput{Email: &taken})
	require.ErrorIs(t, err, domain.ErrConflict)

	// 换成自己的邮箱不算重复
	same := "heidi@example.com"
	_, err = svcs.Users.UpdateMe(ctx, u, UpdateUserInput{Email: &same})
	require.NoError(t, err)
}

func TestUserService_AdminToggles(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	u := mustUser(t, db, "judy", false)

	got, err := svcs.Users.SetAdmin(ctx, u.ID, true)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)
	assert.Equal(t, "admin", got.Role())

	got, err = svcs.Users.SetActive(ctx, u.ID, false)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = svcs.Users.SetActive(ctx, 99999, false)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_ListSearch(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	mustUser(t, db, "kathryn", false)
	mustUser(t, db, "katie", false)
	mustUser(t, db, "leo", false)

	items, total, err := svcs.Users.List(ctx, "kat", 0, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)

	_, total, err = svcs.Users.List(ctx, "", 0, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}
