package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-mall-api/internal/domain"
)

func TestPostService_AuthorOrAdmin(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	author := mustUser(t, db, "writer", false)
	stranger := mustUser(t, db, "lurker", false)
	admin := mustUser(t, db, "mod", true)

	p, err := svcs.Posts.Create(ctx, author.ID, PostInput{Title: "hello", Content: "world"})
	require.NoError(t, err)
	assert.Equal(t, author.ID, p.AuthorID)
	assert.False(t, p.IsPublished)

	_, err = svcs.Posts.Update(ctx, stranger, p.ID, PostInput{Title: "hijacked"})
	require.ErrorIs(t, err, domain.ErrForbidden)
	require.ErrorIs(t, svcs.Posts.Delete(ctx, stranger, p.ID), domain.ErrForbidden)

	got, err := svcs.Posts.Update(ctx, author, p.ID, PostInput{Title: "hello v2", Content: "world", IsPublished: true})
	require.NoError(t, err)
	assert.Equal(t, "hello v2", got.Title)
	assert.True(t, got.IsPublished)

	require.NoError(t, svcs.Posts.Delete(ctx, admin, p.ID))
	_, err = svcs.Posts.Get(ctx, p.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostService_ListScopes(t *testing.T) {
	t.Parallel()

	svcs, db := newTestServices(t)
	ctx := context.Background()
	a := mustUser(t, db, "authorA", false)
	b := mustUser(t, db, "authorB", false)

	_, err := svcs.Posts.Create(ctx, a.ID, PostInput{Title: "a public", IsPublished: true})
	require.NoError(t, err)
	_, err = svcs.Posts.Create(ctx, a.ID, PostInput{Title: "a draft"})
	require.NoError(t, err)
	_, err = svcs.Posts.Create(ctx, b.ID, PostInput{Title: "b public", IsPublished: true})
	require.NoError(t, err)

	// 公开视图只有已发布的
	pub, total, err := svcs.Posts.List(ctx, domain.PostFilter{PublishedOnly: true}, 0, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, pub, 2)

	// 作者视图包含草稿
	mine, total, err := svcs.Posts.List(ctx, domain.PostFilter{AuthorID: a.ID}, 0, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, mine, 2)
}
