package memory

import (
	"context"
	"testing"

	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ db2.Database = (*MemoryDB)(nil)

func TestGetPostsOrdering(t *testing.T) {
	mdb := GetDatabase()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := mdb.CreatePost(ctx, &db2.CreatePost{
			Title:    title,
			Content:  "content",
			Category: model.CategoryIntro,
			Author:   model.AnonymousAuthor,
		})
		require.NoError(t, err)
	}

	posts, err := mdb.GetPosts(ctx, "")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Title)
	assert.Equal(t, "second", posts[1].Title)
	assert.Equal(t, "first", posts[2].Title)
}

func TestGetPostsCategoryFilter(t *testing.T) {
	mdb := GetDatabase()
	ctx := context.Background()

	_, err := mdb.CreatePost(ctx, &db2.CreatePost{
		Title: "a", Content: "c", Category: model.CategoryDesign, Author: "x",
	})
	require.NoError(t, err)
	_, err = mdb.CreatePost(ctx, &db2.CreatePost{
		Title: "b", Content: "c", Category: model.CategoryResult, Author: "x",
	})
	require.NoError(t, err)

	posts, err := mdb.GetPosts(ctx, model.CategoryDesign)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "a", posts[0].Title)
}

func TestNotFoundErrors(t *testing.T) {
	mdb := GetDatabase()
	ctx := context.Background()

	_, err := mdb.GetPostById(ctx, "missing")
	assert.True(t, db2.IsNotFound(err))
	_, err = mdb.UpdatePost(ctx, "missing", &db2.UpdatePost{})
	assert.True(t, db2.IsNotFound(err))
	assert.True(t, db2.IsNotFound(mdb.DeletePost(ctx, "missing")))
	_, err = mdb.ToggleLike(ctx, "missing", "u1")
	assert.True(t, db2.IsNotFound(err))
	_, err = mdb.GetAdmin(ctx, "missing")
	assert.True(t, db2.IsNotFound(err))
}

func TestClonesDoNotShareState(t *testing.T) {
	mdb := GetDatabase()
	ctx := context.Background()

	created, err := mdb.CreatePost(ctx, &db2.CreatePost{
		Title: "t", Content: "c", Category: model.CategoryTrial, Author: "x",
	})
	require.NoError(t, err)

	fetched, err := mdb.GetPostById(ctx, created.Id)
	require.NoError(t, err)
	fetched.LikedUserIds = append(fetched.LikedUserIds, "intruder")
	fetched.Comments = append(fetched.Comments, model.Comment{Id: "fake"})

	again, err := mdb.GetPostById(ctx, created.Id)
	require.NoError(t, err)
	assert.Empty(t, again.LikedUserIds)
	assert.Empty(t, again.Comments)
}

func TestToggleLikeInvariant(t *testing.T) {
	mdb := GetDatabase()
	ctx := context.Background()

	post, err := mdb.CreatePost(ctx, &db2.CreatePost{
		Title: "t", Content: "c", Category: model.CategoryScience, Author: "x",
	})
	require.NoError(t, err)

	for _, userId := range []string{"u1", "u2", "u3"} {
		updated, err := mdb.ToggleLike(ctx, post.Id, userId)
		require.NoError(t, err)
		assert.Equal(t, updated.Likes, len(updated.LikedUserIds))
	}
	for _, userId := range []string{"u2", "u1", "u3"} {
		updated, err := mdb.ToggleLike(ctx, post.Id, userId)
		require.NoError(t, err)
		assert.Equal(t, updated.Likes, len(updated.LikedUserIds))
		assert.GreaterOrEqual(t, updated.Likes, 0)
	}

	final, err := mdb.GetPostById(ctx, post.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, final.Likes)
	assert.Empty(t, final.LikedUserIds)
}

func TestCreateAdminDuplicate(t *testing.T) {
	mdb := GetDatabase()
	ctx := context.Background()

	require.NoError(t, mdb.CreateAdmin(ctx, &db2.CreateAdmin{Id: "a", Name: "a", PasswordHash: "h"}))
	err := mdb.CreateAdmin(ctx, &db2.CreateAdmin{Id: "a", Name: "b", PasswordHash: "h"})
	assert.Equal(t, db2.ErrDuplicateId, err)
}
