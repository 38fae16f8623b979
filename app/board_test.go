package app

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/inquirylab/inquiry-board-be/config"
	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/db/memory"
	"github.com/inquirylab/inquiry-board-be/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPosts(t *testing.T, database db2.PostDatabase, n int, category model.Category) []*model.Post {
	t.Helper()
	posts := make([]*model.Post, n)
	for i := 0; i < n; i++ {
		post, err := database.CreatePost(context.Background(), &db2.CreatePost{
			Title:    "post " + strconv.Itoa(i),
			Content:  "content",
			Category: category,
			Author:   model.AnonymousAuthor,
			Token:    "tok" + strconv.Itoa(i),
		})
		require.NoError(t, err)
		posts[i] = post
	}
	return posts
}

func TestGetBoardPagePagination(t *testing.T) {
	database := memory.GetDatabase()
	ctx := context.Background()
	seedPosts(t, database, config.PostsPerPage+5, model.CategoryScience)

	page, err := GetBoardPage(ctx, database, &BoardQuery{Page: 1})
	require.NoError(t, err)
	assert.Len(t, page.Posts, config.PostsPerPage)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, config.PostsPerPage+5, page.TotalPosts)
	// newest first
	assert.Equal(t, "post "+strconv.Itoa(config.PostsPerPage+4), page.Posts[0].Title)

	page, err = GetBoardPage(ctx, database, &BoardQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, page.Posts, 5)
	assert.Equal(t, "post 0", page.Posts[len(page.Posts)-1].Title)
}

func TestGetBoardPageClampsOutOfRangePages(t *testing.T) {
	database := memory.GetDatabase()
	ctx := context.Background()
	seedPosts(t, database, 3, model.CategoryIntro)

	page, err := GetBoardPage(ctx, database, &BoardQuery{Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Posts, 3)

	page, err = GetBoardPage(ctx, database, &BoardQuery{Page: -1})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}

func TestGetBoardPageEmptyBoard(t *testing.T) {
	page, err := GetBoardPage(context.Background(), memory.GetDatabase(), &BoardQuery{Page: 1})
	require.NoError(t, err)
	assert.Empty(t, page.Pinned)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalPosts)
}

func TestGetBoardPageCategoryFilter(t *testing.T) {
	database := memory.GetDatabase()
	ctx := context.Background()
	seedPosts(t, database, 2, model.CategoryDesign)
	seedPosts(t, database, 3, model.CategoryResult)

	page, err := GetBoardPage(ctx, database, &BoardQuery{Category: model.CategoryDesign, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPosts)
	for _, post := range page.Posts {
		assert.Equal(t, model.CategoryDesign, post.Category)
	}
}

func TestGetBoardPagePinnedPartition(t *testing.T) {
	database := memory.GetDatabase()
	ctx := context.Background()
	posts := seedPosts(t, database, 5, model.CategoryFusion)

	// pin the two oldest; the later pin must render first
	base := time.Now().UTC()
	_, err := database.SetPinned(ctx, posts[0].Id, true, base)
	require.NoError(t, err)
	_, err = database.SetPinned(ctx, posts[1].Id, true, base.Add(time.Minute))
	require.NoError(t, err)

	page, err := GetBoardPage(ctx, database, &BoardQuery{Page: 1})
	require.NoError(t, err)
	require.Len(t, page.Pinned, 2)
	assert.Equal(t, posts[1].Id, page.Pinned[0].Id)
	assert.Equal(t, posts[0].Id, page.Pinned[1].Id)

	// pinned posts leave the paged partition entirely
	assert.Len(t, page.Posts, 3)
	assert.Equal(t, 3, page.TotalPosts)
	for _, post := range page.Posts {
		assert.False(t, post.IsPinned)
	}

	// unpinning returns the post to the paged partition
	_, err = database.SetPinned(ctx, posts[1].Id, false, time.Time{})
	require.NoError(t, err)
	page, err = GetBoardPage(ctx, database, &BoardQuery{Page: 1})
	require.NoError(t, err)
	assert.Len(t, page.Pinned, 1)
	assert.Equal(t, 4, page.TotalPosts)
}

func TestGetBoardPageLikedByFilter(t *testing.T) {
	database := memory.GetDatabase()
	ctx := context.Background()
	posts := seedPosts(t, database, 3, model.CategoryHumanities)

	_, err := database.ToggleLike(ctx, posts[0].Id, "u1")
	require.NoError(t, err)
	_, err = database.ToggleLike(ctx, posts[2].Id, "u1")
	require.NoError(t, err)
	_, err = database.ToggleLike(ctx, posts[1].Id, "u2")
	require.NoError(t, err)

	page, err := GetBoardPage(ctx, database, &BoardQuery{Page: 1, LikedBy: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPosts)
	for _, post := range page.Posts {
		assert.True(t, post.LikedBy("u1"))
	}
}
