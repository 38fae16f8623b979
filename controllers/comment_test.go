package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/inquirylab/inquiry-board-be/db/memory"
	"github.com/inquirylab/inquiry-board-be/model"
	"github.com/inquirylab/inquiry-board-be/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture(t *testing.T) (*CommentController, *model.Post) {
	t.Helper()
	database := memory.GetDatabase()
	post, httpErr := NewPostController(database).CreatePost(context.Background(), &CreatePostReq{
		Title:    "volcano model",
		Content:  "baking soda and vinegar ratios",
		Category: model.CategoryTrial,
	})
	require.Nil(t, httpErr)
	return NewCommentController(database), post
}

func addComment(t *testing.T, cc *CommentController, postId string, req *AddCommentReq) *model.Post {
	t.Helper()
	post, httpErr := cc.AddComment(context.Background(), postId, req)
	require.Nil(t, httpErr)
	return post
}

func TestAddComment(t *testing.T) {
	cc, post := newCommentFixture(t)

	updated := addComment(t, cc, post.Id, &AddCommentReq{
		Content: "try a 2:1 ratio",
		Author:  "kim",
		UserId:  "u1",
	})
	require.Len(t, updated.Comments, 1)
	comment := updated.Comments[0]
	assert.NotEmpty(t, comment.Id)
	assert.Equal(t, "try a 2:1 ratio", comment.Content)
	assert.Equal(t, "kim", comment.Author)
	assert.Equal(t, "u1", comment.UserId)
	assert.False(t, comment.CreatedAt.IsZero())
	assert.Nil(t, comment.EditedAt)

	// second comment appends after the first
	updated = addComment(t, cc, post.Id, &AddCommentReq{Content: "worked for us", UserId: "u2"})
	require.Len(t, updated.Comments, 2)
	assert.Equal(t, model.AnonymousAuthor, updated.Comments[1].Author)
	assert.NotEqual(t, updated.Comments[0].Id, updated.Comments[1].Id)
}

func TestAddCommentMissingPost(t *testing.T) {
	cc, _ := newCommentFixture(t)
	_, httpErr := cc.AddComment(context.Background(), "no-such-post", &AddCommentReq{Content: "hi"})
	require.NotNil(t, httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestEditComment(t *testing.T) {
	cc, post := newCommentFixture(t)
	ctx := context.Background()
	withComment := addComment(t, cc, post.Id, &AddCommentReq{Content: "first draft", UserId: "u1"})
	commentId := withComment.Comments[0].Id

	t.Run("owner edits in place", func(t *testing.T) {
		updated, httpErr := cc.EditComment(ctx, post.Id, commentId, policy.Actor{UserId: "u1"}, &EditCommentReq{
			Content: "second draft",
			Author:  "kim",
		})
		require.Nil(t, httpErr)
		require.Len(t, updated.Comments, 1)
		assert.Equal(t, "second draft", updated.Comments[0].Content)
		assert.Equal(t, commentId, updated.Comments[0].Id)
		assert.NotNil(t, updated.Comments[0].EditedAt)
	})

	t.Run("non-owner is rejected and content survives", func(t *testing.T) {
		_, httpErr := cc.EditComment(ctx, post.Id, commentId, policy.Actor{UserId: "u2"}, &EditCommentReq{
			Content: "vandalism",
		})
		require.NotNil(t, httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Status)

		current, err := cc.db.GetPostById(ctx, post.Id)
		require.NoError(t, err)
		assert.Equal(t, "second draft", current.Comments[0].Content)
	})

	t.Run("admin gets no edit bypass", func(t *testing.T) {
		_, httpErr := cc.EditComment(ctx, post.Id, commentId, policy.Actor{UserId: "mod", IsAdmin: true}, &EditCommentReq{
			Content: "moderated",
		})
		require.NotNil(t, httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Status)
	})

	t.Run("missing comment is a 404", func(t *testing.T) {
		_, httpErr := cc.EditComment(ctx, post.Id, "no-such-comment", policy.Actor{UserId: "u1"}, &EditCommentReq{})
		require.NotNil(t, httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("missing post is a 404", func(t *testing.T) {
		_, httpErr := cc.EditComment(ctx, "no-such-post", commentId, policy.Actor{UserId: "u1"}, &EditCommentReq{})
		require.NotNil(t, httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})
}

func TestDeleteComment(t *testing.T) {
	cc, post := newCommentFixture(t)
	ctx := context.Background()

	withComments := addComment(t, cc, post.Id, &AddCommentReq{Content: "keep me", UserId: "u1"})
	withComments = addComment(t, cc, post.Id, &AddCommentReq{Content: "delete me", UserId: "u2"})
	keepId, targetId := withComments.Comments[0].Id, withComments.Comments[1].Id

	t.Run("third party is rejected", func(t *testing.T) {
		_, httpErr := cc.DeleteComment(ctx, post.Id, targetId, policy.Actor{UserId: "u3"})
		require.NotNil(t, httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Status)
	})

	t.Run("owner deletes their comment", func(t *testing.T) {
		updated, httpErr := cc.DeleteComment(ctx, post.Id, targetId, policy.Actor{UserId: "u2"})
		require.Nil(t, httpErr)
		require.Len(t, updated.Comments, 1)
		assert.Equal(t, keepId, updated.Comments[0].Id)
	})

	t.Run("admin deletes someone else's comment", func(t *testing.T) {
		updated, httpErr := cc.DeleteComment(ctx, post.Id, keepId, policy.Actor{UserId: "mod", IsAdmin: true})
		require.Nil(t, httpErr)
		assert.Empty(t, updated.Comments)
	})

	t.Run("already deleted comment is a 404", func(t *testing.T) {
		_, httpErr := cc.DeleteComment(ctx, post.Id, targetId, policy.Actor{UserId: "u2"})
		require.NotNil(t, httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})
}
