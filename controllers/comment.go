package controllers

import (
	"context"
	"time"

	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/model"
	"github.com/inquirylab/inquiry-board-be/policy"
	"github.com/inquirylab/inquiry-board-be/util"
)

// CommentController owns every mutation of the embedded comment list.
// Each operation reads the parent post, rewrites the list in memory
// and persists it wholesale; a lost rewrite under two concurrent
// writers is an accepted limitation of the embedded layout, not
// something this layer papers over.
type CommentController struct {
	db db2.PostDatabase
}

func NewCommentController(db db2.PostDatabase) *CommentController {
	return &CommentController{db}
}

type AddCommentReq struct {
	Content     string `json:"content"`
	Author      string `json:"author"`
	UserId      string `json:"userId"`
	IsAnonymous bool   `json:"isAnonymous"`
}

type EditCommentReq struct {
	Content     string `json:"content"`
	Author      string `json:"author"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// AddComment appends a comment with a locally generated id and returns
// the whole updated post.
func (cc *CommentController) AddComment(ctx context.Context, postId string, req *AddCommentReq) (*model.Post, *util.HTTPError) {
	post, err := cc.db.GetPostById(ctx, postId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	author := req.Author
	if author == "" {
		author = model.AnonymousAuthor
	}
	comment := model.Comment{
		Id:          util.CommentId(),
		Content:     util.XSSSanitize(req.Content),
		Author:      author,
		UserId:      req.UserId,
		IsAnonymous: req.IsAnonymous,
		CreatedAt:   time.Now().UTC(),
	}
	updated, err := cc.db.ReplaceComments(ctx, postId, append(post.Comments, comment))
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return updated, nil
}

// EditComment replaces the comment's content fields in place and
// stamps the edit time. Only the true owner may edit; there is no
// token fallback and no admin bypass for edits.
func (cc *CommentController) EditComment(ctx context.Context, postId, commentId string, actor policy.Actor, req *EditCommentReq) (*model.Post, *util.HTTPError) {
	post, err := cc.db.GetPostById(ctx, postId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	idx := post.FindComment(commentId)
	if idx < 0 {
		return nil, util.BuildNotFoundHTTPErr("comment")
	}
	if policy.CanEditComment(actor, post.Comments[idx].UserId) != policy.Allowed {
		return nil, util.BuildUnauthorizedHTTPErr()
	}

	now := time.Now().UTC()
	comments := append([]model.Comment{}, post.Comments...)
	comments[idx].Content = util.XSSSanitize(req.Content)
	comments[idx].Author = req.Author
	comments[idx].IsAnonymous = req.IsAnonymous
	comments[idx].EditedAt = &now

	updated, err := cc.db.ReplaceComments(ctx, postId, comments)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return updated, nil
}

// DeleteComment filters the comment out of the list. Owner or admin.
func (cc *CommentController) DeleteComment(ctx context.Context, postId, commentId string, actor policy.Actor) (*model.Post, *util.HTTPError) {
	post, err := cc.db.GetPostById(ctx, postId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	idx := post.FindComment(commentId)
	if idx < 0 {
		return nil, util.BuildNotFoundHTTPErr("comment")
	}
	if policy.CanDeleteComment(actor, post.Comments[idx].UserId) != policy.Allowed {
		return nil, util.BuildUnauthorizedHTTPErr()
	}

	comments := make([]model.Comment, 0, len(post.Comments)-1)
	for _, comment := range post.Comments {
		if comment.Id != commentId {
			comments = append(comments, comment)
		}
	}
	updated, err := cc.db.ReplaceComments(ctx, postId, comments)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return updated, nil
}
