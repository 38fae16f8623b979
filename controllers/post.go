package controllers

import (
	"context"
	"time"

	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/model"
	"github.com/inquirylab/inquiry-board-be/policy"
	"github.com/inquirylab/inquiry-board-be/util"
)

type PostController struct {
	db db2.PostDatabase
}

func NewPostController(db db2.PostDatabase) *PostController {
	return &PostController{db}
}

type CreatePostReq struct {
	Title        string          `json:"title"`
	Content      string          `json:"content"`
	Category     model.Category  `json:"category"`
	Author       string          `json:"author"`
	HiddenUserId string          `json:"hiddenUserId"`
	Link         string          `json:"link"`
	MediaUrl     string          `json:"mediaUrl"`
	MediaType    model.MediaType `json:"mediaType"`
}

type UpdatePostReq struct {
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Category  model.Category  `json:"category"`
	Link      string          `json:"link"`
	MediaUrl  string          `json:"mediaUrl"`
	MediaType model.MediaType `json:"mediaType"`
}

func (pc *PostController) ListPosts(ctx context.Context, category model.Category) ([]*model.Post, *util.HTTPError) {
	if category != "" && !category.IsValid() {
		return nil, util.BuildBadRequestHTTPErr("unknown category")
	}
	posts, err := pc.db.GetPosts(ctx, category)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return posts, nil
}

func (pc *PostController) GetPost(ctx context.Context, id string) (*model.Post, *util.HTTPError) {
	post, err := pc.db.GetPostById(ctx, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return post, nil
}

func validatePostFields(title, content string, category model.Category) *util.HTTPError {
	if title == "" {
		return util.BuildBadRequestHTTPErr("title is required")
	}
	if content == "" {
		return util.BuildBadRequestHTTPErr("content is required")
	}
	if category == "" {
		return util.BuildBadRequestHTTPErr("category is required")
	}
	if !category.IsValid() {
		return util.BuildBadRequestHTTPErr("unknown category")
	}
	return nil
}

// CreatePost validates the required fields, stamps a fresh edit token
// and defaults the optional ones. The stored post comes back with its
// assigned id so the caller can render it immediately.
func (pc *PostController) CreatePost(ctx context.Context, req *CreatePostReq) (*model.Post, *util.HTTPError) {
	if httpErr := validatePostFields(req.Title, req.Content, req.Category); httpErr != nil {
		return nil, httpErr
	}
	author := req.Author
	if author == "" {
		author = model.AnonymousAuthor
	}
	mediaType := req.MediaType
	if req.MediaUrl == "" {
		mediaType = model.MediaTypeNone
	} else if !mediaType.IsValid() || mediaType == model.MediaTypeNone {
		return nil, util.BuildBadRequestHTTPErr("mediaType must be image or video")
	}

	post, err := pc.db.CreatePost(ctx, &db2.CreatePost{
		Title:        util.XSSSanitize(req.Title),
		Content:      util.XSSSanitize(req.Content),
		Category:     req.Category,
		Author:       author,
		HiddenUserId: req.HiddenUserId,
		Token:        util.EditToken(),
		Link:         req.Link,
		MediaUrl:     req.MediaUrl,
		MediaType:    mediaType,
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return post, nil
}

// UpdatePost re-reads the post, lets policy decide on the actor's
// dual credentials, then merges the patch. The hidden user id is only
// backfilled onto legacy posts that never had one.
func (pc *PostController) UpdatePost(ctx context.Context, id string, actor policy.Actor, req *UpdatePostReq) (*model.Post, *util.HTTPError) {
	post, err := pc.db.GetPostById(ctx, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if policy.CanEditPost(actor, post.HiddenUserId, post.Token) != policy.Allowed {
		return nil, util.BuildUnauthorizedHTTPErr()
	}
	if httpErr := validatePostFields(req.Title, req.Content, req.Category); httpErr != nil {
		return nil, httpErr
	}

	patch := &db2.UpdatePost{
		Title:     util.XSSSanitize(req.Title),
		Content:   util.XSSSanitize(req.Content),
		Category:  req.Category,
		Link:      req.Link,
		MediaUrl:  req.MediaUrl,
		MediaType: req.MediaType,
	}
	if post.HiddenUserId == "" {
		patch.HiddenUserId = actor.UserId
	}
	updated, err := pc.db.UpdatePost(ctx, id, patch)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return updated, nil
}

// DeletePost removes the post and, by embedding, every comment on it.
// Admins bypass ownership; everyone else needs the hidden id or the
// legacy token.
func (pc *PostController) DeletePost(ctx context.Context, id string, actor policy.Actor) *util.HTTPError {
	post, err := pc.db.GetPostById(ctx, id)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if policy.CanDeletePost(actor, post.HiddenUserId, post.Token) != policy.Allowed {
		return util.BuildUnauthorizedHTTPErr()
	}
	if err := pc.db.DeletePost(ctx, id); err != nil {
		return util.BuildDbHTTPErr(err)
	}
	return nil
}

func (pc *PostController) ToggleLike(ctx context.Context, id, userId string) (*model.Post, *util.HTTPError) {
	if userId == "" {
		return nil, util.BuildBadRequestHTTPErr("userId is required")
	}
	post, err := pc.db.ToggleLike(ctx, id, userId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return post, nil
}

// TogglePin flips the pinned flag. The admin check happens here, on
// the resolved actor; pinning has no ownership dimension.
func (pc *PostController) TogglePin(ctx context.Context, id string, actor policy.Actor) (*model.Post, *util.HTTPError) {
	if !actor.IsAdmin {
		return nil, util.BuildUnauthorizedHTTPErr()
	}
	post, err := pc.db.GetPostById(ctx, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	updated, err := pc.db.SetPinned(ctx, id, !post.IsPinned, time.Now().UTC())
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return updated, nil
}
