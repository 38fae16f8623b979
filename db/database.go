package db

import (
	"context"
	"time"

	"github.com/inquirylab/inquiry-board-be/model"
)

type Database interface {
	PostDatabase
	AdminDatabase
	Close() error
}

type CreatePost struct {
	Title        string
	Content      string
	Category     model.Category
	Author       string
	HiddenUserId string
	Token        string
	Link         string
	MediaUrl     string
	MediaType    model.MediaType
}

// UpdatePost carries the patch fields of a post edit. Empty media
// fields leave the stored media untouched. HiddenUserId is only
// applied when the stored post has none (legacy backfill); an existing
// hidden id is never overwritten.
type UpdatePost struct {
	Title        string
	Content      string
	Category     model.Category
	Link         string
	MediaUrl     string
	MediaType    model.MediaType
	HiddenUserId string
}

type PostDatabase interface {
	// GetPosts returns posts ordered by creation time, newest first.
	// An empty category returns the whole collection.
	GetPosts(ctx context.Context, category model.Category) ([]*model.Post, error)
	GetPostById(ctx context.Context, id string) (*model.Post, error)
	CreatePost(ctx context.Context, req *CreatePost) (*model.Post, error)
	UpdatePost(ctx context.Context, id string, req *UpdatePost) (*model.Post, error)
	DeletePost(ctx context.Context, id string) error
	// ToggleLike adds userId to the liked set (incrementing the like
	// count) or removes it (decrementing, floored at zero). The
	// mutation is atomic at the document level: concurrent togglers on
	// the same post never desync likes from the liked set.
	ToggleLike(ctx context.Context, id, userId string) (*model.Post, error)
	SetPinned(ctx context.Context, id string, pinned bool, pinnedAt time.Time) (*model.Post, error)
	// ReplaceComments rewrites the embedded comment list wholesale.
	// Last writer wins under concurrent rewrites.
	ReplaceComments(ctx context.Context, id string, comments []model.Comment) (*model.Post, error)
}

type CreateAdmin struct {
	Id           string
	Name         string
	PasswordHash string
}

type AdminDatabase interface {
	GetAdmins(ctx context.Context) ([]*model.AdminAccount, error)
	GetAdmin(ctx context.Context, id string) (*model.AdminAccount, error)
	CreateAdmin(ctx context.Context, req *CreateAdmin) error
	DeleteAdmin(ctx context.Context, id string) error
	SetAdminPassword(ctx context.Context, id, passwordHash string) error
}
