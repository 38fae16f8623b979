// Package app derives board views from the raw post list. The board
// fetches the whole collection once and computes category filtering,
// the pinned partition and pagination locally; the store is only asked
// for the ordered scan.
package app

import (
	"context"
	"sort"

	"github.com/inquirylab/inquiry-board-be/config"
	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/model"
)

type BoardQuery struct {
	// Category filters both the pinned and unpinned partitions; empty
	// means all categories.
	Category model.Category
	// Page is 1-based and applies to the unpinned partition only.
	// Out-of-range pages clamp.
	Page int
	// LikedBy restricts the board to posts the given user has liked.
	LikedBy string
}

type BoardPage struct {
	// Pinned posts render ahead of every page, newest pin first.
	Pinned     []*model.Post `json:"pinned"`
	Posts      []*model.Post `json:"posts"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	TotalPosts int           `json:"totalPosts"`
}

func pinTime(post *model.Post) int64 {
	if post.PinnedAt == nil {
		return 0
	}
	return post.PinnedAt.UnixNano()
}

// GetBoardPage builds one board page for the query.
func GetBoardPage(ctx context.Context, database db2.PostDatabase, query *BoardQuery) (*BoardPage, error) {
	posts, err := database.GetPosts(ctx, "")
	if err != nil {
		return nil, err
	}

	pinned := []*model.Post{}
	unpinned := []*model.Post{}
	for _, post := range posts {
		if query.Category != "" && post.Category != query.Category {
			continue
		}
		if query.LikedBy != "" && !post.LikedBy(query.LikedBy) {
			continue
		}
		if post.IsPinned {
			pinned = append(pinned, post)
		} else {
			unpinned = append(unpinned, post)
		}
	}
	sort.SliceStable(pinned, func(i, j int) bool {
		return pinTime(pinned[i]) > pinTime(pinned[j])
	})

	totalPosts := len(unpinned)
	totalPages := (totalPosts + config.PostsPerPage - 1) / config.PostsPerPage
	if totalPages == 0 {
		totalPages = 1
	}
	page := query.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * config.PostsPerPage
	end := start + config.PostsPerPage
	if start > totalPosts {
		start = totalPosts
	}
	if end > totalPosts {
		end = totalPosts
	}

	return &BoardPage{
		Pinned:     pinned,
		Posts:      unpinned[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalPosts: totalPosts,
	}, nil
}
