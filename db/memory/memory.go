// Package memory implements db.Database in process. It backs the unit
// tests and lets the server come up without firestore credentials for
// local development. Data is gone when the process exits.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/model"
)

type MemoryDB struct {
	mu     sync.Mutex
	seq    int64
	posts  map[string]*postRecord
	admins map[string]*model.AdminAccount
}

type postRecord struct {
	post *model.Post
	seq  int64
}

func GetDatabase() *MemoryDB {
	return &MemoryDB{
		posts:  make(map[string]*postRecord),
		admins: make(map[string]*model.AdminAccount),
	}
}

func (mdb *MemoryDB) Close() error {
	return nil
}

// clonePost keeps callers from mutating stored state through shared
// slices.
func clonePost(p *model.Post) *model.Post {
	clone := *p
	clone.LikedUserIds = append([]string{}, p.LikedUserIds...)
	clone.Comments = append([]model.Comment{}, p.Comments...)
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		clone.UpdatedAt = &t
	}
	if p.PinnedAt != nil {
		t := *p.PinnedAt
		clone.PinnedAt = &t
	}
	return &clone
}

func (mdb *MemoryDB) GetPosts(ctx context.Context, category model.Category) ([]*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	records := make([]*postRecord, 0, len(mdb.posts))
	for _, record := range mdb.posts {
		if category != "" && record.post.Category != category {
			continue
		}
		records = append(records, record)
	}
	// newest first; insertion order breaks creation-time ties
	sort.Slice(records, func(i, j int) bool {
		if !records[i].post.CreatedAt.Equal(records[j].post.CreatedAt) {
			return records[i].post.CreatedAt.After(records[j].post.CreatedAt)
		}
		return records[i].seq > records[j].seq
	})

	posts := make([]*model.Post, len(records))
	for i, record := range records {
		posts[i] = clonePost(record.post)
	}
	return posts, nil
}

func (mdb *MemoryDB) GetPostById(ctx context.Context, id string) (*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	record, ok := mdb.posts[id]
	if !ok {
		return nil, db2.ErrNotFound
	}
	return clonePost(record.post), nil
}

func (mdb *MemoryDB) CreatePost(ctx context.Context, req *db2.CreatePost) (*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	mdb.seq++
	post := &model.Post{
		Id:           "post-" + strconv.FormatInt(mdb.seq, 10),
		Title:        req.Title,
		Content:      req.Content,
		Category:     req.Category,
		Author:       req.Author,
		HiddenUserId: req.HiddenUserId,
		Token:        req.Token,
		Link:         req.Link,
		MediaUrl:     req.MediaUrl,
		MediaType:    req.MediaType,
		Likes:        0,
		LikedUserIds: []string{},
		Comments:     []model.Comment{},
		CreatedAt:    time.Now().UTC(),
	}
	mdb.posts[post.Id] = &postRecord{post: post, seq: mdb.seq}
	return clonePost(post), nil
}

func (mdb *MemoryDB) UpdatePost(ctx context.Context, id string, req *db2.UpdatePost) (*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	record, ok := mdb.posts[id]
	if !ok {
		return nil, db2.ErrNotFound
	}
	post := record.post
	post.Title = req.Title
	post.Content = req.Content
	post.Category = req.Category
	post.Link = req.Link
	if req.MediaUrl != "" {
		post.MediaUrl = req.MediaUrl
		post.MediaType = req.MediaType
	}
	if req.HiddenUserId != "" {
		post.HiddenUserId = req.HiddenUserId
	}
	now := time.Now().UTC()
	post.UpdatedAt = &now
	return clonePost(post), nil
}

func (mdb *MemoryDB) DeletePost(ctx context.Context, id string) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	if _, ok := mdb.posts[id]; !ok {
		return db2.ErrNotFound
	}
	delete(mdb.posts, id)
	return nil
}

func (mdb *MemoryDB) ToggleLike(ctx context.Context, id, userId string) (*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	record, ok := mdb.posts[id]
	if !ok {
		return nil, db2.ErrNotFound
	}
	post := record.post
	if post.LikedBy(userId) {
		liked := post.LikedUserIds[:0]
		for _, likedId := range post.LikedUserIds {
			if likedId != userId {
				liked = append(liked, likedId)
			}
		}
		post.LikedUserIds = liked
		if post.Likes > 0 {
			post.Likes--
		}
	} else {
		post.LikedUserIds = append(post.LikedUserIds, userId)
		post.Likes++
	}
	return clonePost(post), nil
}

func (mdb *MemoryDB) SetPinned(ctx context.Context, id string, pinned bool, pinnedAt time.Time) (*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	record, ok := mdb.posts[id]
	if !ok {
		return nil, db2.ErrNotFound
	}
	post := record.post
	post.IsPinned = pinned
	if pinned {
		t := pinnedAt.UTC()
		post.PinnedAt = &t
	} else {
		post.PinnedAt = nil
	}
	return clonePost(post), nil
}

func (mdb *MemoryDB) ReplaceComments(ctx context.Context, id string, comments []model.Comment) (*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	record, ok := mdb.posts[id]
	if !ok {
		return nil, db2.ErrNotFound
	}
	record.post.Comments = append([]model.Comment{}, comments...)
	return clonePost(record.post), nil
}

func (mdb *MemoryDB) GetAdmins(ctx context.Context) ([]*model.AdminAccount, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	admins := make([]*model.AdminAccount, 0, len(mdb.admins))
	for _, admin := range mdb.admins {
		clone := *admin
		admins = append(admins, &clone)
	}
	sort.Slice(admins, func(i, j int) bool {
		return admins[i].CreatedAt.Before(admins[j].CreatedAt)
	})
	return admins, nil
}

func (mdb *MemoryDB) GetAdmin(ctx context.Context, id string) (*model.AdminAccount, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	admin, ok := mdb.admins[id]
	if !ok {
		return nil, db2.ErrNotFound
	}
	clone := *admin
	return &clone, nil
}

func (mdb *MemoryDB) CreateAdmin(ctx context.Context, req *db2.CreateAdmin) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	if _, ok := mdb.admins[req.Id]; ok {
		return db2.ErrDuplicateId
	}
	mdb.admins[req.Id] = &model.AdminAccount{
		Id:           req.Id,
		Name:         req.Name,
		PasswordHash: req.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	return nil
}

func (mdb *MemoryDB) DeleteAdmin(ctx context.Context, id string) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	if _, ok := mdb.admins[id]; !ok {
		return db2.ErrNotFound
	}
	delete(mdb.admins, id)
	return nil
}

func (mdb *MemoryDB) SetAdminPassword(ctx context.Context, id, passwordHash string) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	admin, ok := mdb.admins[id]
	if !ok {
		return db2.ErrNotFound
	}
	admin.PasswordHash = passwordHash
	return nil
}
