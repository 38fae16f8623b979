package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/model"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type PostDB struct {
	client *firestore.Client
}

func getPostDB(client *firestore.Client) *PostDB {
	return &PostDB{client}
}

func (pdb *PostDB) posts() *firestore.CollectionRef {
	return pdb.client.Collection(postsCollection)
}

func docToPost(doc *firestore.DocumentSnapshot) (*model.Post, error) {
	var post model.Post
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Wrap(err, "decode post document")
	}
	post.Id = doc.Ref.ID
	// Old documents may predate these fields.
	if post.LikedUserIds == nil {
		post.LikedUserIds = []string{}
	}
	if post.Comments == nil {
		post.Comments = []model.Comment{}
	}
	if post.MediaType == "" {
		post.MediaType = model.MediaTypeNone
	}
	return &post, nil
}

func (pdb *PostDB) GetPosts(ctx context.Context, category model.Category) ([]*model.Post, error) {
	q := pdb.posts().Query
	if category != "" {
		q = q.Where("category", "==", string(category))
	}
	iter := q.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	posts := []*model.Post{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr("list posts", err)
		}
		post, err := docToPost(doc)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (pdb *PostDB) GetPostById(ctx context.Context, id string) (*model.Post, error) {
	if id == "" {
		return nil, db2.ErrNotFound
	}
	doc, err := pdb.posts().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr("get post", err)
	}
	return docToPost(doc)
}

func (pdb *PostDB) CreatePost(ctx context.Context, req *db2.CreatePost) (*model.Post, error) {
	post := &model.Post{
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
	docRef, _, err := pdb.posts().Add(ctx, post)
	if err != nil {
		return nil, mapErr("create post", err)
	}
	post.Id = docRef.ID
	return post, nil
}

func (pdb *PostDB) UpdatePost(ctx context.Context, id string, req *db2.UpdatePost) (*model.Post, error) {
	if id == "" {
		return nil, db2.ErrNotFound
	}
	updates := []firestore.Update{
		{Path: "title", Value: req.Title},
		{Path: "content", Value: req.Content},
		{Path: "category", Value: string(req.Category)},
		{Path: "link", Value: req.Link},
		{Path: "updatedAt", Value: time.Now().UTC()},
	}
	if req.MediaUrl != "" {
		updates = append(updates,
			firestore.Update{Path: "mediaUrl", Value: req.MediaUrl},
			firestore.Update{Path: "mediaType", Value: string(req.MediaType)})
	}
	if req.HiddenUserId != "" {
		updates = append(updates, firestore.Update{Path: "hiddenUserId", Value: req.HiddenUserId})
	}
	if _, err := pdb.posts().Doc(id).Update(ctx, updates); err != nil {
		return nil, mapErr("update post", err)
	}
	return pdb.GetPostById(ctx, id)
}

func (pdb *PostDB) DeletePost(ctx context.Context, id string) error {
	if id == "" {
		return db2.ErrNotFound
	}
	if _, err := pdb.posts().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return mapErr("delete post", err)
	}
	return nil
}

// ToggleLike runs in a transaction: the read decides the direction,
// the write uses the store's atomic array and counter primitives so
// likes and likedUserIds cannot drift apart under concurrent togglers.
func (pdb *PostDB) ToggleLike(ctx context.Context, id, userId string) (*model.Post, error) {
	if id == "" {
		return nil, db2.ErrNotFound
	}
	ref := pdb.posts().Doc(id)
	err := pdb.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		post, err := docToPost(doc)
		if err != nil {
			return err
		}
		if post.LikedBy(userId) {
			delta := -1
			if post.Likes <= 0 {
				// never below zero, even if the count already drifted
				delta = 0
			}
			return tx.Update(ref, []firestore.Update{
				{Path: "likedUserIds", Value: firestore.ArrayRemove(userId)},
				{Path: "likes", Value: firestore.Increment(delta)},
			})
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "likedUserIds", Value: firestore.ArrayUnion(userId)},
			{Path: "likes", Value: firestore.Increment(1)},
		})
	})
	if err != nil {
		return nil, mapErr("toggle like", err)
	}
	return pdb.GetPostById(ctx, id)
}

func (pdb *PostDB) SetPinned(ctx context.Context, id string, pinned bool, pinnedAt time.Time) (*model.Post, error) {
	if id == "" {
		return nil, db2.ErrNotFound
	}
	updates := []firestore.Update{
		{Path: "isPinned", Value: pinned},
	}
	if pinned {
		updates = append(updates, firestore.Update{Path: "pinnedAt", Value: pinnedAt.UTC()})
	} else {
		updates = append(updates, firestore.Update{Path: "pinnedAt", Value: firestore.Delete})
	}
	if _, err := pdb.posts().Doc(id).Update(ctx, updates); err != nil {
		return nil, mapErr("set pinned", err)
	}
	return pdb.GetPostById(ctx, id)
}

func (pdb *PostDB) ReplaceComments(ctx context.Context, id string, comments []model.Comment) (*model.Post, error) {
	if id == "" {
		return nil, db2.ErrNotFound
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	if _, err := pdb.posts().Doc(id).Update(ctx, []firestore.Update{
		{Path: "comments", Value: comments},
	}); err != nil {
		return nil, mapErr("replace comments", err)
	}
	return pdb.GetPostById(ctx, id)
}
