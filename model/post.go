package model

import (
	"time"
)

type Category string

const (
	CategoryIntro      Category = "intro"
	CategoryDesign     Category = "design"
	CategoryTrial      Category = "trial"
	CategoryResult     Category = "result"
	CategoryFeedback   Category = "feedback"
	CategoryHumanities Category = "humanities"
	CategoryScience    Category = "science"
	CategoryFusion     Category = "fusion"
)

var categories = map[Category]bool{
	CategoryIntro:      true,
	CategoryDesign:     true,
	CategoryTrial:      true,
	CategoryResult:     true,
	CategoryFeedback:   true,
	CategoryHumanities: true,
	CategoryScience:    true,
	CategoryFusion:     true,
}

func (c Category) IsValid() bool {
	return categories[c]
}

type MediaType string

const (
	MediaTypeNone  MediaType = "none"
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

func (mt MediaType) IsValid() bool {
	return mt == MediaTypeNone || mt == MediaTypeImage || mt == MediaTypeVideo
}

// AnonymousAuthor is the display name stored for posts and comments
// written without a chosen author name.
const AnonymousAuthor = "anonymous"

// Comment lives embedded in its parent post document. Its id is only
// unique within that post.
type Comment struct {
	Id          string     `firestore:"id" json:"id"`
	Content     string     `firestore:"content" json:"content"`
	Author      string     `firestore:"author" json:"author"`
	UserId      string     `firestore:"userId" json:"userId"`
	IsAnonymous bool       `firestore:"isAnonymous" json:"isAnonymous"`
	CreatedAt   time.Time  `firestore:"createdAt" json:"createdAt"`
	EditedAt    *time.Time `firestore:"editedAt,omitempty" json:"editedAt,omitempty"`
}

// Post is a single board document. Comments are embedded rather than
// stored as separate documents: the board never reads comments outside
// their post, so one fetch returns the whole thread.
//
// HiddenUserId is the true ownership key and never changes once set.
// Token is the legacy edit credential issued at creation, kept so
// posts written before hidden-id tracking stay editable.
type Post struct {
	Id           string     `firestore:"-" json:"id"`
	Title        string     `firestore:"title" json:"title"`
	Content      string     `firestore:"content" json:"content"`
	Category     Category   `firestore:"category" json:"category"`
	Author       string     `firestore:"author" json:"author"`
	HiddenUserId string     `firestore:"hiddenUserId" json:"hiddenUserId"`
	Token        string     `firestore:"token" json:"token"`
	Link         string     `firestore:"link" json:"link"`
	MediaUrl     string     `firestore:"mediaUrl" json:"mediaUrl"`
	MediaType    MediaType  `firestore:"mediaType" json:"mediaType"`
	Likes        int        `firestore:"likes" json:"likes"`
	LikedUserIds []string   `firestore:"likedUserIds" json:"likedUserIds"`
	Comments     []Comment  `firestore:"comments" json:"comments"`
	CreatedAt    time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    *time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	IsPinned     bool       `firestore:"isPinned" json:"isPinned"`
	PinnedAt     *time.Time `firestore:"pinnedAt,omitempty" json:"pinnedAt,omitempty"`
}

func (p *Post) LikedBy(userId string) bool {
	for _, id := range p.LikedUserIds {
		if id == userId {
			return true
		}
	}
	return false
}

// FindComment returns the index of the comment with the given id, or
// -1 if the post has no such comment.
func (p *Post) FindComment(commentId string) int {
	for i, comment := range p.Comments {
		if comment.Id == commentId {
			return i
		}
	}
	return -1
}
