package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment lives embedded inside its post; it has no collection of its own.
type Comment struct {
	ID        bson.ObjectID `json:"_id"       bson:"_id"`
	UserID    bson.ObjectID `json:"user"      bson:"user"`
	Text      string        `json:"text"      bson:"text"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}

// Post keeps both the like counter and the liker set. The two are only
// ever written together, in a single document update, so
// Likes == len(Liked) holds after every operation.
type Post struct {
	ID          bson.ObjectID   `json:"_id"              bson:"_id,omitempty"`
	Title       string          `json:"title"            bson:"title"`
	Description string          `json:"discription"      bson:"discription"` // field name kept from the existing wire contract
	Photo       string          `json:"photo,omitempty"  bson:"photo,omitempty"`
	Video       string          `json:"video,omitempty"  bson:"video,omitempty"`
	Likes       int             `json:"likes"            bson:"likes"`
	Liked       []bson.ObjectID `json:"liked"            bson:"liked"`
	Comments    []Comment       `json:"comments"         bson:"comments"`
	UserID      bson.ObjectID   `json:"user"             bson:"user"`
	CreatedAt   time.Time       `json:"createdAt"        bson:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"        bson:"updatedAt"`
}

// HasLiked reports membership of uid in the liker set.
func (p Post) HasLiked(uid bson.ObjectID) bool {
	for _, id := range p.Liked {
		if id == uid {
			return true
		}
	}
	return false
}
