package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID        bson.ObjectID  `json:"id"        bson:"_id,omitempty"`
	Title     string         `json:"title"     bson:"title"`
	Content   string         `json:"content"   bson:"content"`
	AuthorID  bson.ObjectID  `json:"authorId"  bson:"author_id"`
	EstateID  *bson.ObjectID `json:"estateId,omitempty" bson:"estate_id,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updated_at"`

	CommentIDs []bson.ObjectID `json:"commentIds" bson:"comment_ids"`
}
