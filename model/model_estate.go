package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Estate struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	Price       float64       `json:"price"       bson:"price"`
	Images      []string      `json:"images"      bson:"images"`
	UserID      bson.ObjectID `json:"userId"      bson:"user_id"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updated_at"`

	PostIDs            []bson.ObjectID `json:"postIds"            bson:"post_ids"`
	FavoritedByUserIDs []bson.ObjectID `json:"favoritedByUsersIds" bson:"favorited_by_user_ids"`
}
