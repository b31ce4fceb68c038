package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           bson.ObjectID `json:"id"       bson:"_id,omitempty"`
	Username     string        `json:"username" bson:"username"`
	Email        string        `json:"email"    bson:"email"`
	PasswordHash string        `json:"-"        bson:"password_hash"`
	Role         string        `json:"role"     bson:"role"`
	CreatedAt    time.Time     `json:"createdAt" bson:"created_at"`

	// Mirror sides of every relationship this user participates in.
	PostIDs           []bson.ObjectID `json:"postIds"           bson:"post_ids"`
	CommentIDs        []bson.ObjectID `json:"commentIds"        bson:"comment_ids"`
	EstateIDs         []bson.ObjectID `json:"estateIds"         bson:"estate_ids"`
	FavoriteEstateIDs []bson.ObjectID `json:"favoriteEstateIds" bson:"favorite_estate_ids"`
}

func (u *User) HasFavorite(estateID bson.ObjectID) bool {
	for _, id := range u.FavoriteEstateIDs {
		if id == estateID {
			return true
		}
	}
	return false
}
