package dto

// ===== Request =====
type RegisterReq struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateUserDTO struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ===== Success Response =====
type LoginResp struct {
	AccessToken string `json:"accessToken"`
}

type UserResponse struct {
	ID                string   `json:"id"       example:"66c6248b98c56c39f018e7d2"`
	Username          string   `json:"username" example:"marko.p"`
	Email             string   `json:"email"    example:"marko@example.com"`
	Role              string   `json:"role"     example:"user"`
	PostIDs           []string `json:"postIds"`
	CommentIDs        []string `json:"commentIds"`
	EstateIDs         []string `json:"estateIds"`
	FavoriteEstateIDs []string `json:"favoriteEstateIds"`
}
