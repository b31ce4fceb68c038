package dto

type FavoriteResp struct {
	EstateID   string `json:"estateId"   example:"68bd8d30b98a8dce0eab0db6"`
	IsFavorite bool   `json:"isFavorite"`
}

type CanFavoriteResp struct {
	CanFavorite bool `json:"canFavorite"`
}
