package dto

// ===== Request =====
type CreatePostDTO struct {
	Title    string `json:"title"   validate:"required"`
	Content  string `json:"content" validate:"required"`
	EstateID string `json:"estateId,omitempty"`
}

type UpdatePostDTO struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// ===== Response =====
type PagedPostsResp[T any] struct {
	Items       []T   `json:"items"`
	TotalLength int64 `json:"totalLength"`
}
