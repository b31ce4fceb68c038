package dto

// ===== Request =====
// Images arrive as multipart files alongside this form payload.
type CreateEstateDTO struct {
	Title       string  `json:"title"       form:"title"       validate:"required"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price"       form:"price"       validate:"required,gt=0"`
}

type UpdateEstateDTO struct {
	Title       *string  `json:"title,omitempty"       form:"title"`
	Description *string  `json:"description,omitempty" form:"description"`
	Price       *float64 `json:"price,omitempty"       form:"price"`
}

// ===== Success Response =====
type PagedEstatesResp[T any] struct {
	Items       []T   `json:"items"`
	TotalLength int64 `json:"totalLength"`
}
