package dto

type CreateCommentReq struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

type UpdateCommentReq struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

type ListCommentsResp[T any] struct {
	Comments   []T   `json:"comments"`
	TotalCount int64 `json:"totalCount"`
}
