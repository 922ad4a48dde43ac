package request

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type UpdateCommentRequest struct {
	Text *string `json:"text,omitempty" validate:"omitempty,max=2000"`
}
