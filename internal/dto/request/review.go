package request

type CreateReviewRequest struct {
	Text  string `json:"text" validate:"required,max=5000"`
	Score int    `json:"score" validate:"required,min=1,max=10"`
}

// UpdateReviewRequest is PATCH-only; full replacement is rejected at the
// routing level. Score presence decides whether the rating is recomputed.
type UpdateReviewRequest struct {
	Text  *string `json:"text,omitempty" validate:"omitempty,max=5000"`
	Score *int    `json:"score,omitempty" validate:"omitempty,min=1,max=10"`
}
