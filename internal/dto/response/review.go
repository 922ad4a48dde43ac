package response

import (
	"time"

	"media-catalog/internal/data/entity"
)

type ReviewResponse struct {
	ID string `json:"id"`
	AuthorRef
	TitleID string    `json:"title_id"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func ReviewToResponse(review *entity.Review, authorUsername string) ReviewResponse {
	return ReviewResponse{
		ID: review.ID.String(),
		AuthorRef: AuthorRef{
			AuthorID:       review.AuthorID.String(),
			AuthorUsername: authorUsername,
		},
		TitleID: review.TitleID.String(),
		Text:    review.Text,
		Score:   review.Score,
		PubDate: review.CreatedAt,
	}
}
