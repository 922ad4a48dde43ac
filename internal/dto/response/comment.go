package response

import (
	"time"

	"media-catalog/internal/data/entity"
)

type CommentResponse struct {
	ID string `json:"id"`
	AuthorRef
	ReviewID string    `json:"review_id"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
}

func CommentToResponse(comment *entity.Comment, authorUsername string) CommentResponse {
	return CommentResponse{
		ID: comment.ID.String(),
		AuthorRef: AuthorRef{
			AuthorID:       comment.AuthorID.String(),
			AuthorUsername: authorUsername,
		},
		ReviewID: comment.ReviewID.String(),
		Text:     comment.Text,
		PubDate:  comment.CreatedAt,
	}
}
