package response

import (
	"time"

	"media-catalog/internal/data/entity"
)

type TitleResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Year        int               `json:"year"`
	Description *string           `json:"description,omitempty"`
	Rating      *int              `json:"rating"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Genres      []GenreResponse   `json:"genre"`
	CreatedAt   time.Time         `json:"created_at"`
}

func TitleToResponse(title *entity.Title, category *entity.Category, genres []*entity.Genre) TitleResponse {
	resp := TitleResponse{
		ID:          title.ID.String(),
		Name:        title.Name,
		Year:        title.Year,
		Description: title.Description,
		Rating:      title.Rating,
		Genres:      GenresToResponse(genres),
		CreatedAt:   title.CreatedAt,
	}

	if category != nil {
		cat := CategoryToResponse(category)
		resp.Category = &cat
	}

	return resp
}
