package request

// Rating is absent on purpose: it is derived from review scores and never
// accepted from clients.
type CreateTitleRequest struct {
	Name        string   `json:"name" validate:"required,max=256"`
	Year        int      `json:"year" validate:"required"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,slug"`
	Genres      []string `json:"genre,omitempty" validate:"omitempty,dive,slug"`
}

type UpdateTitleRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=256"`
	Year        *int     `json:"year,omitempty"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,slug"`
	Genres      []string `json:"genre,omitempty" validate:"omitempty,dive,slug"`
}
