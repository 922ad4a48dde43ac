package entity

import (
	"github.com/google/uuid"
)

type Title struct {
	Base
	Name        string  `db:"name"`
	Year        int     `db:"year"`
	Description *string `db:"description"`
	// Rating is derived from review scores by the rating recomputation and
	// is never written from client input. Nil until the first recompute.
	Rating     *int       `db:"rating"`
	CategoryID *uuid.UUID `db:"category_id"`
}
