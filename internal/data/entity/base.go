package entity

import (
	"time"

	"github.com/google/uuid"
)

type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

// Authored marks a record that carries an author reference. Review and
// Comment compose it instead of repeating the field.
type Authored struct {
	AuthorID uuid.UUID `db:"author_id"`
}
