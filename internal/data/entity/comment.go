package entity

import (
	"github.com/google/uuid"
)

type Comment struct {
	BaseSimple
	Authored
	ReviewID uuid.UUID `db:"review_id"`
	Text     string    `db:"text"`
}
