package entity

import (
	"github.com/google/uuid"
)

const (
	ReviewScoreMin = 1
	ReviewScoreMax = 10
)

// Review of a title. One review per (title, author), enforced by a unique
// constraint. CreatedAt is the publish timestamp and never changes.
type Review struct {
	BaseSimple
	Authored
	TitleID uuid.UUID `db:"title_id"`
	Text    string    `db:"text"`
	Score   int       `db:"score"`
}
