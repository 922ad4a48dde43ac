package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type slugFixture struct {
	Slug string `validate:"required,slug,max=50"`
}

func TestValidateStructSlug(t *testing.T) {
	for _, slug := range []string{"movies", "sci-fi", "Top_10", "2024"} {
		assert.Empty(t, ValidateStruct(slugFixture{Slug: slug}), "slug %q should pass", slug)
	}

	for _, slug := range []string{"", "no spaces", "café", "a/b", "dot.dot"} {
		errs := ValidateStruct(slugFixture{Slug: slug})
		assert.Contains(t, errs, "Slug", "slug %q should fail", slug)
	}
}

type boundsFixture struct {
	Score int `validate:"required,min=1,max=10"`
}

func TestValidateStructBounds(t *testing.T) {
	assert.Empty(t, ValidateStruct(boundsFixture{Score: 1}))
	assert.Empty(t, ValidateStruct(boundsFixture{Score: 10}))
	assert.Contains(t, ValidateStruct(boundsFixture{Score: 0}), "Score")
	assert.Contains(t, ValidateStruct(boundsFixture{Score: 11}), "Score")
}
