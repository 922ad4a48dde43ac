package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(New(KindNotFound, "gone")))
	assert.Equal(t, KindConflict, KindOf(Newf(KindConflict, "slug %s taken", "movies")))

	// Kind survives wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("outer: %w", New(KindForbidden, "no"))
	assert.Equal(t, KindForbidden, KindOf(wrapped))

	// Unknown errors default to internal.
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindInternal, "failed to list titles", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to list titles")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFieldsOf(t *testing.T) {
	fields := map[string]string{"Year": "must not be in the future"}
	err := Validation("Validation failed", fields)

	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, fields, FieldsOf(err))
	assert.Nil(t, FieldsOf(errors.New("plain")))
}
