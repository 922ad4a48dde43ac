package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"media-catalog/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseErrorStatusByKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.Validation("Validation failed", nil), http.StatusBadRequest},
		{"not found", apperr.New(apperr.KindNotFound, "gone"), http.StatusNotFound},
		{"conflict", apperr.New(apperr.KindConflict, "taken"), http.StatusConflict},
		{"authentication", apperr.New(apperr.KindAuthentication, "bad code"), http.StatusUnauthorized},
		{"forbidden", apperr.New(apperr.KindForbidden, "not yours"), http.StatusForbidden},
		{"method not allowed", apperr.New(apperr.KindMethodNotAllowed, "no PUT"), http.StatusMethodNotAllowed},
		{"delivery", apperr.New(apperr.KindDelivery, "smtp down"), http.StatusBadGateway},
		{"internal", apperr.Wrap(apperr.KindInternal, "boom", errors.New("cause")), http.StatusInternalServerError},
		{"plain error", errors.New("anything"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ResponseError(rec, tt.err)

			assert.Equal(t, tt.want, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Status)
		})
	}
}

func TestResponseErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseError(rec, apperr.Wrap(apperr.KindInternal, "failed to list titles", errors.New("dsn=secret")))

	assert.NotContains(t, rec.Body.String(), "secret")
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestResponseErrorCarriesValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseError(rec, apperr.Validation("Validation failed", map[string]string{
		"Year": "must not be in the future",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must not be in the future")
}

func TestResponseNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseNoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
