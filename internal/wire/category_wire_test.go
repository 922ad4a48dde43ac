package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"media-catalog/internal/adaptor"
	"media-catalog/internal/dto/request"
	"media-catalog/internal/dto/response"
	"media-catalog/pkg/token"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCategoryService struct{}

func (stubCategoryService) Create(_ context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	return &response.CategoryResponse{Name: req.Name, Slug: req.Slug}, nil
}

func (stubCategoryService) List(_ context.Context, _ *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	return response.NewPaginatedResponse([]response.CategoryResponse{}, 1, 10, 0), nil
}

func (stubCategoryService) DeleteBySlug(_ context.Context, _ string) error {
	return nil
}

func newCategoryRouter(t *testing.T) (*chi.Mux, *token.Manager) {
	t.Helper()
	logger := zap.NewNop()
	tokens := token.NewManager("test-secret", 1)
	handler := adaptor.NewCategoryHandler(stubCategoryService{}, logger)

	r := chi.NewRouter()
	wireCategory(r, handler, tokens, logger)
	return r, tokens
}

func TestCategoryWriteRequiresAdmin(t *testing.T) {
	r, tokens := newCategoryRouter(t)
	body := `{"name":"Movies","slug":"movies"}`

	// Plain user is turned away.
	userToken, err := tokens.Mint(uuid.New(), "alice", "user", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Moderators manage content, not the catalog.
	modToken, err := tokens.Mint(uuid.New(), "mod", "moderator", false)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+modToken)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, err := tokens.Mint(uuid.New(), "boss", "admin", false)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// A superuser passes regardless of role.
	superToken, err := tokens.Mint(uuid.New(), "root", "user", true)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/categories/movies", nil)
	req.Header.Set("Authorization", "Bearer "+superToken)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCategoryListIsPublic(t *testing.T) {
	r, _ := newCategoryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
