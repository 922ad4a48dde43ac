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
	"media-catalog/internal/usecase"
	"media-catalog/pkg/token"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubReviewService struct{}

func (stubReviewService) Create(_ context.Context, _ string, _ usecase.Caller, _ *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	return &response.ReviewResponse{ID: uuid.NewString()}, nil
}

func (stubReviewService) GetByID(_ context.Context, _, _ string) (*response.ReviewResponse, error) {
	return &response.ReviewResponse{}, nil
}

func (stubReviewService) ListByTitle(_ context.Context, _ string, _ *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	return response.NewPaginatedResponse([]response.ReviewResponse{}, 1, 10, 0), nil
}

func (stubReviewService) Update(_ context.Context, _, _ string, _ usecase.Caller, _ *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	return &response.ReviewResponse{}, nil
}

func (stubReviewService) Delete(_ context.Context, _, _ string, _ usecase.Caller) error {
	return nil
}

func newReviewRouter(t *testing.T) (*chi.Mux, *token.Manager) {
	t.Helper()
	logger := zap.NewNop()
	tokens := token.NewManager("test-secret", 1)
	handler := adaptor.NewReviewHandler(stubReviewService{}, logger)

	r := chi.NewRouter()
	wireReview(r, handler, tokens, logger)
	return r, tokens
}

func TestReviewRoutesRejectPut(t *testing.T) {
	r, _ := newReviewRouter(t)

	req := httptest.NewRequest(http.MethodPut,
		"/api/v1/titles/"+uuid.NewString()+"/reviews/"+uuid.NewString(),
		strings.NewReader(`{"text":"full replace","score":5}`))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestReviewListIsPublic(t *testing.T) {
	r, _ := newReviewRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/titles/"+uuid.NewString()+"/reviews", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReviewCreateRequiresToken(t *testing.T) {
	r, tokens := newReviewRouter(t)
	target := "/api/v1/titles/" + uuid.NewString() + "/reviews"
	body := `{"text":"nice","score":8}`

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	signed, err := tokens.Mint(uuid.New(), "alice", "user", false)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+signed)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestReviewCreateRejectsBadToken(t *testing.T) {
	r, _ := newReviewRouter(t)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/titles/"+uuid.NewString()+"/reviews",
		strings.NewReader(`{"text":"nice","score":8}`))
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
