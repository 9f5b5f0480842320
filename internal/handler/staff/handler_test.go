package staff

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
	staffservice "github.com/softcafe/clinic-admin-api/internal/service/staff"
)

type stubStaffRepo struct {
	repository.StaffRepository
	listPagedCalls int
}

func (f *stubStaffRepo) ListPaged(ctx context.Context, page model.PageRequest) ([]*model.Staff, int64, error) {
	f.listPagedCalls++
	return nil, 0, nil
}

func newSearchRouter(repo *stubStaffRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(staffservice.NewService(repo, nil, nil, 10))
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func TestSearchStaffRejectsBadTokens(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"unknown identifier", "identifier=ssn&value=123&page=1"},
		{"unknown filter", "filter=WIZARD&page=1"},
		{"unknown sort", "sort=shoeSize&page=1"},
		{"missing page", ""},
		{"non-numeric page", "page=first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubStaffRepo{}
			r := newSearchRouter(repo)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/staff/get?"+tt.query, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			// Token decoding fails at the boundary; the service never runs.
			assert.Zero(t, repo.listPagedCalls)
		})
	}
}

func TestSearchStaffDefaultListing(t *testing.T) {
	repo := &stubStaffRepo{}
	r := newSearchRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/get?page=1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, repo.listPagedCalls)

	var body struct {
		Status string          `json:"status"`
		Data   model.StaffPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.NotNil(t, body.Data.StaffList)
	assert.Zero(t, body.Data.TotalPages)
}

func TestSearchStaffNonPositivePage(t *testing.T) {
	repo := &stubStaffRepo{}
	r := newSearchRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/staff/get?page=0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
