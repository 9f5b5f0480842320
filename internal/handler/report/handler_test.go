package report

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
	reportservice "github.com/softcafe/clinic-admin-api/internal/service/report"
)

type stubAppointmentRepo struct {
	repository.AppointmentRepository
}

func (stubAppointmentRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*model.Appointment, error) {
	return nil, nil
}

type stubStaffRepo struct {
	repository.StaffRepository
}

func (stubStaffRepo) ListAllByRole(ctx context.Context, role model.Role) ([]*model.Staff, error) {
	return nil, nil
}

type stubBillingRepo struct {
	repository.BillingRepository
}

func (stubBillingRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*model.Billing, error) {
	return nil, nil
}

func newReportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(reportservice.NewService(stubAppointmentRepo{}, stubStaffRepo{}, stubBillingRepo{}))
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func TestGetManagerReport(t *testing.T) {
	r := newReportRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/report/manager?start=2026-03-01T00:00:00&end=2026-03-31T00:00:00", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetManagerReportBadDates(t *testing.T) {
	r := newReportRouter()

	for _, query := range []string{
		"start=yesterday&end=2026-03-31T00:00:00",
		"start=2026-03-01T00:00:00&end=soon",
		"",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/report/manager?"+query, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
}

type failingAppointmentRepo struct {
	repository.AppointmentRepository
	err error
}

func (f failingAppointmentRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*model.Appointment, error) {
	return nil, f.err
}

func TestGetManagerReportLogsUnexpectedFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := reportservice.NewService(
		failingAppointmentRepo{err: errors.New("connection refused")},
		stubStaffRepo{},
		stubBillingRepo{},
	)
	NewHandler(svc).RegisterRoutes(r.Group("/api"))

	var logs bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&logs)
	defer func() { log.Logger = prev }()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/report/manager?start=2026-03-01T00:00:00&end=2026-03-31T00:00:00", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The body stays generic but the cause must land in the log.
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, logs.String(), "connection refused")
}

func TestGetManagerReportInvertedRange(t *testing.T) {
	r := newReportRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/report/manager?start=2026-03-31T00:00:00&end=2026-03-01T00:00:00", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
