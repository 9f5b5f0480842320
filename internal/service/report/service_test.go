package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
	apperrors "github.com/softcafe/clinic-admin-api/pkg/errors"
)

type fakeAppointmentRepo struct {
	repository.AppointmentRepository
	appointments []*model.Appointment
	calls        int
}

func (f *fakeAppointmentRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*model.Appointment, error) {
	f.calls++
	return f.appointments, nil
}

type fakeStaffRepo struct {
	repository.StaffRepository
	doctors []*model.Staff
	calls   int
}

func (f *fakeStaffRepo) ListAllByRole(ctx context.Context, role model.Role) ([]*model.Staff, error) {
	f.calls++
	return f.doctors, nil
}

type fakeBillingRepo struct {
	repository.BillingRepository
	billings []*model.Billing
	calls    int
}

func (f *fakeBillingRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*model.Billing, error) {
	f.calls++
	return f.billings, nil
}

func TestBuildManagerReportRejectsInvertedRange(t *testing.T) {
	appointments := &fakeAppointmentRepo{}
	staff := &fakeStaffRepo{}
	billings := &fakeBillingRepo{}
	svc := NewService(appointments, staff, billings)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	report, err := svc.BuildManagerReport(context.Background(), start, end)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidRange))

	// Validation happens before any data is read.
	assert.Zero(t, appointments.calls)
	assert.Zero(t, staff.calls)
	assert.Zero(t, billings.calls)
}

func TestBuildManagerReportAcceptsEqualBounds(t *testing.T) {
	appointments := &fakeAppointmentRepo{}
	staff := &fakeStaffRepo{}
	billings := &fakeBillingRepo{}
	svc := NewService(appointments, staff, billings)

	at := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	report, err := svc.BuildManagerReport(context.Background(), at, at)

	require.NoError(t, err)
	assert.Equal(t, int64(0), report.Appointments.Total)
	assert.Empty(t, report.Doctors)
}

func TestBuildManagerReport(t *testing.T) {
	doctor := &model.Staff{PersonRecord: model.PersonRecord{ID: uuid.New(), FullName: "Dr Okafor"}}
	apt := &model.Appointment{ID: uuid.New(), DoctorID: doctor.ID, Status: model.AppointmentStatusComplete}
	bill := &model.Billing{ID: uuid.New(), AppointmentID: apt.ID, AmountPaid: 120, TotalAmount: 200}

	svc := NewService(
		&fakeAppointmentRepo{appointments: []*model.Appointment{apt}},
		&fakeStaffRepo{doctors: []*model.Staff{doctor}},
		&fakeBillingRepo{billings: []*model.Billing{bill}},
	)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	report, err := svc.BuildManagerReport(context.Background(), start, start.AddDate(0, 1, 0))

	require.NoError(t, err)
	assert.Equal(t, int64(1), report.Appointments.Total)
	assert.Equal(t, int64(1), report.Appointments.Completed)
	require.Len(t, report.Doctors, 1)
	assert.Equal(t, 120.0, report.Doctors[0].Revenue)
	assert.Equal(t, 120.0, report.Revenue.TotalPaid)
	assert.Equal(t, 200.0, report.Revenue.TotalExpected)
}
