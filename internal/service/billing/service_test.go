package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
	apperrors "github.com/softcafe/clinic-admin-api/pkg/errors"
)

type fakeBillingRepo struct {
	repository.BillingRepository
	created *model.Billing
}

func (f *fakeBillingRepo) Create(ctx context.Context, billing *model.Billing) error {
	billing.ID = uuid.New()
	f.created = billing
	return nil
}

type fakePatientRepo struct {
	repository.PatientRepository
	patient *model.Patient
}

func (f *fakePatientRepo) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	if f.patient == nil || f.patient.ID != id {
		return nil, repository.ErrNoRows
	}
	return f.patient, nil
}

type fakeAppointmentRepo struct {
	repository.AppointmentRepository
	appointment *model.Appointment
}

func (f *fakeAppointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != id {
		return nil, repository.ErrNoRows
	}
	return f.appointment, nil
}

func billingFixture() (*fakeBillingRepo, *fakePatientRepo, *fakeAppointmentRepo, *model.CreateBillingRequest) {
	patient := &model.Patient{PersonRecord: model.PersonRecord{ID: uuid.New()}}
	apt := &model.Appointment{ID: uuid.New(), PatientID: patient.ID}

	req := &model.CreateBillingRequest{
		PatientID:     patient.ID,
		AppointmentID: apt.ID,
		Bills:         model.BillMap{"consultation": 50, "lab": 75},
		PaymentMethod: "CASH",
		AmountPaid:    50,
		Status:        model.PaymentStatusPartiallyPaid,
	}
	return &fakeBillingRepo{}, &fakePatientRepo{patient: patient}, &fakeAppointmentRepo{appointment: apt}, req
}

func TestCreateBillingDerivesTotalFromBills(t *testing.T) {
	repo, patients, appointments, req := billingFixture()
	svc := NewService(repo, patients, appointments, 10)

	billing, err := svc.CreateBilling(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 125.0, billing.TotalAmount)
	assert.Equal(t, 50.0, billing.AmountPaid)
	assert.Equal(t, req.AppointmentID, billing.AppointmentID)
	require.NotNil(t, repo.created)
}

func TestCreateBillingRejectsEmptyBills(t *testing.T) {
	repo, patients, appointments, req := billingFixture()
	svc := NewService(repo, patients, appointments, 10)

	req.Bills = model.BillMap{}

	_, err := svc.CreateBilling(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidArgument))
}

func TestCreateBillingUnknownAppointment(t *testing.T) {
	repo, patients, appointments, req := billingFixture()
	svc := NewService(repo, patients, appointments, 10)

	req.AppointmentID = uuid.New()

	_, err := svc.CreateBilling(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestCreateBillingPatientMismatch(t *testing.T) {
	repo, patients, appointments, req := billingFixture()
	svc := NewService(repo, patients, appointments, 10)

	appointments.appointment.PatientID = uuid.New()

	_, err := svc.CreateBilling(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidArgument))
	assert.Nil(t, repo.created)
}
