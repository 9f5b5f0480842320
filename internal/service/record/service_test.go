package record

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

type fakeRecordRepo struct {
	repository.RecordRepository
	records    []*model.Record
	total      int64
	created    *model.Record
	rangeCalls int
}

func (f *fakeRecordRepo) Create(ctx context.Context, record *model.Record) error {
	record.ID = uuid.New()
	f.created = record
	return nil
}

func (f *fakeRecordRepo) Get(ctx context.Context, id uuid.UUID) (*model.Record, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, repository.ErrNoRows
}

func (f *fakeRecordRepo) ListByPatient(ctx context.Context, patientID uuid.UUID, page model.PageRequest) ([]*model.Record, int64, error) {
	return f.records, f.total, nil
}

func (f *fakeRecordRepo) ListCreatedBetween(ctx context.Context, start, end time.Time, page model.PageRequest) ([]*model.Record, int64, error) {
	f.rangeCalls++
	return f.records, f.total, nil
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

type fakeStaffRepo struct {
	repository.StaffRepository
	staff *model.Staff
}

func (f *fakeStaffRepo) Get(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	if f.staff == nil || f.staff.ID != id {
		return nil, repository.ErrNoRows
	}
	return f.staff, nil
}

func recordFixture() (*fakeRecordRepo, *fakePatientRepo, *fakeStaffRepo, *model.RecordRequest) {
	patient := &model.Patient{PersonRecord: model.PersonRecord{ID: uuid.New()}}
	doctor := &model.Staff{
		PersonRecord: model.PersonRecord{ID: uuid.New(), FullName: "Dr Okafor"},
		Role:         model.RoleDoctor,
	}

	req := &model.RecordRequest{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Reason:    "Frequent headaches",
		Symptoms:  []string{"pale eyes", "fatigue"},
		Diagnosis: "Migraine",
		Treatment: []string{"pain killers 500mg"},
		Notes:     []string{"review in two weeks"},
	}
	return &fakeRecordRepo{}, &fakePatientRepo{patient: patient}, &fakeStaffRepo{staff: doctor}, req
}

func TestCreateRecord(t *testing.T) {
	repo, patients, staff, req := recordFixture()
	svc := NewService(repo, patients, staff, 10)

	record, err := svc.CreateRecord(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, req.PatientID, record.PatientID)
	assert.Equal(t, req.DoctorID, record.DoctorID)
	assert.Equal(t, "Migraine", record.Diagnosis)
	assert.EqualValues(t, req.Symptoms, record.Symptoms)
	require.NotNil(t, repo.created)
}

func TestCreateRecordUnknownPatient(t *testing.T) {
	repo, patients, staff, req := recordFixture()
	svc := NewService(repo, patients, staff, 10)

	req.PatientID = uuid.New()

	_, err := svc.CreateRecord(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	assert.Nil(t, repo.created)
}

func TestCreateRecordRejectsNonDoctorReviewer(t *testing.T) {
	repo, patients, staff, req := recordFixture()
	staff.staff.Role = model.RoleNurse
	svc := NewService(repo, patients, staff, 10)

	_, err := svc.CreateRecord(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidArgument))
}

func TestRecordsByPatient(t *testing.T) {
	repo, patients, staff, _ := recordFixture()
	repo.records = []*model.Record{{ID: uuid.New()}}
	repo.total = 21
	svc := NewService(repo, patients, staff, 10)

	page, err := svc.RecordsByPatient(context.Background(), patients.patient.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)

	_, err = svc.RecordsByPatient(context.Background(), uuid.New(), 1)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))

	_, err = svc.RecordsByPatient(context.Background(), patients.patient.ID, 0)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidArgument))
}

func TestRecordsByDateRangeRejectsInvertedRange(t *testing.T) {
	repo, patients, staff, _ := recordFixture()
	svc := NewService(repo, patients, staff, 10)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.RecordsByDateRange(context.Background(), start, start.Add(-time.Hour), 1)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidRange))
	assert.Zero(t, repo.rangeCalls)
}

func TestUpdateRecordNotFound(t *testing.T) {
	repo, patients, staff, req := recordFixture()
	svc := NewService(repo, patients, staff, 10)

	_, err := svc.UpdateRecord(context.Background(), uuid.New(), req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}
