package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/softcafe/clinic-admin-api/internal/model"
)

// ErrNoRows is returned by single-row lookups when no row matches. Services
// translate it into their own not-found errors.
var ErrNoRows = errors.New("no matching rows")

// All repository interfaces in one file
type (
	// StaffRepository handles staff rows, including the lookup variants the
	// search endpoint composes over.
	StaffRepository interface {
		Create(ctx context.Context, staff *model.Staff) error
		Get(ctx context.Context, id uuid.UUID) (*model.Staff, error)
		Update(ctx context.Context, staff *model.Staff) error
		Delete(ctx context.Context, id uuid.UUID) error

		FindByEmail(ctx context.Context, email string) (*model.Staff, error)
		FindByPhone(ctx context.Context, phone string) (*model.Staff, error)
		FindByUsername(ctx context.Context, username string) (*model.Staff, error)
		FindByNationalID(ctx context.Context, nationalID string) (*model.Staff, error)

		// ListPaged returns one page plus the total row count of the full set.
		ListPaged(ctx context.Context, page model.PageRequest) ([]*model.Staff, int64, error)
		SearchByName(ctx context.Context, name string, filter *model.StaffFilter, page model.PageRequest) ([]*model.Staff, int64, error)
		ListByRole(ctx context.Context, role model.Role, page model.PageRequest) ([]*model.Staff, int64, error)
		ListByStatus(ctx context.Context, status model.StaffStatus, page model.PageRequest) ([]*model.Staff, int64, error)

		// ListAllByRole is deliberately unpaged; the report composer needs the
		// complete doctor set, not a page of it.
		ListAllByRole(ctx context.Context, role model.Role) ([]*model.Staff, error)
		Count(ctx context.Context) (int64, error)
		CountByStatus(ctx context.Context, status model.StaffStatus) (int64, error)
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListPaged(ctx context.Context, page model.PageRequest) ([]*model.Patient, int64, error)
		SearchByName(ctx context.Context, name string, page model.PageRequest) ([]*model.Patient, int64, error)
		FindByNationalID(ctx context.Context, nationalID string) (*model.Patient, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error)

		// ListCreatedBetween returns every appointment created in [start, end),
		// unordered and unpaged.
		ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*model.Appointment, error)
		ListCreatedBetweenForReceptionist(ctx context.Context, start, end time.Time, receptionistID uuid.UUID) ([]*model.Appointment, error)
		CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	}

	BillingRepository interface {
		Create(ctx context.Context, billing *model.Billing) error
		Get(ctx context.Context, id uuid.UUID) (*model.Billing, error)
		Update(ctx context.Context, billing *model.Billing) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListPaged(ctx context.Context, page model.PageRequest) ([]*model.Billing, int64, error)

		// ListCreatedBetween returns every billing created in [start, end),
		// unordered and unpaged.
		ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*model.Billing, error)
	}

	RecordRepository interface {
		Create(ctx context.Context, record *model.Record) error
		Get(ctx context.Context, id uuid.UUID) (*model.Record, error)
		Update(ctx context.Context, record *model.Record) error
		Delete(ctx context.Context, id uuid.UUID) error

		ListByPatient(ctx context.Context, patientID uuid.UUID, page model.PageRequest) ([]*model.Record, int64, error)
		ListByDoctor(ctx context.Context, doctorID uuid.UUID, page model.PageRequest) ([]*model.Record, int64, error)
		ListCreatedBetween(ctx context.Context, start, end time.Time, page model.PageRequest) ([]*model.Record, int64, error)
	}

	LabTestRepository interface {
		Create(ctx context.Context, test *model.LabTest) error
		Get(ctx context.Context, id uuid.UUID) (*model.LabTest, error)
		Update(ctx context.Context, test *model.LabTest) error
		Delete(ctx context.Context, id uuid.UUID) error

		// ListByRecord is unpaged; one record only ever accumulates a
		// handful of tests.
		ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*model.LabTest, error)
		ListCreatedBetween(ctx context.Context, start, end time.Time, page model.PageRequest) ([]*model.LabTest, int64, error)
	}

	// LogRepository is append-only; reads always come back newest first.
	LogRepository interface {
		Create(ctx context.Context, entry *model.LogEntry) error
		ListRecent(ctx context.Context, limit int) ([]*model.LogEntry, error)
		ListRecentForStaff(ctx context.Context, staffID uuid.UUID, limit int) ([]*model.LogEntry, error)
	}
)
