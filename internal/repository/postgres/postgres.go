package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/softcafe/clinic-admin-api/internal/repository"
)

type staffRepository struct {
	db *sqlx.DB
}

type patientRepository struct {
	db *sqlx.DB
}

type appointmentRepository struct {
	db *sqlx.DB
}

type billingRepository struct {
	db *sqlx.DB
}

type recordRepository struct {
	db *sqlx.DB
}

type labTestRepository struct {
	db *sqlx.DB
}

type logRepository struct {
	db *sqlx.DB
}

func NewStaffRepository(db *sqlx.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func NewBillingRepository(db *sqlx.DB) repository.BillingRepository {
	return &billingRepository{db: db}
}

func NewRecordRepository(db *sqlx.DB) repository.RecordRepository {
	return &recordRepository{db: db}
}

func NewLabTestRepository(db *sqlx.DB) repository.LabTestRepository {
	return &labTestRepository{db: db}
}

func NewLogRepository(db *sqlx.DB) repository.LogRepository {
	return &logRepository{db: db}
}
