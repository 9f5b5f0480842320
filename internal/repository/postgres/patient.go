package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
)

const patientColumns = `
	id, full_name, email, phone, national_id, address, date_of_birth, gender,
	created_at, updated_at
`

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			id, full_name, email, phone, national_id, address,
			date_of_birth, gender, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	patient.ID = uuid.New()
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.FullName,
		patient.Email,
		patient.Phone,
		patient.NationalID,
		patient.Address,
		patient.DateOfBirth,
		patient.Gender,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`

	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET full_name = $1, email = $2, phone = $3, address = $4, updated_at = $5
		WHERE id = $6
	`
	patient.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		patient.FullName,
		patient.Email,
		patient.Phone,
		patient.Address,
		patient.UpdatedAt,
		patient.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNoRows
	}

	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNoRows
	}

	return nil
}

func (r *patientRepository) ListPaged(ctx context.Context, page model.PageRequest) ([]*model.Patient, int64, error) {
	query := `SELECT ` + patientColumns + ` FROM patients ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query, page.Size, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list patients: %w", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM patients`); err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return patients, total, nil
}

func (r *patientRepository) SearchByName(ctx context.Context, name string, page model.PageRequest) ([]*model.Patient, int64, error) {
	where := ` WHERE full_name ILIKE '%' || $1 || '%'`

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM patients`+where, name); err != nil {
		return nil, 0, fmt.Errorf("failed to count patients by name: %w", err)
	}

	query := `SELECT ` + patientColumns + ` FROM patients` + where +
		` ORDER BY full_name ASC LIMIT $2 OFFSET $3`

	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query, name, page.Size, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to search patients by name: %w", err)
	}
	return patients, total, nil
}

func (r *patientRepository) FindByNationalID(ctx context.Context, nationalID string) (*model.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE national_id = $1`

	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, nationalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find patient by national id: %w", err)
	}
	return &patient, nil
}
