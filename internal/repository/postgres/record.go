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

const recordColumns = `
	id, patient_id, doctor_id, reason, symptoms, diagnosis, treatment, notes,
	created_at, updated_at
`

func (r *recordRepository) Create(ctx context.Context, record *model.Record) error {
	query := `
		INSERT INTO patient_records (
			id, patient_id, doctor_id, reason, symptoms, diagnosis,
			treatment, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	record.ID = uuid.New()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.PatientID,
		record.DoctorID,
		record.Reason,
		record.Symptoms,
		record.Diagnosis,
		record.Treatment,
		record.Notes,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

func (r *recordRepository) Get(ctx context.Context, id uuid.UUID) (*model.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM patient_records WHERE id = $1`

	var record model.Record
	err := r.db.GetContext(ctx, &record, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &record, nil
}

func (r *recordRepository) Update(ctx context.Context, record *model.Record) error {
	query := `
		UPDATE patient_records
		SET patient_id = $1, doctor_id = $2, reason = $3, symptoms = $4,
			diagnosis = $5, treatment = $6, notes = $7, updated_at = $8
		WHERE id = $9
	`
	record.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		record.PatientID,
		record.DoctorID,
		record.Reason,
		record.Symptoms,
		record.Diagnosis,
		record.Treatment,
		record.Notes,
		record.UpdatedAt,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
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

func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM patient_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
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

func (r *recordRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, page model.PageRequest) ([]*model.Record, int64, error) {
	return r.listByField(ctx, "patient_id", patientID, page)
}

func (r *recordRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID, page model.PageRequest) ([]*model.Record, int64, error) {
	return r.listByField(ctx, "doctor_id", doctorID, page)
}

func (r *recordRepository) listByField(ctx context.Context, field string, id uuid.UUID, page model.PageRequest) ([]*model.Record, int64, error) {
	query := `SELECT ` + recordColumns + ` FROM patient_records WHERE ` + field + ` = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	var records []*model.Record
	if err := r.db.SelectContext(ctx, &records, query, id, page.Size, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list records by %s: %w", field, err)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM patient_records WHERE ` + field + ` = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, id); err != nil {
		return nil, 0, fmt.Errorf("failed to count records by %s: %w", field, err)
	}
	return records, total, nil
}

func (r *recordRepository) ListCreatedBetween(ctx context.Context, start, end time.Time, page model.PageRequest) ([]*model.Record, int64, error) {
	query := `SELECT ` + recordColumns + ` FROM patient_records
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`

	var records []*model.Record
	if err := r.db.SelectContext(ctx, &records, query, start, end, page.Size, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list records in range: %w", err)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM patient_records WHERE created_at >= $1 AND created_at < $2`
	if err := r.db.GetContext(ctx, &total, countQuery, start, end); err != nil {
		return nil, 0, fmt.Errorf("failed to count records in range: %w", err)
	}
	return records, total, nil
}
