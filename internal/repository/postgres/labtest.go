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

const labTestColumns = `
	id, record_id, investigations, findings, created_at, updated_at
`

func (r *labTestRepository) Create(ctx context.Context, test *model.LabTest) error {
	query := `
		INSERT INTO laboratory_tests (
			id, record_id, investigations, findings, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
	test.ID = uuid.New()
	test.CreatedAt = time.Now()
	test.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		test.ID,
		test.RecordID,
		test.Investigations,
		test.Findings,
		test.CreatedAt,
		test.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create lab test: %w", err)
	}
	return nil
}

func (r *labTestRepository) Get(ctx context.Context, id uuid.UUID) (*model.LabTest, error) {
	query := `SELECT ` + labTestColumns + ` FROM laboratory_tests WHERE id = $1`

	var test model.LabTest
	err := r.db.GetContext(ctx, &test, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lab test: %w", err)
	}
	return &test, nil
}

func (r *labTestRepository) Update(ctx context.Context, test *model.LabTest) error {
	query := `
		UPDATE laboratory_tests
		SET record_id = $1, investigations = $2, findings = $3, updated_at = $4
		WHERE id = $5
	`
	test.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		test.RecordID,
		test.Investigations,
		test.Findings,
		test.UpdatedAt,
		test.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lab test: %w", err)
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

func (r *labTestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM laboratory_tests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lab test: %w", err)
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

func (r *labTestRepository) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*model.LabTest, error) {
	query := `SELECT ` + labTestColumns + ` FROM laboratory_tests
		WHERE record_id = $1 ORDER BY created_at DESC`

	var tests []*model.LabTest
	if err := r.db.SelectContext(ctx, &tests, query, recordID); err != nil {
		return nil, fmt.Errorf("failed to list lab tests by record: %w", err)
	}
	return tests, nil
}

func (r *labTestRepository) ListCreatedBetween(ctx context.Context, start, end time.Time, page model.PageRequest) ([]*model.LabTest, int64, error) {
	query := `SELECT ` + labTestColumns + ` FROM laboratory_tests
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`

	var tests []*model.LabTest
	if err := r.db.SelectContext(ctx, &tests, query, start, end, page.Size, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list lab tests in range: %w", err)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM laboratory_tests WHERE created_at >= $1 AND created_at < $2`
	if err := r.db.GetContext(ctx, &total, countQuery, start, end); err != nil {
		return nil, 0, fmt.Errorf("failed to count lab tests in range: %w", err)
	}
	return tests, total, nil
}
