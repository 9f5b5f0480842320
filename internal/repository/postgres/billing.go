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

const billingColumns = `
	id, patient_id, appointment_id, bills, total_amount, payment_method,
	amount_paid, status, created_at, updated_at
`

func (r *billingRepository) Create(ctx context.Context, billing *model.Billing) error {
	query := `
		INSERT INTO billings (
			id, patient_id, appointment_id, bills, total_amount,
			payment_method, amount_paid, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	billing.ID = uuid.New()
	billing.CreatedAt = time.Now()
	billing.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		billing.ID,
		billing.PatientID,
		billing.AppointmentID,
		billing.Bills,
		billing.TotalAmount,
		billing.PaymentMethod,
		billing.AmountPaid,
		billing.Status,
		billing.CreatedAt,
		billing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create billing: %w", err)
	}
	return nil
}

func (r *billingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Billing, error) {
	query := `SELECT ` + billingColumns + ` FROM billings WHERE id = $1`

	var billing model.Billing
	err := r.db.GetContext(ctx, &billing, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get billing: %w", err)
	}
	return &billing, nil
}

func (r *billingRepository) Update(ctx context.Context, billing *model.Billing) error {
	query := `
		UPDATE billings
		SET bills = $1, total_amount = $2, payment_method = $3,
			amount_paid = $4, status = $5, updated_at = $6
		WHERE id = $7
	`
	billing.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		billing.Bills,
		billing.TotalAmount,
		billing.PaymentMethod,
		billing.AmountPaid,
		billing.Status,
		billing.UpdatedAt,
		billing.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update billing: %w", err)
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

func (r *billingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM billings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete billing: %w", err)
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

func (r *billingRepository) ListPaged(ctx context.Context, page model.PageRequest) ([]*model.Billing, int64, error) {
	query := `SELECT ` + billingColumns + ` FROM billings ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var billings []*model.Billing
	if err := r.db.SelectContext(ctx, &billings, query, page.Size, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list billings: %w", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM billings`); err != nil {
		return nil, 0, fmt.Errorf("failed to count billings: %w", err)
	}
	return billings, total, nil
}

func (r *billingRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*model.Billing, error) {
	query := `SELECT ` + billingColumns + ` FROM billings
		WHERE created_at >= $1 AND created_at < $2`

	var billings []*model.Billing
	if err := r.db.SelectContext(ctx, &billings, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to list billings in range: %w", err)
	}
	return billings, nil
}
