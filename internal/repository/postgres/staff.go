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

const staffColumns = `
	id, full_name, email, phone, national_id, address, date_of_birth, gender,
	username, password_hash, image, role, status, last_login, created_at, updated_at
`

func (r *staffRepository) Create(ctx context.Context, staff *model.Staff) error {
	query := `
		INSERT INTO staff (
			id, full_name, email, phone, national_id, address,
			date_of_birth, gender, username, password_hash, image,
			role, status, last_login, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
	`
	staff.ID = uuid.New()
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		staff.ID,
		staff.FullName,
		staff.Email,
		staff.Phone,
		staff.NationalID,
		staff.Address,
		staff.DateOfBirth,
		staff.Gender,
		staff.Username,
		staff.PasswordHash,
		staff.Image,
		staff.Role,
		staff.Status,
		staff.LastLogin,
		staff.CreatedAt,
		staff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

func (r *staffRepository) Get(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	var staff model.Staff
	err := r.db.GetContext(ctx, &staff, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return &staff, nil
}

func (r *staffRepository) Update(ctx context.Context, staff *model.Staff) error {
	query := `
		UPDATE staff
		SET full_name = $1, email = $2, phone = $3, address = $4, image = $5,
			role = $6, status = $7, password_hash = $8, last_login = $9, updated_at = $10
		WHERE id = $11
	`
	staff.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		staff.FullName,
		staff.Email,
		staff.Phone,
		staff.Address,
		staff.Image,
		staff.Role,
		staff.Status,
		staff.PasswordHash,
		staff.LastLogin,
		staff.UpdatedAt,
		staff.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
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

func (r *staffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
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

func (r *staffRepository) FindByEmail(ctx context.Context, email string) (*model.Staff, error) {
	return r.findByField(ctx, "email", email)
}

func (r *staffRepository) FindByPhone(ctx context.Context, phone string) (*model.Staff, error) {
	return r.findByField(ctx, "phone", phone)
}

func (r *staffRepository) FindByUsername(ctx context.Context, username string) (*model.Staff, error) {
	return r.findByField(ctx, "username", username)
}

func (r *staffRepository) FindByNationalID(ctx context.Context, nationalID string) (*model.Staff, error) {
	return r.findByField(ctx, "national_id", nationalID)
}

func (r *staffRepository) findByField(ctx context.Context, field, value string) (*model.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE ` + field + ` = $1`

	var staff model.Staff
	err := r.db.GetContext(ctx, &staff, query, value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find staff by %s: %w", field, err)
	}
	return &staff, nil
}

func (r *staffRepository) ListPaged(ctx context.Context, page model.PageRequest) ([]*model.Staff, int64, error) {
	query := `SELECT ` + staffColumns + ` FROM staff` +
		orderClause(page.Sort) + ` LIMIT $1 OFFSET $2`

	var staff []*model.Staff
	if err := r.db.SelectContext(ctx, &staff, query, page.Size, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list staff: %w", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM staff`); err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}
	return staff, total, nil
}

func (r *staffRepository) SearchByName(ctx context.Context, name string, filter *model.StaffFilter, page model.PageRequest) ([]*model.Staff, int64, error) {
	where := ` WHERE full_name ILIKE '%' || $1 || '%'`
	args := []interface{}{name}

	if filter != nil {
		switch {
		case filter.Role != nil:
			where += ` AND role = $2`
			args = append(args, *filter.Role)
		case filter.Status != nil:
			where += ` AND status = $2`
			args = append(args, *filter.Status)
		}
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM staff`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count staff by name: %w", err)
	}

	query := `SELECT ` + staffColumns + ` FROM staff` + where + orderClause(page.Sort) +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, page.Size, page.Offset())

	var staff []*model.Staff
	if err := r.db.SelectContext(ctx, &staff, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to search staff by name: %w", err)
	}
	return staff, total, nil
}

func (r *staffRepository) ListByRole(ctx context.Context, role model.Role, page model.PageRequest) ([]*model.Staff, int64, error) {
	return r.listByField(ctx, "role", string(role), page)
}

func (r *staffRepository) ListByStatus(ctx context.Context, status model.StaffStatus, page model.PageRequest) ([]*model.Staff, int64, error) {
	return r.listByField(ctx, "status", string(status), page)
}

func (r *staffRepository) listByField(ctx context.Context, field, value string, page model.PageRequest) ([]*model.Staff, int64, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE ` + field + ` = $1` +
		orderClause(page.Sort) + ` LIMIT $2 OFFSET $3`

	var staff []*model.Staff
	if err := r.db.SelectContext(ctx, &staff, query, value, page.Size, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list staff by %s: %w", field, err)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM staff WHERE ` + field + ` = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, value); err != nil {
		return nil, 0, fmt.Errorf("failed to count staff by %s: %w", field, err)
	}
	return staff, total, nil
}

func (r *staffRepository) ListAllByRole(ctx context.Context, role model.Role) ([]*model.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE role = $1`

	var staff []*model.Staff
	if err := r.db.SelectContext(ctx, &staff, query, role); err != nil {
		return nil, fmt.Errorf("failed to list staff by role: %w", err)
	}
	return staff, nil
}

func (r *staffRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM staff`); err != nil {
		return 0, fmt.Errorf("failed to count staff: %w", err)
	}
	return total, nil
}

func (r *staffRepository) CountByStatus(ctx context.Context, status model.StaffStatus) (int64, error) {
	var total int64
	query := `SELECT COUNT(*) FROM staff WHERE status = $1`
	if err := r.db.GetContext(ctx, &total, query, status); err != nil {
		return 0, fmt.Errorf("failed to count staff by status: %w", err)
	}
	return total, nil
}

func orderClause(sort model.StaffSort) string {
	switch sort {
	case model.StaffSortDateAsc:
		return ` ORDER BY created_at ASC`
	case model.StaffSortDateDesc:
		return ` ORDER BY created_at DESC`
	case model.StaffSortLastLogin:
		return ` ORDER BY last_login DESC`
	default:
		return ` ORDER BY id ASC`
	}
}
