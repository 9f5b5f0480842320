package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/softcafe/clinic-admin-api/internal/model"
)

func (r *logRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	query := `INSERT INTO logs (id, staff_id, action, time) VALUES ($1, $2, $3, $4)`

	entry.ID = uuid.New()
	if entry.Time.IsZero() {
		entry.Time = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query, entry.ID, entry.StaffID, entry.Action, entry.Time)
	if err != nil {
		return fmt.Errorf("failed to create log entry: %w", err)
	}
	return nil
}

func (r *logRepository) ListRecent(ctx context.Context, limit int) ([]*model.LogEntry, error) {
	query := `SELECT id, staff_id, action, time FROM logs ORDER BY time DESC LIMIT $1`

	var entries []*model.LogEntry
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent logs: %w", err)
	}
	return entries, nil
}

func (r *logRepository) ListRecentForStaff(ctx context.Context, staffID uuid.UUID, limit int) ([]*model.LogEntry, error) {
	query := `SELECT id, staff_id, action, time FROM logs
		WHERE staff_id = $1 ORDER BY time DESC LIMIT $2`

	var entries []*model.LogEntry
	if err := r.db.SelectContext(ctx, &entries, query, staffID, limit); err != nil {
		return nil, fmt.Errorf("failed to list staff logs: %w", err)
	}
	return entries, nil
}
