package model

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry records a staff action. Entries are append-only and only ever
// read back in recency order.
type LogEntry struct {
	ID      uuid.UUID `db:"id" json:"id"`
	StaffID uuid.UUID `db:"staff_id" json:"staff_id"`
	Action  string    `db:"action" json:"action"`
	Time    time.Time `db:"time" json:"time"`
}
