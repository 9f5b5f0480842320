package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// LabTest holds the investigations ordered against a visit record and, once
// the laboratory is done, their findings.
type LabTest struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	RecordID       uuid.UUID      `db:"record_id" json:"record_id"`
	Investigations pq.StringArray `db:"investigations" json:"investigations"`
	Findings       pq.StringArray `db:"findings" json:"findings"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// LabTestRequest is shared by creation and update; findings start empty and
// arrive with a later full-payload update.
type LabTestRequest struct {
	RecordID       uuid.UUID `json:"record_id" binding:"required"`
	Investigations []string  `json:"investigations" binding:"required,max=10"`
	Findings       []string  `json:"findings"`
}

type LabTestPage struct {
	TotalPages int        `json:"total_pages"`
	Tests      []*LabTest `json:"tests"`
}
