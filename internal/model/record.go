package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Record captures one patient visit: why they came, what the doctor found
// and what was prescribed. The list columns are stored as text arrays.
type Record struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	PatientID uuid.UUID      `db:"patient_id" json:"patient_id"`
	DoctorID  uuid.UUID      `db:"doctor_id" json:"doctor_id"`
	Reason    string         `db:"reason" json:"reason"`
	Symptoms  pq.StringArray `db:"symptoms" json:"symptoms"`
	Diagnosis string         `db:"diagnosis" json:"diagnosis,omitempty"`
	Treatment pq.StringArray `db:"treatment" json:"treatment"`
	Notes     pq.StringArray `db:"notes" json:"notes"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// RecordRequest carries a full record payload. Updates replace the whole
// row, so creation and update share the shape.
type RecordRequest struct {
	PatientID uuid.UUID `json:"patient_id" binding:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" binding:"required"`
	Reason    string    `json:"reason" binding:"required,max=255"`
	Symptoms  []string  `json:"symptoms" binding:"required,max=15"`
	Diagnosis string    `json:"diagnosis"`
	Treatment []string  `json:"treatment" binding:"max=20"`
	Notes     []string  `json:"notes" binding:"max=10"`
}

type RecordPage struct {
	TotalPages int       `json:"total_pages"`
	Records    []*Record `json:"records"`
}
