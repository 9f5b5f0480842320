package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending    AppointmentStatus = "PENDING"
	AppointmentStatusComplete   AppointmentStatus = "COMPLETE"
	AppointmentStatusIncomplete AppointmentStatus = "INCOMPLETE"
	AppointmentStatusCancelled  AppointmentStatus = "CANCELLED"
)

func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case AppointmentStatusPending, AppointmentStatusComplete,
		AppointmentStatusIncomplete, AppointmentStatusCancelled:
		return AppointmentStatus(s), true
	}
	return "", false
}

type Appointment struct {
	ID             uuid.UUID         `db:"id" json:"id"`
	PatientID      uuid.UUID         `db:"patient_id" json:"patient_id"`
	DoctorID       uuid.UUID         `db:"doctor_id" json:"doctor_id"`
	ReceptionistID uuid.UUID         `db:"receptionist_id" json:"receptionist_id"`
	Status         AppointmentStatus `db:"status" json:"status"`
	Notes          string            `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time         `db:"updated_at" json:"updated_at"`
}

type CreateAppointmentRequest struct {
	PatientID      uuid.UUID `json:"patient_id" binding:"required"`
	DoctorID       uuid.UUID `json:"doctor_id" binding:"required"`
	ReceptionistID uuid.UUID `json:"receptionist_id" binding:"required"`
	Notes          string    `json:"notes" binding:"max=1000"`
}

type UpdateAppointmentRequest struct {
	Status *AppointmentStatus `json:"status"`
	Notes  *string            `json:"notes"`
}
