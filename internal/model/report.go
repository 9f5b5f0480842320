package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentSummary counts an appointment set by status. Total is the size
// of the whole set, not the sum of the buckets: an appointment whose status
// falls outside the three reported buckets still counts toward Total.
type AppointmentSummary struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
	Cancelled int64 `json:"cancelled"`
}

// DoctorReport is one doctor's row in the manager report. A doctor with no
// appointments or billings in range keeps an all-zero row.
type DoctorReport struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Completed int64     `json:"completed"`
	Cancelled int64     `json:"cancelled"`
	Revenue   float64   `json:"revenue"`
}

// RevenueTotals sums the billing set regardless of payment status.
type RevenueTotals struct {
	TotalPaid     float64 `json:"total_paid"`
	TotalExpected float64 `json:"total_expected"`
}

// ManagerReport is assembled fresh per request and never persisted.
type ManagerReport struct {
	Appointments AppointmentSummary `json:"appointments"`
	Doctors      []DoctorReport     `json:"doctors"`
	Revenue      RevenueTotals      `json:"revenue"`
}

type ActivityEntry struct {
	ID     uuid.UUID `json:"id"`
	Action string    `json:"action"`
	Time   time.Time `json:"time"`
}

type ManagerStats struct {
	TotalStaff        int64           `json:"total_staff"`
	StaffOnDuty       int64           `json:"staff_on_duty"`
	DailyAppointments int64           `json:"daily_appointments"`
	Activity          []ActivityEntry `json:"activity"`
}

type ReceptionistStats struct {
	Total    int64           `json:"total"`
	Complete int64           `json:"complete"`
	Pending  int64           `json:"pending"`
	Activity []ActivityEntry `json:"activity"`
}
