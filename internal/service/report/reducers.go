package report

import (
	"github.com/google/uuid"

	"github.com/softcafe/clinic-admin-api/internal/model"
)

// CountByStatus buckets an appointment set by status. Statuses absent from
// the input have no entry; callers treat a missing key as zero.
func CountByStatus(appointments []*model.Appointment) map[model.AppointmentStatus]int64 {
	counts := make(map[model.AppointmentStatus]int64)
	for _, apt := range appointments {
		counts[apt.Status]++
	}
	return counts
}

// SummarizeAppointments builds the appointment section of the manager
// report. Total is the size of the set itself, so an appointment whose
// status is outside the reported buckets still counts toward it.
func SummarizeAppointments(appointments []*model.Appointment) model.AppointmentSummary {
	counts := CountByStatus(appointments)
	return model.AppointmentSummary{
		Total:     int64(len(appointments)),
		Completed: counts[model.AppointmentStatusComplete],
		Pending:   counts[model.AppointmentStatusPending],
		Cancelled: counts[model.AppointmentStatusCancelled],
	}
}

// JoinDoctorRevenue produces one report row per doctor, in input order.
// Billings attach to a doctor through the appointment they were raised
// for, via a map built once from the appointment set. A billing whose
// appointment is not in that set contributes to nobody; a doctor with no
// matching rows keeps an all-zero entry.
func JoinDoctorRevenue(doctors []*model.Staff, appointments []*model.Appointment, billings []*model.Billing) []model.DoctorReport {
	appointmentDoctor := make(map[uuid.UUID]uuid.UUID, len(appointments))
	for _, apt := range appointments {
		appointmentDoctor[apt.ID] = apt.DoctorID
	}

	revenueByDoctor := make(map[uuid.UUID]float64)
	for _, b := range billings {
		if doctorID, ok := appointmentDoctor[b.AppointmentID]; ok {
			revenueByDoctor[doctorID] += b.AmountPaid
		}
	}

	completedByDoctor := make(map[uuid.UUID]int64)
	cancelledByDoctor := make(map[uuid.UUID]int64)
	for _, apt := range appointments {
		switch apt.Status {
		case model.AppointmentStatusComplete:
			completedByDoctor[apt.DoctorID]++
		case model.AppointmentStatusCancelled:
			cancelledByDoctor[apt.DoctorID]++
		}
	}

	reports := make([]model.DoctorReport, 0, len(doctors))
	for _, doctor := range doctors {
		reports = append(reports, model.DoctorReport{
			ID:        doctor.ID,
			Name:      doctor.FullName,
			Completed: completedByDoctor[doctor.ID],
			Cancelled: cancelledByDoctor[doctor.ID],
			Revenue:   revenueByDoctor[doctor.ID],
		})
	}
	return reports
}

// RevenueTotals sums paid and expected amounts over the whole billing set.
// Payment status is ignored: cancelled billings contribute to both sums.
func RevenueTotals(billings []*model.Billing) model.RevenueTotals {
	var totals model.RevenueTotals
	for _, b := range billings {
		totals.TotalPaid += b.AmountPaid
		totals.TotalExpected += b.TotalAmount
	}
	return totals
}
