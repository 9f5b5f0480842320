package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/softcafe/clinic-admin-api/internal/model"
)

func appointmentWithStatus(doctorID uuid.UUID, status model.AppointmentStatus) *model.Appointment {
	return &model.Appointment{
		ID:       uuid.New(),
		DoctorID: doctorID,
		Status:   status,
	}
}

func TestCountByStatus(t *testing.T) {
	doctorID := uuid.New()
	appointments := []*model.Appointment{
		appointmentWithStatus(doctorID, model.AppointmentStatusComplete),
		appointmentWithStatus(doctorID, model.AppointmentStatusComplete),
		appointmentWithStatus(doctorID, model.AppointmentStatusPending),
	}

	counts := CountByStatus(appointments)

	assert.Equal(t, int64(2), counts[model.AppointmentStatusComplete])
	assert.Equal(t, int64(1), counts[model.AppointmentStatusPending])
	assert.NotContains(t, counts, model.AppointmentStatusCancelled)
}

func TestCountByStatusEmptySet(t *testing.T) {
	counts := CountByStatus(nil)
	assert.Empty(t, counts)
}

func TestCountByStatusIsAdditive(t *testing.T) {
	doctorID := uuid.New()
	first := []*model.Appointment{
		appointmentWithStatus(doctorID, model.AppointmentStatusComplete),
		appointmentWithStatus(doctorID, model.AppointmentStatusPending),
	}
	second := []*model.Appointment{
		appointmentWithStatus(doctorID, model.AppointmentStatusComplete),
		appointmentWithStatus(doctorID, model.AppointmentStatusCancelled),
	}

	combined := CountByStatus(append(append([]*model.Appointment{}, first...), second...))
	a, b := CountByStatus(first), CountByStatus(second)

	for _, status := range []model.AppointmentStatus{
		model.AppointmentStatusComplete,
		model.AppointmentStatusPending,
		model.AppointmentStatusCancelled,
	} {
		assert.Equal(t, a[status]+b[status], combined[status], "status %s", status)
	}
}

func TestSummarizeAppointmentsTotalCountsEveryStatus(t *testing.T) {
	doctorID := uuid.New()
	appointments := []*model.Appointment{
		appointmentWithStatus(doctorID, model.AppointmentStatusComplete),
		appointmentWithStatus(doctorID, model.AppointmentStatusPending),
		appointmentWithStatus(doctorID, model.AppointmentStatusCancelled),
		// Not one of the reported buckets, but still part of the total.
		appointmentWithStatus(doctorID, model.AppointmentStatusIncomplete),
	}

	summary := SummarizeAppointments(appointments)

	assert.Equal(t, int64(4), summary.Total)
	assert.Equal(t, int64(1), summary.Completed)
	assert.Equal(t, int64(1), summary.Pending)
	assert.Equal(t, int64(1), summary.Cancelled)
	assert.Greater(t, summary.Total, summary.Completed+summary.Pending+summary.Cancelled)
}

func TestJoinDoctorRevenue(t *testing.T) {
	drSmith := &model.Staff{PersonRecord: model.PersonRecord{ID: uuid.New(), FullName: "Dr Smith"}}
	drJones := &model.Staff{PersonRecord: model.PersonRecord{ID: uuid.New(), FullName: "Dr Jones"}}
	drIdle := &model.Staff{PersonRecord: model.PersonRecord{ID: uuid.New(), FullName: "Dr Idle"}}
	doctors := []*model.Staff{drSmith, drJones, drIdle}

	aptSmith1 := appointmentWithStatus(drSmith.ID, model.AppointmentStatusComplete)
	aptSmith2 := appointmentWithStatus(drSmith.ID, model.AppointmentStatusComplete)
	aptJones := appointmentWithStatus(drJones.ID, model.AppointmentStatusCancelled)
	appointments := []*model.Appointment{aptSmith1, aptSmith2, aptJones}

	billings := []*model.Billing{
		{ID: uuid.New(), AppointmentID: aptSmith1.ID, AmountPaid: 100, TotalAmount: 150},
		{ID: uuid.New(), AppointmentID: aptSmith2.ID, AmountPaid: 50, TotalAmount: 50},
		{ID: uuid.New(), AppointmentID: aptJones.ID, AmountPaid: 30, TotalAmount: 80},
		// Appointment outside the fetched window: attaches to nobody.
		{ID: uuid.New(), AppointmentID: uuid.New(), AmountPaid: 999, TotalAmount: 999},
	}

	reports := JoinDoctorRevenue(doctors, appointments, billings)

	assert.Len(t, reports, 3)

	// Rows come back in the order the doctors were supplied.
	assert.Equal(t, drSmith.ID, reports[0].ID)
	assert.Equal(t, drJones.ID, reports[1].ID)
	assert.Equal(t, drIdle.ID, reports[2].ID)

	assert.Equal(t, "Dr Smith", reports[0].Name)
	assert.Equal(t, int64(2), reports[0].Completed)
	assert.Equal(t, int64(0), reports[0].Cancelled)
	assert.Equal(t, 150.0, reports[0].Revenue)

	assert.Equal(t, int64(0), reports[1].Completed)
	assert.Equal(t, int64(1), reports[1].Cancelled)
	assert.Equal(t, 30.0, reports[1].Revenue)

	// A doctor with no appointments keeps an all-zero row.
	assert.Equal(t, model.DoctorReport{ID: drIdle.ID, Name: "Dr Idle"}, reports[2])
}

func TestJoinDoctorRevenueEmptyInputs(t *testing.T) {
	reports := JoinDoctorRevenue(nil, nil, nil)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestRevenueTotalsIgnoresPaymentStatus(t *testing.T) {
	billings := []*model.Billing{
		{AmountPaid: 100, TotalAmount: 200, Status: model.PaymentStatusPaid},
		{AmountPaid: 25, TotalAmount: 50, Status: model.PaymentStatusPartiallyPaid},
		{AmountPaid: 10, TotalAmount: 40, Status: model.PaymentStatusCancelled},
	}

	totals := RevenueTotals(billings)

	assert.Equal(t, 135.0, totals.TotalPaid)
	assert.Equal(t, 290.0, totals.TotalExpected)
}

func TestRevenueTotalsAdditive(t *testing.T) {
	first := []*model.Billing{
		{AmountPaid: 100, TotalAmount: 200},
		// Over-paid: paid exceeds what was expected.
		{AmountPaid: 90, TotalAmount: 60},
	}
	second := []*model.Billing{
		{AmountPaid: 40, TotalAmount: 40},
	}

	a, b := RevenueTotals(first), RevenueTotals(second)
	combined := RevenueTotals(append(append([]*model.Billing{}, first...), second...))

	assert.Equal(t, a.TotalPaid+b.TotalPaid, combined.TotalPaid)
	assert.Equal(t, a.TotalExpected+b.TotalExpected, combined.TotalExpected)

	assert.Equal(t, 230.0, combined.TotalPaid)
	assert.Equal(t, 300.0, combined.TotalExpected)
}

func TestRevenueTotalsOverPayment(t *testing.T) {
	totals := RevenueTotals([]*model.Billing{
		{AmountPaid: 150, TotalAmount: 100},
	})

	assert.Equal(t, 150.0, totals.TotalPaid)
	assert.Equal(t, 100.0, totals.TotalExpected)
	assert.Greater(t, totals.TotalPaid, totals.TotalExpected)
}

func TestRevenueTotalsEmptySet(t *testing.T) {
	assert.Equal(t, model.RevenueTotals{}, RevenueTotals(nil))
}
