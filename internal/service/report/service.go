package report

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
	apperrors "github.com/softcafe/clinic-admin-api/pkg/errors"
)

type Service struct {
	appointmentRepo repository.AppointmentRepository
	staffRepo       repository.StaffRepository
	billingRepo     repository.BillingRepository
}

func NewService(appointmentRepo repository.AppointmentRepository, staffRepo repository.StaffRepository, billingRepo repository.BillingRepository) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		billingRepo:     billingRepo,
	}
}

// BuildManagerReport assembles the composite manager report over the
// [start, end) window. The three fetches are independent reads: a write
// landing between them can leave a billing without its appointment in the
// snapshot, which silently drops it from the per-doctor join. Callers
// needing a consistent view must serialize above this layer.
func (s *Service) BuildManagerReport(ctx context.Context, start, end time.Time) (*model.ManagerReport, error) {
	if end.Before(start) {
		return nil, apperrors.InvalidRange("end date precedes start date")
	}

	appointments, err := s.appointmentRepo.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for report: %w", err)
	}

	// Doctors are fetched unpaged and unscoped by date: a doctor's row in
	// the report exists even when the appointment window predates them.
	doctors, err := s.staffRepo.ListAllByRole(ctx, model.RoleDoctor)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors for report: %w", err)
	}

	billings, err := s.billingRepo.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch billings for report: %w", err)
	}

	report := &model.ManagerReport{
		Appointments: SummarizeAppointments(appointments),
		Doctors:      JoinDoctorRevenue(doctors, appointments, billings),
		Revenue:      RevenueTotals(billings),
	}

	log.Debug().
		Time("start", start).
		Time("end", end).
		Int("appointments", len(appointments)).
		Int("doctors", len(doctors)).
		Int("billings", len(billings)).
		Msg("manager report assembled")

	return report, nil
}
