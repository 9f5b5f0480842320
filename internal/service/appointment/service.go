package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
	apperrors "github.com/softcafe/clinic-admin-api/pkg/errors"
)

type Service struct {
	repo        repository.AppointmentRepository
	staffRepo   repository.StaffRepository
	patientRepo repository.PatientRepository
}

func NewService(repo repository.AppointmentRepository, staffRepo repository.StaffRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{
		repo:        repo,
		staffRepo:   staffRepo,
		patientRepo: patientRepo,
	}
}

// CreateAppointment books a new appointment in PENDING state. The doctor,
// patient and booking receptionist must all exist before the row is written.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if _, err := s.patientRepo.Get(ctx, req.PatientID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to resolve patient: %w", err)
	}

	doctor, err := s.staffRepo.Get(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}
	if doctor.Role != model.RoleDoctor {
		return nil, apperrors.InvalidArgument("assigned staff member is not a doctor", nil)
	}

	if _, err := s.staffRepo.Get(ctx, req.ReceptionistID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, apperrors.NotFound("receptionist", err)
		}
		return nil, fmt.Errorf("failed to resolve receptionist: %w", err)
	}

	apt := &model.Appointment{
		PatientID:      req.PatientID,
		DoctorID:       req.DoctorID,
		ReceptionistID: req.ReceptionistID,
		Status:         model.AppointmentStatusPending,
		Notes:          req.Notes,
	}
	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	log.Info().Str("appointment_id", apt.ID.String()).Msg("appointment booked")
	return apt, nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return nil, apperrors.NotFound("appointment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return apt, nil
}

func (s *Service) ListPatientAppointments(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	appointments, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patient appointments: %w", err)
	}
	return appointments, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	apt, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if _, ok := model.ParseAppointmentStatus(string(*req.Status)); !ok {
			return nil, apperrors.InvalidArgument("invalid appointment status", nil)
		}
		apt.Status = *req.Status
	}
	if req.Notes != nil {
		apt.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return apt, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return apperrors.NotFound("appointment", err)
	}
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	log.Info().Str("appointment_id", id.String()).Msg("appointment removed")
	return nil
}
