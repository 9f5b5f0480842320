package billing

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
	repo            repository.BillingRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	pageSize        int
}

func NewService(repo repository.BillingRepository, patientRepo repository.PatientRepository, appointmentRepo repository.AppointmentRepository, pageSize int) *Service {
	return &Service{
		repo:            repo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		pageSize:        pageSize,
	}
}

// CreateBilling raises a bill against an appointment. The total amount is
// always derived from the bill map, never taken from the client.
func (s *Service) CreateBilling(ctx context.Context, req *model.CreateBillingRequest) (*model.Billing, error) {
	if _, ok := model.ParsePaymentStatus(string(req.Status)); !ok {
		return nil, apperrors.InvalidArgument("invalid payment status", nil)
	}
	if len(req.Bills) == 0 {
		return nil, apperrors.InvalidArgument("billing needs at least one bill entry", nil)
	}

	if _, err := s.patientRepo.Get(ctx, req.PatientID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to resolve patient: %w", err)
	}

	apt, err := s.appointmentRepo.Get(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, fmt.Errorf("failed to resolve appointment: %w", err)
	}
	if apt.PatientID != req.PatientID {
		return nil, apperrors.InvalidArgument("appointment belongs to a different patient", nil)
	}

	billing := &model.Billing{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Bills:         req.Bills,
		TotalAmount:   req.Bills.Total(),
		PaymentMethod: req.PaymentMethod,
		AmountPaid:    req.AmountPaid,
		Status:        req.Status,
	}
	if err := s.repo.Create(ctx, billing); err != nil {
		return nil, fmt.Errorf("failed to create billing: %w", err)
	}

	log.Info().Str("billing_id", billing.ID.String()).Msg("billing raised")
	return billing, nil
}

func (s *Service) GetBilling(ctx context.Context, id uuid.UUID) (*model.Billing, error) {
	billing, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return nil, apperrors.NotFound("billing", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get billing: %w", err)
	}
	return billing, nil
}

func (s *Service) ListBillings(ctx context.Context, page int) ([]*model.Billing, int, error) {
	if page <= 0 {
		return nil, 0, apperrors.InvalidArgument("page number must be positive", nil)
	}

	billings, total, err := s.repo.ListPaged(ctx, model.PageRequest{Page: page - 1, Size: s.pageSize})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list billings: %w", err)
	}
	return billings, model.TotalPages(total, s.pageSize), nil
}

func (s *Service) UpdateBilling(ctx context.Context, id uuid.UUID, req *model.UpdateBillingRequest) (*model.Billing, error) {
	billing, err := s.GetBilling(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Bills != nil {
		billing.Bills = req.Bills
		billing.TotalAmount = req.Bills.Total()
	}
	if req.PaymentMethod != nil {
		billing.PaymentMethod = *req.PaymentMethod
	}
	if req.AmountPaid != nil {
		billing.AmountPaid = *req.AmountPaid
	}
	if req.Status != nil {
		if _, ok := model.ParsePaymentStatus(string(*req.Status)); !ok {
			return nil, apperrors.InvalidArgument("invalid payment status", nil)
		}
		billing.Status = *req.Status
	}

	if err := s.repo.Update(ctx, billing); err != nil {
		return nil, fmt.Errorf("failed to update billing: %w", err)
	}
	return billing, nil
}

func (s *Service) DeleteBilling(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return apperrors.NotFound("billing", err)
	}
	if err != nil {
		return fmt.Errorf("failed to delete billing: %w", err)
	}

	log.Info().Str("billing_id", id.String()).Msg("billing removed")
	return nil
}
