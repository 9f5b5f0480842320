package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
	apperrors "github.com/softcafe/clinic-admin-api/pkg/errors"
)

type Service struct {
	repo     repository.PatientRepository
	pageSize int
}

func NewService(repo repository.PatientRepository, pageSize int) *Service {
	return &Service{repo: repo, pageSize: pageSize}
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	existing, err := s.repo.FindByNationalID(ctx, strings.TrimSpace(req.NationalID))
	if err != nil && !errors.Is(err, repository.ErrNoRows) {
		return nil, fmt.Errorf("failed to check patient uniqueness: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("a patient with this national ID already exists", nil)
	}

	patient := &model.Patient{
		PersonRecord: model.PersonRecord{
			FullName:    strings.TrimSpace(req.FullName),
			Email:       strings.ToLower(strings.TrimSpace(req.Email)),
			Phone:       strings.TrimSpace(req.Phone),
			NationalID:  strings.TrimSpace(req.NationalID),
			Address:     req.Address,
			DateOfBirth: req.DateOfBirth,
			Gender:      req.Gender,
		},
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	log.Info().Str("patient_id", patient.ID.String()).Msg("patient registered")
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return nil, apperrors.NotFound("patient", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *Service) ListPatients(ctx context.Context, page int) ([]*model.Patient, int, error) {
	if page <= 0 {
		return nil, 0, apperrors.InvalidArgument("page number must be positive", nil)
	}

	patients, total, err := s.repo.ListPaged(ctx, model.PageRequest{Page: page - 1, Size: s.pageSize})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, model.TotalPages(total, s.pageSize), nil
}

func (s *Service) SearchPatients(ctx context.Context, name string, page int) ([]*model.Patient, int, error) {
	if page <= 0 {
		return nil, 0, apperrors.InvalidArgument("page number must be positive", nil)
	}

	patients, total, err := s.repo.SearchByName(ctx, name, model.PageRequest{Page: page - 1, Size: s.pageSize})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search patients: %w", err)
	}
	return patients, model.TotalPages(total, s.pageSize), nil
}

func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		patient.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		patient.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		patient.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return apperrors.NotFound("patient", err)
	}
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	log.Info().Str("patient_id", id.String()).Msg("patient removed")
	return nil
}
