package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
	apperrors "github.com/softcafe/clinic-admin-api/pkg/errors"
)

type Service struct {
	repo        repository.RecordRepository
	patientRepo repository.PatientRepository
	staffRepo   repository.StaffRepository
	pageSize    int
}

func NewService(repo repository.RecordRepository, patientRepo repository.PatientRepository, staffRepo repository.StaffRepository, pageSize int) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		staffRepo:   staffRepo,
		pageSize:    pageSize,
	}
}

// CreateRecord files a new visit record. The patient and the reviewing
// doctor must both exist before anything is written.
func (s *Service) CreateRecord(ctx context.Context, req *model.RecordRequest) (*model.Record, error) {
	if err := s.resolveReferences(ctx, req); err != nil {
		return nil, err
	}

	record := &model.Record{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Reason:    req.Reason,
		Symptoms:  req.Symptoms,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Notes:     req.Notes,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	log.Info().Str("record_id", record.ID.String()).Msg("patient record filed")
	return record, nil
}

// RecordsByPatient pages through a patient's visit history, newest first.
func (s *Service) RecordsByPatient(ctx context.Context, patientID uuid.UUID, page int) (*model.RecordPage, error) {
	if page <= 0 {
		return nil, apperrors.InvalidArgument("page number must be positive", nil)
	}

	if _, err := s.patientRepo.Get(ctx, patientID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to resolve patient: %w", err)
	}

	records, total, err := s.repo.ListByPatient(ctx, patientID, s.pageRequest(page))
	if err != nil {
		return nil, fmt.Errorf("failed to list patient records: %w", err)
	}
	return newRecordPage(records, total, s.pageSize), nil
}

// RecordsByDoctor pages through the records a doctor has reviewed.
func (s *Service) RecordsByDoctor(ctx context.Context, doctorID uuid.UUID, page int) (*model.RecordPage, error) {
	if page <= 0 {
		return nil, apperrors.InvalidArgument("page number must be positive", nil)
	}

	if _, err := s.staffRepo.Get(ctx, doctorID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}

	records, total, err := s.repo.ListByDoctor(ctx, doctorID, s.pageRequest(page))
	if err != nil {
		return nil, fmt.Errorf("failed to list doctor records: %w", err)
	}
	return newRecordPage(records, total, s.pageSize), nil
}

// RecordsByDateRange pages through records filed in [start, end). The range
// is validated before any row is read.
func (s *Service) RecordsByDateRange(ctx context.Context, start, end time.Time, page int) (*model.RecordPage, error) {
	if page <= 0 {
		return nil, apperrors.InvalidArgument("page number must be positive", nil)
	}
	if end.Before(start) {
		return nil, apperrors.InvalidRange("end date precedes start date")
	}

	records, total, err := s.repo.ListCreatedBetween(ctx, start, end, s.pageRequest(page))
	if err != nil {
		return nil, fmt.Errorf("failed to list records in range: %w", err)
	}
	return newRecordPage(records, total, s.pageSize), nil
}

// UpdateRecord replaces the whole record payload, re-resolving the patient
// and doctor references.
func (s *Service) UpdateRecord(ctx context.Context, id uuid.UUID, req *model.RecordRequest) (*model.Record, error) {
	record, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return nil, apperrors.NotFound("record", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	if err := s.resolveReferences(ctx, req); err != nil {
		return nil, err
	}

	record.PatientID = req.PatientID
	record.DoctorID = req.DoctorID
	record.Reason = req.Reason
	record.Symptoms = req.Symptoms
	record.Diagnosis = req.Diagnosis
	record.Treatment = req.Treatment
	record.Notes = req.Notes

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	log.Info().Str("record_id", id.String()).Msg("patient record updated")
	return record, nil
}

func (s *Service) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return apperrors.NotFound("record", err)
	}
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	log.Info().Str("record_id", id.String()).Msg("patient record removed")
	return nil
}

func (s *Service) resolveReferences(ctx context.Context, req *model.RecordRequest) error {
	if _, err := s.patientRepo.Get(ctx, req.PatientID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return apperrors.NotFound("patient", err)
		}
		return fmt.Errorf("failed to resolve patient: %w", err)
	}

	doctor, err := s.staffRepo.Get(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return apperrors.NotFound("doctor", err)
		}
		return fmt.Errorf("failed to resolve doctor: %w", err)
	}
	if doctor.Role != model.RoleDoctor {
		return apperrors.InvalidArgument("reviewing staff member is not a doctor", nil)
	}
	return nil
}

func (s *Service) pageRequest(page int) model.PageRequest {
	return model.PageRequest{Page: page - 1, Size: s.pageSize}
}

func newRecordPage(records []*model.Record, total int64, pageSize int) *model.RecordPage {
	if records == nil {
		records = []*model.Record{}
	}
	return &model.RecordPage{
		TotalPages: model.TotalPages(total, pageSize),
		Records:    records,
	}
}
