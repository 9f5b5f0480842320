package labtest

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
	repo       repository.LabTestRepository
	recordRepo repository.RecordRepository
	pageSize   int
}

func NewService(repo repository.LabTestRepository, recordRepo repository.RecordRepository, pageSize int) *Service {
	return &Service{
		repo:       repo,
		recordRepo: recordRepo,
		pageSize:   pageSize,
	}
}

// CreateLabTest orders a new laboratory test against a visit record.
func (s *Service) CreateLabTest(ctx context.Context, req *model.LabTestRequest) (*model.LabTest, error) {
	if err := s.resolveRecord(ctx, req.RecordID); err != nil {
		return nil, err
	}

	test := &model.LabTest{
		RecordID:       req.RecordID,
		Investigations: req.Investigations,
		Findings:       req.Findings,
	}
	if err := s.repo.Create(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to create lab test: %w", err)
	}

	log.Info().Str("lab_test_id", test.ID.String()).Msg("lab test ordered")
	return test, nil
}

// LabTestsByRecord lists every test ordered against a record, unpaged.
func (s *Service) LabTestsByRecord(ctx context.Context, recordID uuid.UUID) ([]*model.LabTest, error) {
	if err := s.resolveRecord(ctx, recordID); err != nil {
		return nil, err
	}

	tests, err := s.repo.ListByRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lab tests: %w", err)
	}
	if tests == nil {
		tests = []*model.LabTest{}
	}
	return tests, nil
}

// LabTestsByDateRange pages through tests ordered in [start, end). The
// range is validated before any row is read.
func (s *Service) LabTestsByDateRange(ctx context.Context, start, end time.Time, page int) (*model.LabTestPage, error) {
	if page <= 0 {
		return nil, apperrors.InvalidArgument("page number must be positive", nil)
	}
	if end.Before(start) {
		return nil, apperrors.InvalidRange("end date precedes start date")
	}

	tests, total, err := s.repo.ListCreatedBetween(ctx, start, end, model.PageRequest{Page: page - 1, Size: s.pageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to list lab tests in range: %w", err)
	}

	if tests == nil {
		tests = []*model.LabTest{}
	}
	return &model.LabTestPage{
		TotalPages: model.TotalPages(total, s.pageSize),
		Tests:      tests,
	}, nil
}

// UpdateLabTest replaces the whole test payload, typically to attach the
// laboratory's findings.
func (s *Service) UpdateLabTest(ctx context.Context, id uuid.UUID, req *model.LabTestRequest) (*model.LabTest, error) {
	test, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return nil, apperrors.NotFound("lab test", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lab test: %w", err)
	}

	if err := s.resolveRecord(ctx, req.RecordID); err != nil {
		return nil, err
	}

	test.RecordID = req.RecordID
	test.Investigations = req.Investigations
	test.Findings = req.Findings

	if err := s.repo.Update(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to update lab test: %w", err)
	}

	log.Info().Str("lab_test_id", id.String()).Msg("lab test updated")
	return test, nil
}

func (s *Service) DeleteLabTest(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return apperrors.NotFound("lab test", err)
	}
	if err != nil {
		return fmt.Errorf("failed to delete lab test: %w", err)
	}

	log.Info().Str("lab_test_id", id.String()).Msg("lab test removed")
	return nil
}

func (s *Service) resolveRecord(ctx context.Context, recordID uuid.UUID) error {
	if _, err := s.recordRepo.Get(ctx, recordID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return apperrors.NotFound("record", err)
		}
		return fmt.Errorf("failed to resolve record: %w", err)
	}
	return nil
}
