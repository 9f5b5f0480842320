package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
	apperrors "github.com/softcafe/clinic-admin-api/pkg/errors"
	"github.com/softcafe/clinic-admin-api/pkg/security"
)

type Service struct {
	repo     repository.StaffRepository
	logRepo  repository.LogRepository
	hasher   security.PasswordHasher
	pageSize int
}

func NewService(repo repository.StaffRepository, logRepo repository.LogRepository, hasher security.PasswordHasher, pageSize int) *Service {
	return &Service{
		repo:     repo,
		logRepo:  logRepo,
		hasher:   hasher,
		pageSize: pageSize,
	}
}

func (s *Service) CreateStaff(ctx context.Context, req *model.CreateStaffRequest) (*model.Staff, error) {
	if _, ok := model.ParseRole(string(req.Role)); !ok {
		return nil, apperrors.InvalidArgument("invalid staff role", nil)
	}

	staff := &model.Staff{
		PersonRecord: model.PersonRecord{
			FullName:    titleCase(req.FullName),
			Email:       strings.ToLower(strings.TrimSpace(req.Email)),
			Phone:       strings.TrimSpace(req.Phone),
			NationalID:  strings.TrimSpace(req.NationalID),
			Address:     req.Address,
			DateOfBirth: req.DateOfBirth,
			Gender:      req.Gender,
		},
		Username:  strings.ToLower(req.Username),
		Image:     req.Image,
		Role:      req.Role,
		Status:    model.StaffStatusOff,
		LastLogin: time.Now(),
	}

	if err := s.checkUnique(ctx, staff, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	staff.PasswordHash = hash

	if err := s.repo.Create(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}

	s.logAction(ctx, staff.ID, "staff member created")
	log.Info().Str("staff_id", staff.ID.String()).Msg("staff member created")

	return staff, nil
}

func (s *Service) GetStaff(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	staff, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return nil, apperrors.NotFound("staff member", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return staff, nil
}

// ListStaff returns one page of the full staff listing. Pages are 1-based
// at this boundary.
func (s *Service) ListStaff(ctx context.Context, page int) (*model.StaffPage, error) {
	if page <= 0 {
		return nil, apperrors.InvalidArgument("page number must be positive", nil)
	}

	staff, total, err := s.repo.ListPaged(ctx, model.PageRequest{Page: page - 1, Size: s.pageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return newStaffPage(staff, total, s.pageSize), nil
}

// OnDutyDoctors lists every doctor currently marked ON_DUTY, unpaged.
func (s *Service) OnDutyDoctors(ctx context.Context) ([]*model.Staff, error) {
	doctors, err := s.repo.ListAllByRole(ctx, model.RoleDoctor)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	onDuty := make([]*model.Staff, 0, len(doctors))
	for _, doctor := range doctors {
		if doctor.Status == model.StaffStatusOnDuty {
			onDuty = append(onDuty, doctor)
		}
	}
	return onDuty, nil
}

func (s *Service) UpdateStaff(ctx context.Context, id uuid.UUID, req *model.UpdateStaffRequest) (*model.Staff, error) {
	staff, err := s.GetStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		staff.FullName = titleCase(*req.FullName)
	}
	if req.Email != nil {
		staff.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		staff.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		staff.Address = *req.Address
	}
	if req.Image != nil {
		staff.Image = *req.Image
	}
	if req.Role != nil {
		if _, ok := model.ParseRole(string(*req.Role)); !ok {
			return nil, apperrors.InvalidArgument("invalid staff role", nil)
		}
		staff.Role = *req.Role
	}
	if req.Status != nil {
		if _, ok := model.ParseStaffStatus(string(*req.Status)); !ok {
			return nil, apperrors.InvalidArgument("invalid staff status", nil)
		}
		staff.Status = *req.Status
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		staff.PasswordHash = hash
	}

	if err := s.checkUnique(ctx, staff, staff.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}

	s.logAction(ctx, staff.ID, "staff member updated")
	log.Info().Str("staff_id", staff.ID.String()).Msg("staff member updated")

	return staff, nil
}

func (s *Service) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return apperrors.NotFound("staff member", err)
	}
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}

	log.Info().Str("staff_id", id.String()).Msg("staff member removed")
	return nil
}

// checkUnique probes the unique staff fields before a write. excludeID
// skips the row being updated so it does not collide with itself.
func (s *Service) checkUnique(ctx context.Context, staff *model.Staff, excludeID uuid.UUID) error {
	probes := []struct {
		name string
		find func() (*model.Staff, error)
	}{
		{"email", func() (*model.Staff, error) { return s.repo.FindByEmail(ctx, staff.Email) }},
		{"phone number", func() (*model.Staff, error) { return s.repo.FindByPhone(ctx, staff.Phone) }},
		{"national ID", func() (*model.Staff, error) { return s.repo.FindByNationalID(ctx, staff.NationalID) }},
		{"username", func() (*model.Staff, error) { return s.repo.FindByUsername(ctx, staff.Username) }},
	}

	for _, probe := range probes {
		existing, err := probe.find()
		if errors.Is(err, repository.ErrNoRows) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to check staff uniqueness: %w", err)
		}
		if existing.ID != excludeID {
			return apperrors.Conflict(
				fmt.Sprintf("a staff member with this %s already exists", probe.name), nil)
		}
	}
	return nil
}

func (s *Service) logAction(ctx context.Context, staffID uuid.UUID, action string) {
	entry := &model.LogEntry{StaffID: staffID, Action: action, Time: time.Now()}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("failed to record activity log")
	}
}

func titleCase(name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}
