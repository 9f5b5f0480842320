package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
	apperrors "github.com/softcafe/clinic-admin-api/pkg/errors"
)

// Identifier names the staff field an exact or substring search runs over.
type Identifier int

const (
	IdentifierNone Identifier = iota
	IdentifierEmail
	IdentifierPhone
	IdentifierName
)

// ParseIdentifier decodes the identifier token from the search endpoint.
// An empty token means no search was requested.
func ParseIdentifier(s string) (Identifier, bool) {
	switch s {
	case "":
		return IdentifierNone, true
	case "email":
		return IdentifierEmail, true
	case "phone":
		return IdentifierPhone, true
	case "name":
		return IdentifierName, true
	}
	return IdentifierNone, false
}

// SearchQuery carries the already-decoded search/filter/sort inputs. Token
// parsing happens once at the HTTP boundary; from here on everything is a
// closed variant.
type SearchQuery struct {
	Identifier Identifier
	Value      string
	Filter     *model.StaffFilter
	Sort       model.StaffSort
	Page       int // 1-based
}

// Search picks exactly one retrieval strategy for the query. The cases are
// mutually exclusive and tested in precedence order: exact identifier
// lookup, name substring search, filter-only listing, then the plain
// sorted listing. The first case that matches wins.
func (s *Service) Search(ctx context.Context, q SearchQuery) (*model.StaffPage, error) {
	if q.Page <= 0 {
		return nil, apperrors.InvalidArgument("page number must be positive", nil)
	}

	page := model.PageRequest{
		Page: q.Page - 1,
		Size: s.pageSize,
		Sort: q.Sort,
	}

	// Case 1: exact lookup by a unique field. The result is a single-row
	// page whatever page number was supplied; a filter, if any, is ignored.
	if q.Value != "" && (q.Identifier == IdentifierEmail || q.Identifier == IdentifierPhone) {
		return s.searchExact(ctx, q.Identifier, q.Value)
	}

	// Case 2: substring name search, optionally narrowed by the filter.
	if q.Value != "" && q.Identifier == IdentifierName {
		staff, total, err := s.repo.SearchByName(ctx, q.Value, q.Filter, page)
		if err != nil {
			return nil, fmt.Errorf("failed to search staff by name: %w", err)
		}
		return newStaffPage(staff, total, s.pageSize), nil
	}

	// Case 3: filter-only listing.
	if q.Filter != nil {
		return s.searchFiltered(ctx, q.Filter, page)
	}

	// Case 4: plain listing, ordered by the sort variant.
	staff, total, err := s.repo.ListPaged(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return newStaffPage(staff, total, s.pageSize), nil
}

func (s *Service) searchExact(ctx context.Context, identifier Identifier, value string) (*model.StaffPage, error) {
	var (
		found *model.Staff
		err   error
	)
	switch identifier {
	case IdentifierEmail:
		found, err = s.repo.FindByEmail(ctx, value)
	case IdentifierPhone:
		found, err = s.repo.FindByPhone(ctx, value)
	}
	if errors.Is(err, repository.ErrNoRows) {
		return nil, apperrors.NotFound("staff member", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up staff: %w", err)
	}

	return &model.StaffPage{
		TotalPages: 1,
		StaffList:  []*model.Staff{found},
	}, nil
}

func (s *Service) searchFiltered(ctx context.Context, filter *model.StaffFilter, page model.PageRequest) (*model.StaffPage, error) {
	var (
		staff []*model.Staff
		total int64
		err   error
	)
	switch {
	case filter.Role != nil:
		staff, total, err = s.repo.ListByRole(ctx, *filter.Role, page)
	case filter.Status != nil:
		staff, total, err = s.repo.ListByStatus(ctx, *filter.Status, page)
	default:
		return nil, apperrors.InvalidArgument("empty staff filter", nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list filtered staff: %w", err)
	}
	return newStaffPage(staff, total, s.pageSize), nil
}

func newStaffPage(staff []*model.Staff, total int64, pageSize int) *model.StaffPage {
	if staff == nil {
		staff = []*model.Staff{}
	}
	return &model.StaffPage{
		TotalPages: model.TotalPages(total, pageSize),
		StaffList:  staff,
	}
}
