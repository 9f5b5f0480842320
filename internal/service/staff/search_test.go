package staff

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
	apperrors "github.com/softcafe/clinic-admin-api/pkg/errors"
)

const testPageSize = 10

// fakeStaffRepo records which retrieval strategy the search picked.
type fakeStaffRepo struct {
	repository.StaffRepository

	byEmail *model.Staff
	byPhone *model.Staff
	listed  []*model.Staff
	total   int64

	emailCalls, phoneCalls      int
	nameCalls, roleCalls        int
	statusCalls, listPagedCalls int

	nameFilter *model.StaffFilter
	pageAsked  model.PageRequest
	roleAsked  model.Role
}

func (f *fakeStaffRepo) FindByEmail(ctx context.Context, email string) (*model.Staff, error) {
	f.emailCalls++
	if f.byEmail == nil {
		return nil, repository.ErrNoRows
	}
	return f.byEmail, nil
}

func (f *fakeStaffRepo) FindByPhone(ctx context.Context, phone string) (*model.Staff, error) {
	f.phoneCalls++
	if f.byPhone == nil {
		return nil, repository.ErrNoRows
	}
	return f.byPhone, nil
}

func (f *fakeStaffRepo) SearchByName(ctx context.Context, name string, filter *model.StaffFilter, page model.PageRequest) ([]*model.Staff, int64, error) {
	f.nameCalls++
	f.nameFilter = filter
	f.pageAsked = page
	return f.listed, f.total, nil
}

func (f *fakeStaffRepo) ListByRole(ctx context.Context, role model.Role, page model.PageRequest) ([]*model.Staff, int64, error) {
	f.roleCalls++
	f.roleAsked = role
	f.pageAsked = page
	return f.listed, f.total, nil
}

func (f *fakeStaffRepo) ListByStatus(ctx context.Context, status model.StaffStatus, page model.PageRequest) ([]*model.Staff, int64, error) {
	f.statusCalls++
	f.pageAsked = page
	return f.listed, f.total, nil
}

func (f *fakeStaffRepo) ListPaged(ctx context.Context, page model.PageRequest) ([]*model.Staff, int64, error) {
	f.listPagedCalls++
	f.pageAsked = page
	return f.listed, f.total, nil
}

func newTestService(repo *fakeStaffRepo) *Service {
	return NewService(repo, nil, nil, testPageSize)
}

func staffMember(name string) *model.Staff {
	return &model.Staff{PersonRecord: model.PersonRecord{ID: uuid.New(), FullName: name}}
}

func TestSearchRejectsNonPositivePage(t *testing.T) {
	svc := newTestService(&fakeStaffRepo{})

	for _, page := range []int{0, -1} {
		_, err := svc.Search(context.Background(), SearchQuery{Page: page})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidArgument))
	}
}

func TestSearchExactEmailWinsOverFilter(t *testing.T) {
	found := staffMember("Ada Obi")
	repo := &fakeStaffRepo{byEmail: found}
	svc := newTestService(repo)

	role := model.RoleNurse
	page, err := svc.Search(context.Background(), SearchQuery{
		Identifier: IdentifierEmail,
		Value:      "ada@clinic.test",
		Filter:     &model.StaffFilter{Role: &role},
		Page:       3,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.emailCalls)
	assert.Zero(t, repo.nameCalls)
	assert.Zero(t, repo.roleCalls)
	assert.Zero(t, repo.listPagedCalls)

	// Exact lookups collapse to a single-row page whatever page was asked.
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.StaffList, 1)
	assert.Equal(t, found.ID, page.StaffList[0].ID)
}

func TestSearchExactPhoneNotFound(t *testing.T) {
	svc := newTestService(&fakeStaffRepo{})

	_, err := svc.Search(context.Background(), SearchQuery{
		Identifier: IdentifierPhone,
		Value:      "0700000000",
		Page:       1,
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestSearchByNameAppliesFilter(t *testing.T) {
	repo := &fakeStaffRepo{listed: []*model.Staff{staffMember("Grace Udo")}, total: 1}
	svc := newTestService(repo)

	status := model.StaffStatusOnDuty
	filter := &model.StaffFilter{Status: &status}

	page, err := svc.Search(context.Background(), SearchQuery{
		Identifier: IdentifierName,
		Value:      "grace",
		Filter:     filter,
		Page:       1,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.nameCalls)
	assert.Same(t, filter, repo.nameFilter)
	assert.Equal(t, 1, page.TotalPages)
}

func TestSearchFilterOnlyListsByRole(t *testing.T) {
	repo := &fakeStaffRepo{listed: []*model.Staff{staffMember("Dr Bello")}, total: 25}
	svc := newTestService(repo)

	role := model.RoleDoctor
	page, err := svc.Search(context.Background(), SearchQuery{
		Filter: &model.StaffFilter{Role: &role},
		Page:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.roleCalls)
	assert.Zero(t, repo.statusCalls)
	assert.Equal(t, model.RoleDoctor, repo.roleAsked)

	// 1-based page translated to a 0-based offset.
	assert.Equal(t, 1, repo.pageAsked.Page)
	assert.Equal(t, 3, page.TotalPages)
}

func TestSearchFilterOnlyListsByStatus(t *testing.T) {
	repo := &fakeStaffRepo{listed: []*model.Staff{staffMember("Nurse Eze")}, total: 1}
	svc := newTestService(repo)

	status := model.StaffStatusSuspended
	_, err := svc.Search(context.Background(), SearchQuery{
		Filter: &model.StaffFilter{Status: &status},
		Page:   1,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.statusCalls)
	assert.Zero(t, repo.roleCalls)
}

func TestSearchDefaultListing(t *testing.T) {
	repo := &fakeStaffRepo{listed: []*model.Staff{staffMember("Sam Ade")}, total: 21}
	svc := newTestService(repo)

	page, err := svc.Search(context.Background(), SearchQuery{
		Sort: model.StaffSortLastLogin,
		Page: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.listPagedCalls)
	assert.Equal(t, model.StaffSortLastLogin, repo.pageAsked.Sort)
	assert.Equal(t, testPageSize, repo.pageAsked.Size)
	assert.Equal(t, 3, page.TotalPages)
}

func TestSearchEmptyResultKeepsListNonNil(t *testing.T) {
	svc := newTestService(&fakeStaffRepo{})

	page, err := svc.Search(context.Background(), SearchQuery{Page: 1})

	require.NoError(t, err)
	assert.NotNil(t, page.StaffList)
	assert.Empty(t, page.StaffList)
	assert.Zero(t, page.TotalPages)
}
