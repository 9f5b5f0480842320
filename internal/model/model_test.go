package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{"empty set", 0, 10, 0},
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single row", 1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 0, Size: 10}.Offset())
	assert.Equal(t, 20, PageRequest{Page: 2, Size: 10}.Offset())
}

func TestParseStaffFilterRoleBeforeStatus(t *testing.T) {
	filter, ok := ParseStaffFilter("DOCTOR")
	require.True(t, ok)
	require.NotNil(t, filter.Role)
	assert.Equal(t, RoleDoctor, *filter.Role)
	assert.Nil(t, filter.Status)

	filter, ok = ParseStaffFilter("ON_DUTY")
	require.True(t, ok)
	assert.Nil(t, filter.Role)
	require.NotNil(t, filter.Status)
	assert.Equal(t, StaffStatusOnDuty, *filter.Status)

	_, ok = ParseStaffFilter("WIZARD")
	assert.False(t, ok)
}

func TestParseStaffSort(t *testing.T) {
	sort, ok := ParseStaffSort("")
	assert.True(t, ok)
	assert.Equal(t, StaffSortDefault, sort)

	sort, ok = ParseStaffSort("descendingDate")
	assert.True(t, ok)
	assert.Equal(t, StaffSortDateDesc, sort)

	_, ok = ParseStaffSort("shoeSize")
	assert.False(t, ok)
}

func TestBillMapTotal(t *testing.T) {
	bills := BillMap{"consultation": 50, "lab": 120.5, "pharmacy": 30}
	assert.Equal(t, 200.5, bills.Total())
	assert.Zero(t, BillMap{}.Total())
	assert.Zero(t, BillMap(nil).Total())
}

func TestBillMapScan(t *testing.T) {
	var bills BillMap
	require.NoError(t, bills.Scan([]byte(`{"consultation":50}`)))
	assert.Equal(t, 50.0, bills["consultation"])

	require.NoError(t, bills.Scan(nil))
	assert.Empty(t, bills)

	assert.Error(t, bills.Scan(42))
}
