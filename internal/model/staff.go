package model

import (
	"time"
)

type Role string

const (
	RoleNurse        Role = "NURSE"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleDoctor       Role = "DOCTOR"
	RolePharmacist   Role = "PHARMACIST"
	RoleTechnician   Role = "TECHNICIAN"
)

// ParseRole decodes a role token. The boolean reports whether the token
// belongs to the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleNurse, RoleReceptionist, RoleDoctor, RolePharmacist, RoleTechnician:
		return Role(s), true
	}
	return "", false
}

type StaffStatus string

const (
	StaffStatusOnDuty    StaffStatus = "ON_DUTY"
	StaffStatusOff       StaffStatus = "OFF"
	StaffStatusSuspended StaffStatus = "SUSPENDED"
)

func ParseStaffStatus(s string) (StaffStatus, bool) {
	switch StaffStatus(s) {
	case StaffStatusOnDuty, StaffStatusOff, StaffStatusSuspended:
		return StaffStatus(s), true
	}
	return "", false
}

// StaffSort selects the ordering of a paginated staff listing.
type StaffSort int

const (
	StaffSortDefault StaffSort = iota
	StaffSortDateAsc
	StaffSortDateDesc
	StaffSortLastLogin
)

// ParseStaffSort decodes the sort token accepted by the staff listing
// endpoint. An empty token selects the default ordering.
func ParseStaffSort(s string) (StaffSort, bool) {
	switch s {
	case "":
		return StaffSortDefault, true
	case "ascendingDate":
		return StaffSortDateAsc, true
	case "descendingDate":
		return StaffSortDateDesc, true
	case "lastLogin":
		return StaffSortLastLogin, true
	}
	return StaffSortDefault, false
}

// StaffFilter is a closed tagged variant: exactly one of Role or Status is
// set once a filter token has been decoded.
type StaffFilter struct {
	Role   *Role
	Status *StaffStatus
}

// ParseStaffFilter tests a filter token against the role set, then the
// status set. A token matching neither is rejected.
func ParseStaffFilter(s string) (*StaffFilter, bool) {
	if role, ok := ParseRole(s); ok {
		return &StaffFilter{Role: &role}, true
	}
	if status, ok := ParseStaffStatus(s); ok {
		return &StaffFilter{Status: &status}, true
	}
	return nil, false
}

type Staff struct {
	PersonRecord
	Username     string      `db:"username" json:"username"`
	PasswordHash string      `db:"password_hash" json:"-"`
	Image        string      `db:"image" json:"image,omitempty"`
	Role         Role        `db:"role" json:"role"`
	Status       StaffStatus `db:"status" json:"status"`
	LastLogin    time.Time   `db:"last_login" json:"last_login"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
}

type CreateStaffRequest struct {
	FullName    string    `json:"full_name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Phone       string    `json:"phone" binding:"required"`
	NationalID  string    `json:"national_id" binding:"required"`
	Address     string    `json:"address" binding:"required"`
	DateOfBirth time.Time `json:"date_of_birth" binding:"required"`
	Gender      string    `json:"gender" binding:"required,oneof=MALE FEMALE"`
	Username    string    `json:"username" binding:"required"`
	Password    string    `json:"password" binding:"required,min=8"`
	Image       string    `json:"image"`
	Role        Role      `json:"role" binding:"required,staffrole"`
}

type UpdateStaffRequest struct {
	FullName *string      `json:"full_name"`
	Email    *string      `json:"email" binding:"omitempty,email"`
	Phone    *string      `json:"phone"`
	Address  *string      `json:"address"`
	Image    *string      `json:"image"`
	Role     *Role        `json:"role" binding:"omitempty,staffrole"`
	Status   *StaffStatus `json:"status" binding:"omitempty,staffstatus"`
	Password *string      `json:"password" binding:"omitempty,min=8"`
}

// StaffPage is the uniform paginated result every staff listing variant
// produces, whichever retrieval strategy built it.
type StaffPage struct {
	TotalPages int      `json:"total_pages"`
	StaffList  []*Staff `json:"staff_list"`
}
