package model

import (
	"time"

	"github.com/google/uuid"
)

// PersonRecord contains the identity fields shared by every person the
// clinic tracks. Staff and Patient embed it instead of inheriting from a
// common user entity.
type PersonRecord struct {
	ID          uuid.UUID `db:"id" json:"id"`
	FullName    string    `db:"full_name" json:"full_name"`
	Email       string    `db:"email" json:"email"`
	Phone       string    `db:"phone" json:"phone"`
	NationalID  string    `db:"national_id" json:"national_id"`
	Address     string    `db:"address" json:"address"`
	DateOfBirth time.Time `db:"date_of_birth" json:"date_of_birth"`
	Gender      string    `db:"gender" json:"gender"`
}

// PageRequest carries 0-based pagination parameters into the repository
// layer. Handlers accept 1-based page numbers and translate before any
// query is issued.
type PageRequest struct {
	Page int
	Size int
	Sort StaffSort
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// TotalPages computes the page count for a result set of the given size.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize <= 0 {
		return 0
	}
	pages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		pages++
	}
	return int(pages)
}
