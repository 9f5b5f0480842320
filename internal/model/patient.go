package model

import (
	"time"
)

type Patient struct {
	PersonRecord
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreatePatientRequest struct {
	FullName    string    `json:"full_name" binding:"required"`
	Email       string    `json:"email" binding:"omitempty,email"`
	Phone       string    `json:"phone" binding:"required"`
	NationalID  string    `json:"national_id" binding:"required"`
	Address     string    `json:"address" binding:"required"`
	DateOfBirth time.Time `json:"date_of_birth" binding:"required"`
	Gender      string    `json:"gender" binding:"required,oneof=MALE FEMALE"`
}

type UpdatePatientRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}
