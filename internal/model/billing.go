package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusPaid          PaymentStatus = "PAID"
	PaymentStatusCancelled     PaymentStatus = "CANCELLED"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusPartiallyPaid,
		PaymentStatusPaid, PaymentStatusCancelled:
		return PaymentStatus(s), true
	}
	return "", false
}

// BillMap maps a bill type to its amount and is stored as a jsonb column.
type BillMap map[string]float64

func (b BillMap) Value() (driver.Value, error) {
	if b == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(b)
}

func (b *BillMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	case nil:
		*b = BillMap{}
		return nil
	}
	return fmt.Errorf("unsupported bill map source type %T", src)
}

// Total sums every bill amount in the map.
func (b BillMap) Total() float64 {
	var total float64
	for _, amount := range b {
		total += amount
	}
	return total
}

// Billing references both the patient it charges and the appointment it was
// raised for. The appointment reference is what the manager report joins on.
type Billing struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	PatientID     uuid.UUID     `db:"patient_id" json:"patient_id"`
	AppointmentID uuid.UUID     `db:"appointment_id" json:"appointment_id"`
	Bills         BillMap       `db:"bills" json:"bills"`
	TotalAmount   float64       `db:"total_amount" json:"total_amount"`
	PaymentMethod string        `db:"payment_method" json:"payment_method"`
	AmountPaid    float64       `db:"amount_paid" json:"amount_paid"`
	Status        PaymentStatus `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

type CreateBillingRequest struct {
	PatientID     uuid.UUID     `json:"patient_id" binding:"required"`
	AppointmentID uuid.UUID     `json:"appointment_id" binding:"required"`
	Bills         BillMap       `json:"bills" binding:"required"`
	PaymentMethod string        `json:"payment_method" binding:"required"`
	AmountPaid    float64       `json:"amount_paid" binding:"gte=0"`
	Status        PaymentStatus `json:"status" binding:"required,paymentstatus"`
}

type UpdateBillingRequest struct {
	Bills         BillMap        `json:"bills"`
	PaymentMethod *string        `json:"payment_method"`
	AmountPaid    *float64       `json:"amount_paid"`
	Status        *PaymentStatus `json:"status" binding:"omitempty,paymentstatus"`
}
