package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentHistory is an append-only record of a completed rent payment.
// Recording one also updates the payer's agreement (lastPayment, month).
type PaymentHistory struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Month       string    `json:"month"`
	Rent        int64     `json:"rent"`
	PaymentDate string    `json:"paymentDate"`
	CreatedAt   time.Time `json:"createdAt"`
}
