package models

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is an admin-managed discount code. Lookup uses the business
// field Code; all other operations key on the store-generated ID.
type Coupon struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Discount    int       `json:"discount"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
}
