package models

import (
	"time"

	"github.com/google/uuid"
)

// Apartment is a rentable unit. Read-only via the API; rows are
// loaded by seeding or out-of-band imports.
type Apartment struct {
	ID          uuid.UUID `json:"id"`
	ApartmentNo string    `json:"apartmentNo"`
	FloorNo     string    `json:"floorNo"`
	BlockName   string    `json:"blockName"`
	Image       string    `json:"image"`
	Rent        int64     `json:"rent"`
	CreatedAt   time.Time `json:"createdAt"`
}
