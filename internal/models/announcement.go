package models

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a notice posted by an admin, readable by any
// authenticated user. There is no update or delete lifecycle.
type Announcement struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}
