package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoleType defines the closed set of user roles. Free-text roles are
// rejected at the boundary so a typo can never grant or deny access.
type RoleType string

const (
	RoleUser   RoleType = "user"
	RoleMember RoleType = "member"
	RoleAdmin  RoleType = "admin"
)

// ParseRole converts a string into a RoleType.
func ParseRole(s string) (RoleType, error) {
	switch RoleType(s) {
	case RoleUser, RoleMember, RoleAdmin:
		return RoleType(s), nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}

// User is an application user. Email is the logical unique key;
// uniqueness is checked before insert (registration is idempotent).
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      RoleType  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
