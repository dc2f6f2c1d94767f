package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AgreementStatusType defines the possible states of a rental agreement.
type AgreementStatusType string

const (
	AgreementStatusPending   AgreementStatusType = "pending"
	AgreementStatusCheckedIn AgreementStatusType = "checked in"
	AgreementStatusRejected  AgreementStatusType = "rejected"
)

// ParseAgreementStatus converts a string into an AgreementStatusType.
func ParseAgreementStatus(s string) (AgreementStatusType, error) {
	switch AgreementStatusType(s) {
	case AgreementStatusPending, AgreementStatusCheckedIn, AgreementStatusRejected:
		return AgreementStatusType(s), nil
	default:
		return "", fmt.Errorf("invalid agreement status: %q", s)
	}
}

// Agreement is a rental agreement application. At most one agreement
// is looked up per email; LastPayment and Month are upserted whenever
// a payment for that email is recorded.
type Agreement struct {
	ID          uuid.UUID           `json:"id"`
	UserName    string              `json:"userName"`
	Email       string              `json:"email"`
	FloorNo     string              `json:"floorNo"`
	BlockName   string              `json:"blockName"`
	ApartmentNo string              `json:"apartmentNo"`
	Rent        int64               `json:"rent"`
	Status      AgreementStatusType `json:"status"`
	AcceptDate  *string             `json:"acceptDate,omitempty"`
	LastPayment *string             `json:"lastPayment,omitempty"`
	Month       *string             `json:"month,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}
