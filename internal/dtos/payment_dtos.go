package dtos

// PaymentIntentRequest carries the rent amount in major units.
type PaymentIntentRequest struct {
	Rent float64 `json:"rent" validate:"required,gt=0"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type RecordPaymentRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Month       string `json:"month" validate:"required"`
	Rent        int64  `json:"rent" validate:"required,gt=0"`
	PaymentDate string `json:"paymentDate" validate:"required"`
}
