package routes

const (
	// Health
	Health = "/health"

	// Token issuing
	JWT = "/api/jwt"

	// Apartments
	Apartments = "/api/apartments"

	// Users
	Users           = "/api/users"
	UserAdminCheck  = "/api/users/admin/{email}"
	UserMemberCheck = "/api/users/member/{email}"
	UserByEmail     = "/api/users/{email}"
	RemoveMember    = "/api/remove-member"

	// Agreements
	Agreement       = "/api/agreement"
	SingleAgreement = "/api/single-agreement"
	MakePayment     = "/api/make-payment"
	AgreementByID   = "/api/agreements/{id}"

	// Coupons
	Coupons          = "/api/coupons"
	AvailableCoupons = "/api/available-coupons"
	CouponByCode     = "/api/coupons/{code}"
	CouponByID       = "/api/coupons/{id}"

	// Announcements
	Announcements = "/api/announcements"

	// Payments
	PaymentHistory      = "/api/payment-history"
	CreatePaymentIntent = "/api/create-payment-intent"

	// Admin dashboard
	AdminProfileInfo = "/api/admin-profile-info"
)
