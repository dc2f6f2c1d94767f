package dtos

type RegisterUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

// RegisterUserResponse reports either the new id or, when the email
// is already registered, a message with a null insertedId.
type RegisterUserResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type MemberCheckResponse struct {
	Member bool `json:"member"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type RemoveMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}
