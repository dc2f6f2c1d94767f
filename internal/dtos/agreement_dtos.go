package dtos

type CreateAgreementRequest struct {
	UserName    string `json:"userName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	FloorNo     string `json:"floorNo" validate:"required"`
	BlockName   string `json:"blockName" validate:"required"`
	ApartmentNo string `json:"apartmentNo" validate:"required"`
	Rent        int64  `json:"rent" validate:"required,gt=0"`
}

type UpdateAgreementRequest struct {
	Status     string `json:"status" validate:"required"`
	AcceptDate string `json:"acceptDate"`
}
