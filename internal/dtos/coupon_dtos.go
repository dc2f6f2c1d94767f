package dtos

type CreateCouponRequest struct {
	Code        string `json:"code" validate:"required"`
	Discount    int    `json:"discount" validate:"gte=0,lte=100"`
	Description string `json:"description"`
}

type UpdateCouponRequest struct {
	Available *bool `json:"available" validate:"required"`
}
