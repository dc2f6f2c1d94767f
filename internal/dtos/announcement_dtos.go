package dtos

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Details string `json:"details" validate:"required"`
}
