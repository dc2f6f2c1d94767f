package dtos

type AdminProfileResponse struct {
	TotalApartments  int64   `json:"totalApartments"`
	TotalUsers       int64   `json:"totalUsers"`
	TotalMembers     int64   `json:"totalMembers"`
	AvailablePercent float64 `json:"availablePercent"`
	RentedPercent    float64 `json:"rentedPercent"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
