package company

type UpdateOfficeLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type OfficeLocationResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CompanyID   int64   `json:"company_id"`
	CompanyName string  `json:"company_name"`
}
