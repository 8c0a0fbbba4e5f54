package overtime

type SubmitRequest struct {
	OvertimeTypeID int64  `json:"overtime_type_id" binding:"required"`
	StartAt        string `json:"start_at" binding:"required"` // YYYY-MM-DD HH:MM, WIB
	EndAt          string `json:"end_at" binding:"required"`
	Reason         string `json:"reason"`
}

type OvertimeTypeResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	RateMultiplier float64 `json:"rate_multiplier"`
}

type OvertimeResponse struct {
	ID            int64   `json:"id"`
	TypeName      string  `json:"type_name"`
	StartAt       string  `json:"start_at"`
	EndAt         string  `json:"end_at"`
	DurationHours float64 `json:"duration_hours"`
	Reason        string  `json:"reason,omitempty"`
	Status        string  `json:"status"`
}
