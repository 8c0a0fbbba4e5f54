package leave

type CreateRequest struct {
	LeaveType string `json:"leave_type" binding:"required"`
	DateFrom  string `json:"date_from" binding:"required"` // YYYY-MM-DD
	DateTo    string `json:"date_to" binding:"required"`
	Reason    string `json:"reason"`
}

type LeaveResponse struct {
	ID        int64  `json:"id"`
	LeaveType string `json:"leave_type"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
	Reason    string `json:"reason,omitempty"`
	Status    string `json:"status"`
	Days      int    `json:"days"`
}
