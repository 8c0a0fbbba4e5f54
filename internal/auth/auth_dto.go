package auth

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// Identity mengembalikan username atau email, mana yang diisi frontend.
func (r LoginRequest) Identity() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name" binding:"required"`
	Phone           string `json:"phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type LoginResponse struct {
	UserID         int64  `json:"user_id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	SessionToken   string `json:"session_token"`
	EmployeeID     int64  `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	DepartmentID   *int64 `json:"department_id"`
	DepartmentName string `json:"department_name"`
}

type ProfileResponse struct {
	UserID         int64  `json:"user_id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	EmployeeID     int64  `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	DepartmentID   *int64 `json:"department_id"`
	DepartmentName string `json:"department_name"`
	JobTitle       string `json:"job_title"`
}

type RegisterResponse struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	EmployeeID int64  `json:"employee_id"`
	CreatedAt  string `json:"created_at"`
}
