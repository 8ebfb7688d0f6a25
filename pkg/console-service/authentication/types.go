package authentication

// LoginRequest
type LoginRequest struct {
	LoginEmail string `json:"login_email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
}

// LoginResponse - for Login Response
type LoginResponse struct {
	Id         string `json:"_id"`
	Name       string `json:"name"`
	EmployeeId string `json:"employee_id"`
	UserRole   string `json:"role"`
	Token      string `json:"token"`
}

type RegisterRequest struct {
	Name       string `json:"name" validate:"required"`
	EmployeeId string `json:"employee_id" validate:"required"`
	LoginEmail string `json:"login_email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// ChangePasswordRequest - Dto for change password Request
type ChangePasswordRequest struct {
	OldPwd string `json:"old_pwd" bson:"old_pwd" validate:"required"`
	NewPwd string `json:"new_pwd" bson:"new_pwd" validate:"required,min=6"`
}
