package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

type AdminProfile struct {
	ID       string `json:"id" example:"6f1c2a4e-0b7d-4c59-9d1e-2f3a4b5c6d7e"`
	Username string `json:"username" example:"admin"`
	Email    string `json:"email" example:"admin@parking.local"`
	Role     string `json:"role" example:"admin"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  AdminProfile `json:"user"`
}
