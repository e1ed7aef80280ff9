package dto

// SignupDTO is the request body for admin registration.
type SignupDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginDTO is the request body for admin authentication.
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupResponseDTO mirrors the original signup reply shape.
type SignupResponseDTO struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// LoginResponseDTO carries the issued token and the admin's public profile.
type LoginResponseDTO struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Admin   AdminSummaryDTO `json:"admin"`
}
