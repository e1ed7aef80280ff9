package dto

import "time"

// AdminSummaryDTO is the public projection of an admin: id, name, email and
// nothing else. The password hash never crosses the service boundary.
type AdminSummaryDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AdminCreateDTO is the direct-create body on /api/admins.
type AdminCreateDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AdminResponseDTO is an admin profile together with its owned tests.
type AdminResponseDTO struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Tests     []TestResponseDTO `json:"tests"`
	CreatedAt time.Time         `json:"created_at"`
}
