package dto

import "time"

// TestCreateDTO is the body for an authenticated admin creating a test.
// The owner, creation instant and active flag are set server-side.
type TestCreateDTO struct {
	URL  string `json:"url" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// TestResponseDTO is the full test projection, optionally carrying the owning
// admin and the sessions recorded against it.
type TestResponseDTO struct {
	ID        uint                 `json:"id"`
	AdminID   uint                 `json:"admin_id"`
	Admin     *AdminSummaryDTO     `json:"admin,omitempty"`
	URL       string               `json:"url"`
	Name      string               `json:"name"`
	Date      time.Time            `json:"date"`
	Time      string               `json:"time"`
	IsActive  bool                 `json:"is_active"`
	UserTests []SessionResponseDTO `json:"user_tests,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

// TestCreatedDTO mirrors the original creation reply shape.
type TestCreatedDTO struct {
	Message string          `json:"message"`
	Test    TestResponseDTO `json:"test"`
}

// TestUsersResponseDTO lists the participants of a test, one entry per
// session, so a user that attempted twice appears twice.
type TestUsersResponseDTO struct {
	Users []UserResponseDTO `json:"users"`
}
