package dto

import "time"

// SessionCreateDTO starts a participant's attempt at a test.
type SessionCreateDTO struct {
	UserID       uint   `json:"user_id" binding:"required"`
	TestID       uint   `json:"test_id" binding:"required"`
	UserLocation string `json:"user_location"`
	Image        string `json:"image"`
	Recording    string `json:"recording"`
}

// SessionResponseDTO is one UserTest row with its artifacts.
type SessionResponseDTO struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	TestID       uint      `json:"test_id"`
	UserLocation string    `json:"user_location"`
	Image        string    `json:"image"`
	Recording    string    `json:"recording"`
	CreatedAt    time.Time `json:"created_at"`
}
