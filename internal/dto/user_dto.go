package dto

import "time"

// UserCreateDTO registers a participant. The id is supplied by the caller
// (roster import), not generated by the store.
type UserCreateDTO struct {
	ID     uint    `json:"id" binding:"required"`
	Name   string  `json:"name" binding:"required"`
	Branch string  `json:"branch"`
	Image  *string `json:"image"`
}

type UserResponseDTO struct {
	ID        uint                 `json:"id"`
	Name      string               `json:"name"`
	Branch    string               `json:"branch"`
	Image     *string              `json:"image,omitempty"`
	UserTests []SessionResponseDTO `json:"user_tests,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}
