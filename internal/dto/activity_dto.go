package dto

import "time"

// ActivityCreateDTO records one flagged event against a session. TimeIssue is
// accepted as a string and parsed server-side; the capture agent sends several
// timestamp layouts.
type ActivityCreateDTO struct {
	UserTestID uint   `json:"user_test_id" binding:"required"`
	TimeIssue  string `json:"time_issue" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Screenshot string `json:"screenshot"`
	Metadata   string `json:"metadata"`
}

type ActivityResponseDTO struct {
	ID         uint                `json:"id"`
	UserTestID uint                `json:"user_test_id"`
	UserTest   *SessionResponseDTO `json:"user_test,omitempty"`
	TimeIssue  time.Time           `json:"time_issue"`
	Type       string              `json:"type"`
	Screenshot string              `json:"screenshot,omitempty"`
	Metadata   string              `json:"metadata,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}
