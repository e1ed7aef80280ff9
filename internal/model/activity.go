package model

import (
	"time"

	"gorm.io/gorm"
)

// Activity is a timestamped event flagged during a session by the capture
// agent. Rows are append-only; nothing in the API mutates or deletes them.
type Activity struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	UserTestID uint           `json:"user_test_id" gorm:"not null;index"`
	UserTest   UserTest       `json:"user_test,omitempty" gorm:"foreignKey:UserTestID"`
	TimeIssue  time.Time      `json:"time_issue" gorm:"not null"`
	Type       string         `json:"type" gorm:"not null"` // free-form classification tag
	Screenshot string         `json:"screenshot"`
	Metadata   string         `json:"metadata" gorm:"type:text"` // opaque, stored as-is
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
