package model

import (
	"time"

	"gorm.io/gorm"
)

// UserTest is one participant's attempt at one test. Whether a (user, test)
// pair may appear more than once is a deployment choice, so no unique index
// is declared here; the session service enforces the configured policy.
type UserTest struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	User         User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TestID       uint           `json:"test_id" gorm:"not null;index"`
	Test         Test           `json:"test,omitempty" gorm:"foreignKey:TestID"`
	UserLocation string         `json:"user_location"`
	Image        string         `json:"image"`
	Recording    string         `json:"recording"`
	Activities   []Activity     `json:"activities,omitempty" gorm:"foreignKey:UserTestID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
