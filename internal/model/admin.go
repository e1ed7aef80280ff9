package model

import (
	"time"

	"gorm.io/gorm"
)

// Admin is a credential-holding account that owns tests.
type Admin struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Email     string         `json:"email" gorm:"not null;uniqueIndex"`
	Name      string         `json:"name" gorm:"not null"`
	Password  string         `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Tests     []Test         `json:"tests,omitempty" gorm:"foreignKey:AdminID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
