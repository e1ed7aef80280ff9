package model

import (
	"time"

	"gorm.io/gorm"
)

// User is an exam taker. IDs come from an external roster, not the store,
// so the primary key carries no autoIncrement behavior on insert.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"not null"`
	Branch    string         `json:"branch"`
	Image     *string        `json:"image,omitempty"`
	UserTests []UserTest     `json:"user_tests,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
