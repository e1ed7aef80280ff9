package model

import (
	"time"

	"gorm.io/gorm"
)

// Test is a single proctored exam instance, owned by exactly one Admin.
type Test struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	AdminID   uint           `json:"admin_id" gorm:"not null;index"`
	Admin     Admin          `json:"admin,omitempty" gorm:"foreignKey:AdminID"`
	URL       string         `json:"url" gorm:"not null"`
	Name      string         `json:"name" gorm:"not null"`
	Date      time.Time      `json:"date"`
	Time      string         `json:"time"` // wall-clock "15:04:05" at creation
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	UserTests []UserTest     `json:"user_tests,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
