package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Username      string         `json:"username" gorm:"size:80;not null;uniqueIndex"`
	Email         string         `json:"email" gorm:"size:120;not null;uniqueIndex"`
	PasswordHash  string         `json:"-" gorm:"not null"`
	FullName      string         `json:"full_name" gorm:"size:120;not null"`
	Qualification string         `json:"qualification,omitempty" gorm:"size:120"`
	DateOfBirth   time.Time      `json:"date_of_birth" gorm:"not null"`
	IsAdmin       bool           `json:"is_admin" gorm:"not null;default:false"`
	Scores        []Score        `json:"scores,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
