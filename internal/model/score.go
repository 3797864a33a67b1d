package model

import (
	"time"

	"gorm.io/gorm"
)

// Score is one graded quiz attempt. Rows are append-only, created once per
// submission and never edited.
type Score struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	User           User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	QuizID         uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz           Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Score          int            `json:"score" gorm:"not null"`
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	Percentage     float64        `json:"percentage" gorm:"not null"`
	AttemptedAt    time.Time      `json:"attempted_at" gorm:"autoCreateTime;index"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
