package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Title        string         `json:"title" gorm:"size:120;not null"`
	ChapterID    uint           `json:"chapter_id" gorm:"not null;index"`
	Chapter      Chapter        `json:"chapter,omitempty" gorm:"foreignKey:ChapterID"`
	DateOfQuiz   time.Time      `json:"date_of_quiz" gorm:"not null"`
	TimeDuration string         `json:"time_duration" gorm:"size:5;not null"` // HH:MM, descriptive only
	Remarks      string         `json:"remarks,omitempty" gorm:"size:500"`
	Questions    []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Scores       []Score        `json:"scores,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
