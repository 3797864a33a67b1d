package model

import (
	"time"

	"gorm.io/gorm"
)

// Question stores one multiple-choice question. Option1 and Option2 are
// mandatory, Option3 and Option4 may be empty. CorrectOption is 1-based and
// must point at a populated option slot.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuestionText  string         `json:"question_text" gorm:"size:500;not null"`
	Option1       string         `json:"option1" gorm:"size:200;not null"`
	Option2       string         `json:"option2" gorm:"size:200;not null"`
	Option3       string         `json:"option3,omitempty" gorm:"size:200"`
	Option4       string         `json:"option4,omitempty" gorm:"size:200"`
	CorrectOption int            `json:"correct_option" gorm:"not null"`
	QuizID        uint           `json:"quiz_id" gorm:"not null;index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Options returns the four option slots in order, empty strings included.
func (q *Question) Options() [4]string {
	return [4]string{q.Option1, q.Option2, q.Option3, q.Option4}
}
