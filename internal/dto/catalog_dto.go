package dto

import (
	"time"

	"github.com/lshigami/QuizMaster/internal/model"
)

// SubjectForm binds subject create/edit submissions.
type SubjectForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}

// ToModel maps a create submission to a fresh Subject.
func (f *SubjectForm) ToModel() model.Subject {
	return model.Subject{Name: f.Name, Description: f.Description}
}

// ApplyTo overwrites the mutable fields of an existing Subject.
func (f *SubjectForm) ApplyTo(s *model.Subject) {
	s.Name = f.Name
	s.Description = f.Description
}

// ChapterForm binds chapter create/edit submissions.
type ChapterForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	SubjectID   uint   `form:"subject_id" binding:"required"`
}

func (f *ChapterForm) ToModel() model.Chapter {
	return model.Chapter{Name: f.Name, Description: f.Description, SubjectID: f.SubjectID}
}

func (f *ChapterForm) ApplyTo(c *model.Chapter) {
	c.Name = f.Name
	c.Description = f.Description
	c.SubjectID = f.SubjectID
}

// QuizForm binds quiz create/edit submissions. DateOfQuiz is an ISO date;
// Duration must match HH:MM (validated in the service layer).
type QuizForm struct {
	Title      string `form:"title" binding:"required"`
	SubjectID  uint   `form:"subject_id"`
	ChapterID  uint   `form:"chapter_id" binding:"required"`
	DateOfQuiz string `form:"date_of_quiz" binding:"required"`
	Duration   string `form:"duration" binding:"required"`
	Remarks    string `form:"remarks"`
}

// ParseDate validates and parses the submitted quiz date.
func (f *QuizForm) ParseDate() (time.Time, error) {
	return time.Parse("2006-01-02", f.DateOfQuiz)
}

// ToModel maps a create submission to a fresh Quiz. The date must already be
// validated via ParseDate.
func (f *QuizForm) ToModel(date time.Time) model.Quiz {
	return model.Quiz{
		Title:        f.Title,
		ChapterID:    f.ChapterID,
		DateOfQuiz:   date,
		TimeDuration: f.Duration,
		Remarks:      f.Remarks,
	}
}

func (f *QuizForm) ApplyTo(q *model.Quiz, date time.Time) {
	q.Title = f.Title
	q.ChapterID = f.ChapterID
	q.DateOfQuiz = date
	q.TimeDuration = f.Duration
	q.Remarks = f.Remarks
}

// QuestionForm binds question create/edit submissions. QuestionID is only
// present on edit and delete.
type QuestionForm struct {
	QuestionID    uint   `form:"question_id"`
	QuestionText  string `form:"question_text" binding:"required"`
	Option1       string `form:"option1" binding:"required"`
	Option2       string `form:"option2" binding:"required"`
	Option3       string `form:"option3"`
	Option4       string `form:"option4"`
	CorrectOption int    `form:"correct_option" binding:"required,min=1,max=4"`
}

func (f *QuestionForm) ToModel(quizID uint) model.Question {
	return model.Question{
		QuizID:        quizID,
		QuestionText:  f.QuestionText,
		Option1:       f.Option1,
		Option2:       f.Option2,
		Option3:       f.Option3,
		Option4:       f.Option4,
		CorrectOption: f.CorrectOption,
	}
}

func (f *QuestionForm) ApplyTo(q *model.Question) {
	q.QuestionText = f.QuestionText
	q.Option1 = f.Option1
	q.Option2 = f.Option2
	q.Option3 = f.Option3
	q.Option4 = f.Option4
	q.CorrectOption = f.CorrectOption
}

// ChapterOption is the JSON shape served to the dependent-dropdown lookup.
type ChapterOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
