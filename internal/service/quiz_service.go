package service

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/lshigami/QuizMaster/internal/dto"
	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/lshigami/QuizMaster/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrChapterNotFound = errors.New("chapter does not exist")
	ErrInvalidQuizDate = errors.New("quiz date must be a valid date")
	ErrQuizDateInPast  = errors.New("quiz date must be today or a future date")
	ErrInvalidDuration = errors.New("duration must be in HH:MM format")
)

var durationPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

type QuizService interface {
	CreateQuiz(form dto.QuizForm) (*model.Quiz, error)
	GetQuiz(id uint) (*model.Quiz, error)
	ListQuizzes() ([]model.Quiz, error)
	UpdateQuiz(id uint, form dto.QuizForm) (*model.Quiz, error)
	DeleteQuiz(id uint) error
}

type quizService struct {
	quizRepo    repository.QuizRepository
	chapterRepo repository.ChapterRepository
	now         func() time.Time
}

func NewQuizService(quizRepo repository.QuizRepository, chapterRepo repository.ChapterRepository) QuizService {
	return &quizService{quizRepo: quizRepo, chapterRepo: chapterRepo, now: time.Now}
}

// CreateQuiz validates the duration format and that the quiz date is today or
// later before persisting.
func (s *quizService) CreateQuiz(form dto.QuizForm) (*model.Quiz, error) {
	date, err := s.validateForm(form)
	if err != nil {
		return nil, err
	}
	// Compare against the local calendar day; the form date parses as UTC
	// midnight.
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, ErrQuizDateInPast
	}

	quiz := form.ToModel(date)
	if err := s.quizRepo.Create(&quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return &quiz, nil
}

func (s *quizService) GetQuiz(id uint) (*model.Quiz, error) {
	return s.quizRepo.FindByID(id)
}

func (s *quizService) ListQuizzes() ([]model.Quiz, error) {
	return s.quizRepo.FindAll()
}

// UpdateQuiz replaces the quiz's mutable fields. The date-not-in-past rule is
// intentionally not re-applied here; see DESIGN.md.
func (s *quizService) UpdateQuiz(id uint, form dto.QuizForm) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	date, err := s.validateForm(form)
	if err != nil {
		return nil, err
	}
	form.ApplyTo(quiz, date)
	if err := s.quizRepo.Update(quiz); err != nil {
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}
	return quiz, nil
}

// DeleteQuiz removes the quiz and all its questions and scores.
func (s *quizService) DeleteQuiz(id uint) error {
	return s.quizRepo.DeleteCascade(id)
}

func (s *quizService) validateForm(form dto.QuizForm) (time.Time, error) {
	date, err := form.ParseDate()
	if err != nil {
		return time.Time{}, ErrInvalidQuizDate
	}
	if !durationPattern.MatchString(form.Duration) {
		return time.Time{}, ErrInvalidDuration
	}
	if _, err := s.chapterRepo.FindByID(form.ChapterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, ErrChapterNotFound
		}
		return time.Time{}, fmt.Errorf("failed to check chapter: %w", err)
	}
	return date, nil
}
