package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/QuizMaster/internal/dto"
	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/lshigami/QuizMaster/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrQuizNotFound      = errors.New("quiz does not exist")
	ErrCorrectOptionGap  = errors.New("correct option must reference a populated option")
	ErrQuestionQuizMixup = errors.New("question does not belong to this quiz")
)

type QuestionService interface {
	AddQuestion(quizID uint, form dto.QuestionForm) (*model.Question, error)
	ListQuestions(quizID uint) ([]model.Question, error)
	UpdateQuestion(quizID uint, form dto.QuestionForm) (*model.Question, error)
	DeleteQuestion(quizID, questionID uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	quizRepo     repository.QuizRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, quizRepo repository.QuizRepository) QuestionService {
	return &questionService{questionRepo: questionRepo, quizRepo: quizRepo}
}

func (s *questionService) AddQuestion(quizID uint, form dto.QuestionForm) (*model.Question, error) {
	if err := s.checkQuiz(quizID); err != nil {
		return nil, err
	}
	if err := checkCorrectOption(form); err != nil {
		return nil, err
	}
	question := form.ToModel(quizID)
	if err := s.questionRepo.Create(&question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return &question, nil
}

func (s *questionService) ListQuestions(quizID uint) ([]model.Question, error) {
	if err := s.checkQuiz(quizID); err != nil {
		return nil, err
	}
	return s.questionRepo.FindByQuizID(quizID)
}

func (s *questionService) UpdateQuestion(quizID uint, form dto.QuestionForm) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(form.QuestionID)
	if err != nil {
		return nil, err
	}
	if question.QuizID != quizID {
		return nil, ErrQuestionQuizMixup
	}
	if err := checkCorrectOption(form); err != nil {
		return nil, err
	}
	form.ApplyTo(question)
	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	return question, nil
}

func (s *questionService) DeleteQuestion(quizID, questionID uint) error {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		return err
	}
	if question.QuizID != quizID {
		return ErrQuestionQuizMixup
	}
	return s.questionRepo.Delete(questionID)
}

func (s *questionService) checkQuiz(quizID uint) error {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("failed to check quiz: %w", err)
	}
	return nil
}

// checkCorrectOption rejects a correct option that points at an empty slot.
// The binding layer already bounds it to 1..4.
func checkCorrectOption(form dto.QuestionForm) error {
	options := [4]string{form.Option1, form.Option2, form.Option3, form.Option4}
	if form.CorrectOption < 1 || form.CorrectOption > 4 {
		return ErrCorrectOptionGap
	}
	if options[form.CorrectOption-1] == "" {
		return ErrCorrectOptionGap
	}
	return nil
}
