package service

import (
	"fmt"
	"time"

	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/lshigami/QuizMaster/internal/repository"
	"github.com/rs/zerolog/log"
)

// AttemptService grades quiz submissions and records Score rows.
type AttemptService interface {
	GetQuizWithQuestions(quizID uint) (*model.Quiz, []model.Question, error)
	SubmitAttempt(userID, quizID uint, answers map[uint]int) (*model.Score, error)
	LatestResult(userID, quizID uint) (*model.Score, error)
}

type attemptService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	scoreRepo    repository.ScoreRepository
}

func NewAttemptService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	scoreRepo repository.ScoreRepository,
) AttemptService {
	return &attemptService{quizRepo: quizRepo, questionRepo: questionRepo, scoreRepo: scoreRepo}
}

func (s *attemptService) GetQuizWithQuestions(quizID uint) (*model.Quiz, []model.Question, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.questionRepo.FindByQuizID(quizID)
	if err != nil {
		return nil, nil, err
	}
	return quiz, questions, nil
}

// SubmitAttempt grades the submitted answers against the quiz's questions and
// persists one immutable Score row. Each exact match on the correct option
// counts one point; unanswered questions count as incorrect. A quiz with no
// questions yields score 0 and percentage 0, not an error.
func (s *attemptService) SubmitAttempt(userID, quizID uint, answers map[uint]int) (*model.Score, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.FindByQuizID(quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	correct := 0
	for _, q := range questions {
		if selected, ok := answers[q.ID]; ok && selected == q.CorrectOption {
			correct++
		}
	}

	total := len(questions)
	percentage := 0.0
	if total > 0 {
		percentage = float64(correct) / float64(total) * 100
	}

	score := model.Score{
		UserID:         userID,
		QuizID:         quiz.ID,
		Score:          correct,
		TotalQuestions: total,
		Percentage:     percentage,
		AttemptedAt:    time.Now(),
	}
	if err := s.scoreRepo.Create(&score); err != nil {
		return nil, fmt.Errorf("failed to record score: %w", err)
	}

	log.Info().
		Uint("user_id", userID).
		Uint("quiz_id", quizID).
		Int("score", correct).
		Int("total", total).
		Float64("percentage", percentage).
		Msg("Quiz attempt graded")
	return &score, nil
}

// LatestResult returns the most recent Score for the user+quiz pair.
func (s *attemptService) LatestResult(userID, quizID uint) (*model.Score, error) {
	return s.scoreRepo.FindLatestByUserAndQuiz(userID, quizID)
}
