package service

import (
	"testing"

	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func basicsQuiz() (*model.Quiz, []model.Question) {
	quiz := &model.Quiz{ID: 7, Title: "Basics", ChapterID: 3}
	questions := []model.Question{
		{
			ID:            21,
			QuizID:        7,
			QuestionText:  "What is 2 + 2?",
			Option1:       "3",
			Option2:       "4",
			Option3:       "5",
			Option4:       "22",
			CorrectOption: 2,
		},
	}
	return quiz, questions
}

func TestSubmitAttempt_CorrectAnswer(t *testing.T) {
	quiz, questions := basicsQuiz()

	quizRepo := new(mockQuizRepository)
	questionRepo := new(mockQuestionRepository)
	scoreRepo := new(mockScoreRepository)
	quizRepo.On("FindByID", uint(7)).Return(quiz, nil)
	questionRepo.On("FindByQuizID", uint(7)).Return(questions, nil)
	scoreRepo.On("Create", mock.AnythingOfType("*model.Score")).Return(nil)

	svc := NewAttemptService(quizRepo, questionRepo, scoreRepo)
	score, err := svc.SubmitAttempt(42, 7, map[uint]int{21: 2})

	require.NoError(t, err)
	assert.Equal(t, uint(42), score.UserID)
	assert.Equal(t, uint(7), score.QuizID)
	assert.Equal(t, 1, score.Score)
	assert.Equal(t, 1, score.TotalQuestions)
	assert.InDelta(t, 100.0, score.Percentage, 0.001)
	scoreRepo.AssertExpectations(t)
}

func TestSubmitAttempt_WrongAndUnanswered(t *testing.T) {
	quiz := &model.Quiz{ID: 7, Title: "Basics"}
	questions := []model.Question{
		{ID: 1, QuizID: 7, Option1: "a", Option2: "b", CorrectOption: 1},
		{ID: 2, QuizID: 7, Option1: "a", Option2: "b", CorrectOption: 2},
		{ID: 3, QuizID: 7, Option1: "a", Option2: "b", CorrectOption: 1},
		{ID: 4, QuizID: 7, Option1: "a", Option2: "b", CorrectOption: 2},
	}

	quizRepo := new(mockQuizRepository)
	questionRepo := new(mockQuestionRepository)
	scoreRepo := new(mockScoreRepository)
	quizRepo.On("FindByID", uint(7)).Return(quiz, nil)
	questionRepo.On("FindByQuizID", uint(7)).Return(questions, nil)
	scoreRepo.On("Create", mock.AnythingOfType("*model.Score")).Return(nil)

	svc := NewAttemptService(quizRepo, questionRepo, scoreRepo)
	// q1 correct, q2 wrong, q3 and q4 unanswered.
	score, err := svc.SubmitAttempt(42, 7, map[uint]int{1: 1, 2: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, score.Score)
	assert.Equal(t, 4, score.TotalQuestions)
	assert.InDelta(t, 25.0, score.Percentage, 0.001)
}

func TestSubmitAttempt_AnswerForUnknownQuestionIgnored(t *testing.T) {
	quiz, questions := basicsQuiz()

	quizRepo := new(mockQuizRepository)
	questionRepo := new(mockQuestionRepository)
	scoreRepo := new(mockScoreRepository)
	quizRepo.On("FindByID", uint(7)).Return(quiz, nil)
	questionRepo.On("FindByQuizID", uint(7)).Return(questions, nil)
	scoreRepo.On("Create", mock.AnythingOfType("*model.Score")).Return(nil)

	svc := NewAttemptService(quizRepo, questionRepo, scoreRepo)
	score, err := svc.SubmitAttempt(42, 7, map[uint]int{999: 2})

	require.NoError(t, err)
	assert.Equal(t, 0, score.Score)
	assert.Equal(t, 1, score.TotalQuestions)
	assert.InDelta(t, 0.0, score.Percentage, 0.001)
}

func TestSubmitAttempt_EmptyQuiz(t *testing.T) {
	quiz := &model.Quiz{ID: 7, Title: "Empty"}

	quizRepo := new(mockQuizRepository)
	questionRepo := new(mockQuestionRepository)
	scoreRepo := new(mockScoreRepository)
	quizRepo.On("FindByID", uint(7)).Return(quiz, nil)
	questionRepo.On("FindByQuizID", uint(7)).Return([]model.Question{}, nil)
	scoreRepo.On("Create", mock.AnythingOfType("*model.Score")).Return(nil)

	svc := NewAttemptService(quizRepo, questionRepo, scoreRepo)
	score, err := svc.SubmitAttempt(42, 7, map[uint]int{})

	require.NoError(t, err)
	assert.Equal(t, 0, score.Score)
	assert.Equal(t, 0, score.TotalQuestions)
	assert.InDelta(t, 0.0, score.Percentage, 0.001)
}

func TestSubmitAttempt_QuizNotFound(t *testing.T) {
	quizRepo := new(mockQuizRepository)
	questionRepo := new(mockQuestionRepository)
	scoreRepo := new(mockScoreRepository)
	quizRepo.On("FindByID", uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewAttemptService(quizRepo, questionRepo, scoreRepo)
	_, err := svc.SubmitAttempt(42, 404, map[uint]int{})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	scoreRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGetQuizWithQuestions(t *testing.T) {
	quiz, questions := basicsQuiz()

	quizRepo := new(mockQuizRepository)
	questionRepo := new(mockQuestionRepository)
	scoreRepo := new(mockScoreRepository)
	quizRepo.On("FindByID", uint(7)).Return(quiz, nil)
	questionRepo.On("FindByQuizID", uint(7)).Return(questions, nil)

	svc := NewAttemptService(quizRepo, questionRepo, scoreRepo)
	gotQuiz, gotQuestions, err := svc.GetQuizWithQuestions(7)

	require.NoError(t, err)
	assert.Equal(t, "Basics", gotQuiz.Title)
	require.Len(t, gotQuestions, 1)
	assert.Equal(t, "What is 2 + 2?", gotQuestions[0].QuestionText)
}

func TestLatestResult(t *testing.T) {
	want := &model.Score{ID: 5, UserID: 42, QuizID: 7, Score: 1, TotalQuestions: 1, Percentage: 100}

	quizRepo := new(mockQuizRepository)
	questionRepo := new(mockQuestionRepository)
	scoreRepo := new(mockScoreRepository)
	scoreRepo.On("FindLatestByUserAndQuiz", uint(42), uint(7)).Return(want, nil)

	svc := NewAttemptService(quizRepo, questionRepo, scoreRepo)
	got, err := svc.LatestResult(42, 7)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
