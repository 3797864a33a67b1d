package service

import (
	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepository) FindByID(id uint) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepository) CountNonAdmin() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) ListNonAdmin(search string, page, perPage int) ([]model.User, int64, error) {
	args := m.Called(search, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepository) DeleteWithScores(id uint) error {
	return m.Called(id).Error(0)
}

type mockSubjectRepository struct {
	mock.Mock
}

func (m *mockSubjectRepository) Create(subject *model.Subject) error {
	return m.Called(subject).Error(0)
}

func (m *mockSubjectRepository) FindByID(id uint) (*model.Subject, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *mockSubjectRepository) FindAll() ([]model.Subject, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subject), args.Error(1)
}

func (m *mockSubjectRepository) FindByNameLike(search string) ([]model.Subject, error) {
	args := m.Called(search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subject), args.Error(1)
}

func (m *mockSubjectRepository) Update(subject *model.Subject) error {
	return m.Called(subject).Error(0)
}

func (m *mockSubjectRepository) DeleteCascade(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockSubjectRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockChapterRepository struct {
	mock.Mock
}

func (m *mockChapterRepository) Create(chapter *model.Chapter) error {
	return m.Called(chapter).Error(0)
}

func (m *mockChapterRepository) FindByID(id uint) (*model.Chapter, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chapter), args.Error(1)
}

func (m *mockChapterRepository) FindAll() ([]model.Chapter, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Chapter), args.Error(1)
}

func (m *mockChapterRepository) FindBySubjectID(subjectID uint) ([]model.Chapter, error) {
	args := m.Called(subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Chapter), args.Error(1)
}

func (m *mockChapterRepository) Update(chapter *model.Chapter) error {
	return m.Called(chapter).Error(0)
}

func (m *mockChapterRepository) DeleteCascade(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockChapterRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockQuizRepository struct {
	mock.Mock
}

func (m *mockQuizRepository) Create(quiz *model.Quiz) error {
	return m.Called(quiz).Error(0)
}

func (m *mockQuizRepository) FindByID(id uint) (*model.Quiz, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quiz), args.Error(1)
}

func (m *mockQuizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quiz), args.Error(1)
}

func (m *mockQuizRepository) FindAll() ([]model.Quiz, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Quiz), args.Error(1)
}

func (m *mockQuizRepository) FindFiltered(subjectSearch, quizSearch string) ([]model.Quiz, error) {
	args := m.Called(subjectSearch, quizSearch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Quiz), args.Error(1)
}

func (m *mockQuizRepository) Update(quiz *model.Quiz) error {
	return m.Called(quiz).Error(0)
}

func (m *mockQuizRepository) DeleteCascade(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockQuizRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockQuestionRepository struct {
	mock.Mock
}

func (m *mockQuestionRepository) Create(question *model.Question) error {
	return m.Called(question).Error(0)
}

func (m *mockQuestionRepository) FindByID(id uint) (*model.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *mockQuestionRepository) FindByQuizID(quizID uint) ([]model.Question, error) {
	args := m.Called(quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

func (m *mockQuestionRepository) Update(question *model.Question) error {
	return m.Called(question).Error(0)
}

func (m *mockQuestionRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type mockScoreRepository struct {
	mock.Mock
}

func (m *mockScoreRepository) Create(score *model.Score) error {
	return m.Called(score).Error(0)
}

func (m *mockScoreRepository) FindLatestByUserAndQuiz(userID, quizID uint) (*model.Score, error) {
	args := m.Called(userID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Score), args.Error(1)
}

func (m *mockScoreRepository) FindByUserID(userID uint) ([]model.Score, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Score), args.Error(1)
}

func (m *mockScoreRepository) FindRecent(limit int) ([]model.Score, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Score), args.Error(1)
}

func (m *mockScoreRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
