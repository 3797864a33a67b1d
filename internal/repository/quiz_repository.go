package repository

import (
	"github.com/lshigami/QuizMaster/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindAll() ([]model.Quiz, error)
	FindFiltered(subjectSearch, quizSearch string) ([]model.Quiz, error)
	Update(quiz *model.Quiz) error
	DeleteCascade(id uint) error
	Count() (int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.Preload("Chapter").First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Preload("Chapter").Order("id ASC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

// FindFiltered returns quizzes joined through chapter to subject, optionally
// filtered by case-insensitive substring on the subject name and/or the quiz
// title.
func (r *quizRepository) FindFiltered(subjectSearch, quizSearch string) ([]model.Quiz, error) {
	query := r.db.Model(&model.Quiz{}).
		Joins("JOIN chapters ON chapters.id = quizzes.chapter_id AND chapters.deleted_at IS NULL").
		Joins("JOIN subjects ON subjects.id = chapters.subject_id AND subjects.deleted_at IS NULL")

	if subjectSearch != "" {
		query = query.Where("subjects.name ILIKE ?", "%"+subjectSearch+"%")
	}
	if quizSearch != "" {
		query = query.Where("quizzes.title ILIKE ?", "%"+quizSearch+"%")
	}

	var quizzes []model.Quiz
	err := query.Preload("Chapter").Preload("Chapter.Subject").Order("quizzes.id ASC").Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}

// DeleteCascade removes the quiz with its scores and questions, leaf first,
// in one transaction.
func (r *quizRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Score{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Quiz{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *quizRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Quiz{}).Count(&count).Error
	return count, err
}
