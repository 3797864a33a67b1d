package repository

import (
	"github.com/lshigami/QuizMaster/internal/model"
	"gorm.io/gorm"
)

type ScoreRepository interface {
	Create(score *model.Score) error
	FindLatestByUserAndQuiz(userID, quizID uint) (*model.Score, error)
	FindByUserID(userID uint) ([]model.Score, error)
	FindRecent(limit int) ([]model.Score, error)
	Count() (int64, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Create(score *model.Score) error {
	return r.db.Create(score).Error
}

func (r *scoreRepository) FindLatestByUserAndQuiz(userID, quizID uint) (*model.Score, error) {
	var score model.Score
	err := r.db.Preload("Quiz").
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("attempted_at DESC").
		First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *scoreRepository) FindByUserID(userID uint) ([]model.Score, error) {
	var scores []model.Score
	err := r.db.Preload("Quiz").Where("user_id = ?", userID).Order("attempted_at DESC").Find(&scores).Error
	return scores, err
}

func (r *scoreRepository) FindRecent(limit int) ([]model.Score, error) {
	var scores []model.Score
	err := r.db.Preload("User").Preload("Quiz").Order("attempted_at DESC").Limit(limit).Find(&scores).Error
	return scores, err
}

func (r *scoreRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Score{}).Count(&count).Error
	return count, err
}
