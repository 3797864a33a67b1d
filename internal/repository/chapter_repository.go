package repository

import (
	"github.com/lshigami/QuizMaster/internal/model"
	"gorm.io/gorm"
)

type ChapterRepository interface {
	Create(chapter *model.Chapter) error
	FindByID(id uint) (*model.Chapter, error)
	FindAll() ([]model.Chapter, error)
	FindBySubjectID(subjectID uint) ([]model.Chapter, error)
	Update(chapter *model.Chapter) error
	DeleteCascade(id uint) error
	Count() (int64, error)
}

type chapterRepository struct {
	db *gorm.DB
}

func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

func (r *chapterRepository) Create(chapter *model.Chapter) error {
	return r.db.Create(chapter).Error
}

func (r *chapterRepository) FindByID(id uint) (*model.Chapter, error) {
	var chapter model.Chapter
	if err := r.db.First(&chapter, id).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *chapterRepository) FindAll() ([]model.Chapter, error) {
	var chapters []model.Chapter
	if err := r.db.Preload("Subject").Order("id ASC").Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

func (r *chapterRepository) FindBySubjectID(subjectID uint) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.db.Where("subject_id = ?", subjectID).Order("id ASC").Find(&chapters).Error
	return chapters, err
}

func (r *chapterRepository) Update(chapter *model.Chapter) error {
	return r.db.Save(chapter).Error
}

// DeleteCascade removes the chapter, its quizzes and their questions and
// scores, leaf first, in one transaction.
func (r *chapterRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		quizIDs := tx.Model(&model.Quiz{}).Select("id").Where("chapter_id = ?", id)

		if err := tx.Where("quiz_id IN (?)", quizIDs).Delete(&model.Score{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id IN (?)", quizIDs).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id = ?", id).Delete(&model.Quiz{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Chapter{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *chapterRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Chapter{}).Count(&count).Error
	return count, err
}
