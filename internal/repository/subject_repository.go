package repository

import (
	"github.com/lshigami/QuizMaster/internal/model"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(subject *model.Subject) error
	FindByID(id uint) (*model.Subject, error)
	FindAll() ([]model.Subject, error)
	FindByNameLike(search string) ([]model.Subject, error)
	Update(subject *model.Subject) error
	DeleteCascade(id uint) error
	Count() (int64, error)
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(subject *model.Subject) error {
	return r.db.Create(subject).Error
}

func (r *subjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.First(&subject, id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) FindAll() ([]model.Subject, error) {
	var subjects []model.Subject
	if err := r.db.Order("id ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepository) FindByNameLike(search string) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.Where("name ILIKE ?", "%"+search+"%").Order("id ASC").Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepository) Update(subject *model.Subject) error {
	return r.db.Save(subject).Error
}

// DeleteCascade removes the subject and every descendant row, leaf first:
// scores and questions of its quizzes, the quizzes, the chapters, then the
// subject. The whole traversal runs in one transaction.
func (r *subjectRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		chapterIDs := tx.Model(&model.Chapter{}).Select("id").Where("subject_id = ?", id)
		quizIDs := tx.Model(&model.Quiz{}).Select("id").Where("chapter_id IN (?)", chapterIDs)

		if err := tx.Where("quiz_id IN (?)", quizIDs).Delete(&model.Score{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id IN (?)", quizIDs).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id IN (?)", chapterIDs).Delete(&model.Quiz{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", id).Delete(&model.Chapter{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Subject{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *subjectRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Subject{}).Count(&count).Error
	return count, err
}
