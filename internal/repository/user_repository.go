package repository

import (
	"github.com/lshigami/QuizMaster/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	CountNonAdmin() (int64, error)
	ListNonAdmin(search string, page, perPage int) ([]model.User, int64, error)
	DeleteWithScores(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CountNonAdmin() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("is_admin = ?", false).Count(&count).Error
	return count, err
}

// ListNonAdmin returns one page of non-admin users, optionally filtered by a
// case-insensitive substring match on full name, email or username.
func (r *userRepository) ListNonAdmin(search string, page, perPage int) ([]model.User, int64, error) {
	query := r.db.Model(&model.User{}).Where("is_admin = ?", false)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ? OR username ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.Order("id ASC").Offset((page - 1) * perPage).Limit(perPage).Find(&users).Error
	return users, total, err
}

// DeleteWithScores removes the user's score rows and then the user itself in
// one transaction. A failure rolls the whole step back.
func (r *userRepository) DeleteWithScores(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Score{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
