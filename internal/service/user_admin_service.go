package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/QuizMaster/internal/dto"
	"github.com/lshigami/QuizMaster/internal/repository"
	"github.com/rs/zerolog/log"
)

var ErrCannotDeleteAdmin = errors.New("cannot delete admin users")

const usersPerPage = 10

// UserAdminService backs the admin user-management screen.
type UserAdminService interface {
	ListUsers(search string, page int) (*dto.UserPage, error)
	DeleteUser(id uint) error
}

type userAdminService struct {
	userRepo repository.UserRepository
}

func NewUserAdminService(userRepo repository.UserRepository) UserAdminService {
	return &userAdminService{userRepo: userRepo}
}

// ListUsers returns one page of non-admin users, optionally filtered by a
// case-insensitive substring on full name, email or username.
func (s *userAdminService) ListUsers(search string, page int) (*dto.UserPage, error) {
	if page < 1 {
		page = 1
	}
	users, total, err := s.userRepo.ListNonAdmin(search, page, usersPerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	totalPages := int((total + usersPerPage - 1) / usersPerPage)
	return &dto.UserPage{
		Users:      users,
		Total:      total,
		Page:       page,
		PerPage:    usersPerPage,
		TotalPages: totalPages,
	}, nil
}

// DeleteUser removes a non-admin user together with their score rows.
// Deleting an admin account is rejected and leaves all data unchanged.
func (s *userAdminService) DeleteUser(id uint) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		return ErrCannotDeleteAdmin
	}
	if err := s.userRepo.DeleteWithScores(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	log.Info().Uint("user_id", id).Msg("User deleted")
	return nil
}
