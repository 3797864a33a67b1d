package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/QuizMaster/config"
	"github.com/lshigami/QuizMaster/internal/dto"
	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/lshigami/QuizMaster/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the login response cannot be used for user enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("this email is already in use")
	ErrUsernameTaken      = errors.New("this username is already taken")
	ErrInvalidDateOfBirth = errors.New("date of birth must be a valid date")
)

const bcryptCost = 12

// AuthService handles registration, credential checks and the startup admin
// bootstrap.
type AuthService interface {
	Register(req dto.RegisterRequest) (*model.User, error)
	Authenticate(email, password string) (*model.User, error)
	EnsureAdmin(admin config.Admin) error
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register validates the submission, hashes the password and creates a
// non-admin account. Nothing is written when any check fails.
func (s *authService) Register(req dto.RegisterRequest) (*model.User, error) {
	dob, err := req.ParseDateOfBirth()
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}

	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Username:      req.Username,
		Email:         req.Email,
		PasswordHash:  string(hash),
		FullName:      req.FullName,
		Qualification: req.Qualification,
		DateOfBirth:   dob,
		IsAdmin:       false,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Authenticate locates the user by email and compares the bcrypt hash. The
// unknown-user and wrong-password outcomes are indistinguishable.
func (s *authService) Authenticate(email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// EnsureAdmin creates the designated admin account if it does not exist yet.
// Looked up by the configured email, so repeated startups are idempotent.
func (s *authService) EnsureAdmin(admin config.Admin) error {
	if admin.Email == "" || admin.Password == "" {
		log.Warn().Msg("Admin bootstrap skipped: ADMIN_EMAIL or ADMIN_PASSWORD not configured")
		return nil
	}

	if _, err := s.userRepo.FindByEmail(admin.Email); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := model.User{
		Username:      admin.Username,
		Email:         admin.Email,
		PasswordHash:  string(hash),
		FullName:      admin.FullName,
		Qualification: "System Administrator",
		IsAdmin:       true,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	log.Info().Str("email", admin.Email).Msg("Admin account created")
	return nil
}
