package services

import (
	"errors"
	"fmt"
	"log"

	"moving_ops/internal/models"
	"moving_ops/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(user *models.User, password string) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CheckPassword(user *models.User, password string) bool
	EnsureUser(username, password string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(user *models.User, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", models.ErrValidation)
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashedPassword)
	user.IsActive = true

	return s.userRepo.Create(user)
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", username, models.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// EnsureUser creates the account unless a user with that name exists.
func (s *userService) EnsureUser(username, password string) error {
	existing, err := s.GetUserByUsername(username)
	if err == nil && existing != nil {
		log.Printf("User %s already exists", username)
		return nil
	}
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}

	if err := s.CreateUser(&models.User{Username: username}, password); err != nil {
		return fmt.Errorf("failed to create user %s: %w", username, err)
	}
	log.Printf("User %s created", username)
	return nil
}
