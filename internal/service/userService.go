package service

import (
	"errors"

	"animehub/internal/dto"
	"animehub/internal/repository"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	GetProfile(userID string) (*dto.ProfileResponse, error)
	UpdateAvatar(userID, avatarURL string) (*dto.ProfileResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetProfile returns the caller's own account data
func (s *userService) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return dto.FromModelToProfileResponse(user), nil
}

// UpdateAvatar stores a new avatar URL for the caller
func (s *userService) UpdateAvatar(userID, avatarURL string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.UpdateAvatar(userID, avatarURL)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return dto.FromModelToProfileResponse(user), nil
}
