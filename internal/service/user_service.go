package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bgpkrishna123/OLX/internal/config"
	"github.com/bgpkrishna123/OLX/internal/models"
	"github.com/bgpkrishna123/OLX/internal/repository"
)

type UserService interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	RenameUser(ctx context.Context, caller *models.AuthUser, name string) error
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// RenameUser changes the display name for future listings only. Items
// created before the rename keep their owner_name snapshot.
func (s *userService) RenameUser(ctx context.Context, caller *models.AuthUser, name string) error {
	if caller == nil {
		return ErrUnauthenticated
	}

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("отсутствует имя пользователя: %w", ErrInvalidInput)
	}

	err := s.userRepo.UpdateUserName(ctx, caller.UserID, name)
	if err != nil {
		return fmt.Errorf("ошибка при переименовании пользователя: %w", err)
	}

	return nil
}
