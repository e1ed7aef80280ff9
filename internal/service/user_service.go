package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/proctorview/proctorview/internal/apperror"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/model"
	"github.com/proctorview/proctorview/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(ctx context.Context, req dto.UserCreateDTO) (*dto.UserResponseDTO, error)
	GetUser(ctx context.Context, id uint) (*dto.UserResponseDTO, error)
	Count(ctx context.Context) (int64, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, req dto.UserCreateDTO) (*dto.UserResponseDTO, error) {
	existing, err := s.userRepo.FindByID(ctx, req.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user %d already exists", apperror.ErrConflict, req.ID)
	}

	user := model.User{
		ID:     req.ID,
		Name:   req.Name,
		Branch: req.Branch,
		Image:  req.Image,
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: user %d already exists", apperror.ErrConflict, req.ID)
		}
		log.Error().Err(err).Uint("userID", req.ID).Msg("Failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, &user); err != nil {
		return nil, fmt.Errorf("preparing user response: %w", err)
	}
	return &resp, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByIDWithSessions(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperror.ErrNotFound, id)
		}
		return nil, fmt.Errorf("fetching user %d: %w", id, err)
	}

	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, user); err != nil {
		log.Error().Err(err).Msg("Failed to copy User model to response")
		return nil, fmt.Errorf("preparing user response: %w", err)
	}
	return &resp, nil
}

func (s *userService) Count(ctx context.Context) (int64, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}
