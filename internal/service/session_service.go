package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/proctorview/proctorview/config"
	"github.com/proctorview/proctorview/internal/apperror"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/model"
	"github.com/proctorview/proctorview/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SessionService manages UserTest rows, the join between a participant and a
// test for a single attempt.
type SessionService interface {
	CreateSession(ctx context.Context, req dto.SessionCreateDTO) (*dto.SessionResponseDTO, error)
}

type sessionService struct {
	userTestRepo repository.UserTestRepository
	userRepo     repository.UserRepository
	testRepo     repository.TestRepository
	allowRetakes bool
}

func NewSessionService(
	userTestRepo repository.UserTestRepository,
	userRepo repository.UserRepository,
	testRepo repository.TestRepository,
	cfg *config.Config,
) SessionService {
	return &sessionService{
		userTestRepo: userTestRepo,
		userRepo:     userRepo,
		testRepo:     testRepo,
		allowRetakes: cfg.Session.AllowMultipleAttempts,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, req dto.SessionCreateDTO) (*dto.SessionResponseDTO, error) {
	// Both foreign keys are validated up front; a session referencing a
	// missing user or test must never be written.
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperror.ErrNotFound, req.UserID)
		}
		return nil, fmt.Errorf("validating user %d: %w", req.UserID, err)
	}
	if _, err := s.testRepo.FindByIDWithRelations(ctx, req.TestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test %d", apperror.ErrNotFound, req.TestID)
		}
		return nil, fmt.Errorf("validating test %d: %w", req.TestID, err)
	}

	if !s.allowRetakes {
		exists, err := s.userTestRepo.ExistsForUserAndTest(ctx, req.UserID, req.TestID)
		if err != nil {
			return nil, fmt.Errorf("checking existing attempt: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: user %d already attempted test %d", apperror.ErrConflict, req.UserID, req.TestID)
		}
	}

	session := model.UserTest{
		UserID:       req.UserID,
		TestID:       req.TestID,
		UserLocation: req.UserLocation,
		Image:        req.Image,
		Recording:    req.Recording,
	}
	if err := s.userTestRepo.Create(ctx, &session); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Uint("testID", req.TestID).Msg("Failed to create session")
		return nil, fmt.Errorf("creating session: %w", err)
	}

	var resp dto.SessionResponseDTO
	if err := copier.Copy(&resp, &session); err != nil {
		return nil, fmt.Errorf("preparing session response: %w", err)
	}
	return &resp, nil
}
