package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/proctorview/proctorview/internal/apperror"
	"github.com/proctorview/proctorview/internal/auth"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/model"
	"github.com/proctorview/proctorview/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req dto.SignupDTO) (*dto.SignupResponseDTO, error)
	Login(ctx context.Context, req dto.LoginDTO) (*dto.LoginResponseDTO, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	tokens    *auth.JWTManager
}

func NewAuthService(adminRepo repository.AdminRepository, tokens *auth.JWTManager) AuthService {
	return &authService{adminRepo: adminRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, req dto.SignupDTO) (*dto.SignupResponseDTO, error) {
	existing, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing admin: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: admin with email %s already exists", apperror.ErrConflict, req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	admin := model.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := s.adminRepo.Create(ctx, &admin); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create admin")
		return nil, fmt.Errorf("creating admin: %w", err)
	}

	token, err := s.tokens.Generate(admin.ID, admin.Email)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &dto.SignupResponseDTO{Message: "registered successful", Token: token}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account does not exist", apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", apperror.ErrUnauthorized)
	}

	token, err := s.tokens.Generate(admin.ID, admin.Email)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &dto.LoginResponseDTO{
		Message: "success",
		Token:   token,
		Admin:   dto.AdminSummaryDTO{ID: admin.ID, Name: admin.Name, Email: admin.Email},
	}, nil
}
