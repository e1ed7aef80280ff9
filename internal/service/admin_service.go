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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminService interface {
	GetAdmin(ctx context.Context, id uint) (*dto.AdminResponseDTO, error)
	CreateAdmin(ctx context.Context, req dto.AdminCreateDTO) (*dto.AdminSummaryDTO, error)
}

type adminService struct {
	adminRepo repository.AdminRepository
}

func NewAdminService(adminRepo repository.AdminRepository) AdminService {
	return &adminService{adminRepo: adminRepo}
}

func (s *adminService) GetAdmin(ctx context.Context, id uint) (*dto.AdminResponseDTO, error) {
	admin, err := s.adminRepo.FindByIDWithTests(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: admin %d", apperror.ErrNotFound, id)
		}
		return nil, fmt.Errorf("fetching admin %d: %w", id, err)
	}

	resp := dto.AdminResponseDTO{
		ID:        admin.ID,
		Name:      admin.Name,
		Email:     admin.Email,
		CreatedAt: admin.CreatedAt,
		Tests:     []dto.TestResponseDTO{},
	}
	if err := copier.Copy(&resp.Tests, &admin.Tests); err != nil {
		log.Error().Err(err).Msg("Failed to copy tests to response")
		return nil, fmt.Errorf("preparing admin response: %w", err)
	}
	return &resp, nil
}

// CreateAdmin is the direct-create path without token issuance. Unlike the
// signup flow it is meant for provisioning; the password is still hashed
// before it touches the store.
func (s *adminService) CreateAdmin(ctx context.Context, req dto.AdminCreateDTO) (*dto.AdminSummaryDTO, error) {
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

	admin := model.Admin{Name: req.Name, Email: req.Email, Password: string(hash)}
	if err := s.adminRepo.Create(ctx, &admin); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create admin")
		return nil, fmt.Errorf("creating admin: %w", err)
	}

	return &dto.AdminSummaryDTO{ID: admin.ID, Name: admin.Name, Email: admin.Email}, nil
}
