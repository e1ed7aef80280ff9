package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/proctorview/proctorview/internal/apperror"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/model"
	"github.com/proctorview/proctorview/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TestService interface {
	CreateTest(ctx context.Context, adminID uint, req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	GetTest(ctx context.Context, id uint) (*dto.TestResponseDTO, error)
	ListActive(ctx context.Context, page repository.Page) ([]dto.TestResponseDTO, error)
	ListActiveByAdmin(ctx context.Context, adminID uint) ([]dto.TestResponseDTO, error)
	CountActive(ctx context.Context) (int64, error)
	ListUsersForTest(ctx context.Context, testID uint) ([]dto.UserResponseDTO, error)
	ListAlerts(ctx context.Context, testID uint, page repository.Page) ([]dto.ActivityResponseDTO, error)
}

type testService struct {
	testRepo     repository.TestRepository
	userTestRepo repository.UserTestRepository
	activityRepo repository.ActivityRepository
}

func NewTestService(
	testRepo repository.TestRepository,
	userTestRepo repository.UserTestRepository,
	activityRepo repository.ActivityRepository,
) TestService {
	return &testService{testRepo: testRepo, userTestRepo: userTestRepo, activityRepo: activityRepo}
}

func (s *testService) CreateTest(ctx context.Context, adminID uint, req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	if adminID == 0 {
		return nil, fmt.Errorf("%w: admin not logged in", apperror.ErrUnauthorized)
	}

	now := time.Now()
	test := model.Test{
		AdminID:  adminID,
		URL:      req.URL,
		Name:     req.Name,
		Date:     now,
		Time:     now.Format("15:04:05"),
		IsActive: true,
	}
	if err := s.testRepo.Create(ctx, &test); err != nil {
		log.Error().Err(err).Uint("adminID", adminID).Msg("Failed to create test")
		return nil, fmt.Errorf("creating test: %w", err)
	}

	return projectTest(&test)
}

func (s *testService) GetTest(ctx context.Context, id uint) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test %d", apperror.ErrNotFound, id)
		}
		return nil, fmt.Errorf("fetching test %d: %w", id, err)
	}
	return projectTest(test)
}

func (s *testService) ListActive(ctx context.Context, page repository.Page) ([]dto.TestResponseDTO, error) {
	tests, err := s.testRepo.FindActive(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("fetching active tests: %w", err)
	}
	return projectTests(tests)
}

func (s *testService) ListActiveByAdmin(ctx context.Context, adminID uint) ([]dto.TestResponseDTO, error) {
	tests, err := s.testRepo.FindActiveByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("fetching active tests for admin %d: %w", adminID, err)
	}
	return projectTests(tests)
}

func (s *testService) CountActive(ctx context.Context) (int64, error) {
	count, err := s.testRepo.CountActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting active tests: %w", err)
	}
	return count, nil
}

// ListUsersForTest returns one entry per session, in creation order. A user
// with two attempts at the test appears twice.
func (s *testService) ListUsersForTest(ctx context.Context, testID uint) ([]dto.UserResponseDTO, error) {
	sessions, err := s.userTestRepo.FindByTestID(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("fetching sessions for test %d: %w", testID, err)
	}

	users := make([]dto.UserResponseDTO, 0, len(sessions))
	for _, session := range sessions {
		users = append(users, dto.UserResponseDTO{
			ID:        session.User.ID,
			Name:      session.User.Name,
			Branch:    session.User.Branch,
			Image:     session.User.Image,
			CreatedAt: session.User.CreatedAt,
		})
	}
	return users, nil
}

func (s *testService) ListAlerts(ctx context.Context, testID uint, page repository.Page) ([]dto.ActivityResponseDTO, error) {
	activities, err := s.activityRepo.FindByTestID(ctx, testID, page)
	if err != nil {
		return nil, fmt.Errorf("fetching alerts for test %d: %w", testID, err)
	}
	return projectActivities(activities)
}

func projectTest(test *model.Test) (*dto.TestResponseDTO, error) {
	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Msg("Failed to copy Test model to response")
		return nil, fmt.Errorf("preparing test response: %w", err)
	}
	// Only attach the owner projection when the association was loaded.
	if test.Admin.ID != 0 {
		resp.Admin = &dto.AdminSummaryDTO{ID: test.Admin.ID, Name: test.Admin.Name, Email: test.Admin.Email}
	} else {
		resp.Admin = nil
	}
	return &resp, nil
}

func projectTests(tests []model.Test) ([]dto.TestResponseDTO, error) {
	dtos := make([]dto.TestResponseDTO, 0, len(tests))
	for i := range tests {
		resp, err := projectTest(&tests[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *resp)
	}
	return dtos, nil
}
