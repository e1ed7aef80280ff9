package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/proctorview/proctorview/internal/apperror"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/model"
	"github.com/proctorview/proctorview/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// timeIssueLayouts are the timestamp shapes the capture agent is known to
// send, tried in order.
var timeIssueLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type ActivityService interface {
	CreateActivity(ctx context.Context, req dto.ActivityCreateDTO) (*dto.ActivityResponseDTO, error)
	ListActivities(ctx context.Context, page repository.Page) ([]dto.ActivityResponseDTO, error)
}

type activityService struct {
	activityRepo repository.ActivityRepository
	userTestRepo repository.UserTestRepository
}

func NewActivityService(activityRepo repository.ActivityRepository, userTestRepo repository.UserTestRepository) ActivityService {
	return &activityService{activityRepo: activityRepo, userTestRepo: userTestRepo}
}

func (s *activityService) CreateActivity(ctx context.Context, req dto.ActivityCreateDTO) (*dto.ActivityResponseDTO, error) {
	timeIssue, err := parseTimeIssue(req.TimeIssue)
	if err != nil {
		return nil, fmt.Errorf("%w: unparsable time_issue %q", apperror.ErrBadRequest, req.TimeIssue)
	}

	if _, err := s.userTestRepo.FindByID(ctx, req.UserTestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: session %d", apperror.ErrNotFound, req.UserTestID)
		}
		return nil, fmt.Errorf("validating session %d: %w", req.UserTestID, err)
	}

	activity := model.Activity{
		UserTestID: req.UserTestID,
		TimeIssue:  timeIssue,
		Type:       req.Type,
		Screenshot: req.Screenshot,
		Metadata:   req.Metadata,
	}
	if err := s.activityRepo.Create(ctx, &activity); err != nil {
		log.Error().Err(err).Uint("userTestID", req.UserTestID).Msg("Failed to record activity")
		return nil, fmt.Errorf("recording activity: %w", err)
	}

	return projectActivity(&activity), nil
}

func (s *activityService) ListActivities(ctx context.Context, page repository.Page) ([]dto.ActivityResponseDTO, error) {
	activities, err := s.activityRepo.FindAll(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("fetching activities: %w", err)
	}
	return projectActivities(activities)
}

func parseTimeIssue(raw string) (time.Time, error) {
	for _, layout := range timeIssueLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no known layout matches %q", raw)
}

func projectActivity(activity *model.Activity) *dto.ActivityResponseDTO {
	resp := dto.ActivityResponseDTO{
		ID:         activity.ID,
		UserTestID: activity.UserTestID,
		TimeIssue:  activity.TimeIssue,
		Type:       activity.Type,
		Screenshot: activity.Screenshot,
		Metadata:   activity.Metadata,
		CreatedAt:  activity.CreatedAt,
	}
	if activity.UserTest.ID != 0 {
		resp.UserTest = &dto.SessionResponseDTO{
			ID:           activity.UserTest.ID,
			UserID:       activity.UserTest.UserID,
			TestID:       activity.UserTest.TestID,
			UserLocation: activity.UserTest.UserLocation,
			Image:        activity.UserTest.Image,
			Recording:    activity.UserTest.Recording,
			CreatedAt:    activity.UserTest.CreatedAt,
		}
	}
	return &resp
}

func projectActivities(activities []model.Activity) ([]dto.ActivityResponseDTO, error) {
	dtos := make([]dto.ActivityResponseDTO, 0, len(activities))
	for i := range activities {
		dtos = append(dtos, *projectActivity(&activities[i]))
	}
	return dtos, nil
}
