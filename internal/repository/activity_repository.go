package repository

import (
	"context"

	"github.com/proctorview/proctorview/internal/model"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	FindAll(ctx context.Context, page Page) ([]model.Activity, error)
	// FindByTestID resolves every activity flagged across the test's
	// sessions, newest first.
	FindByTestID(ctx context.Context, testID uint, page Page) ([]model.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) FindAll(ctx context.Context, page Page) ([]model.Activity, error) {
	var activities []model.Activity
	err := page.apply(r.db.WithContext(ctx)).
		Preload("UserTest").
		Order("time_issue DESC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) FindByTestID(ctx context.Context, testID uint, page Page) ([]model.Activity, error) {
	var activities []model.Activity
	err := page.apply(r.db.WithContext(ctx)).
		Preload("UserTest").
		Joins("JOIN user_tests ON user_tests.id = activities.user_test_id").
		Where("user_tests.test_id = ?", testID).
		Order("activities.time_issue DESC").
		Find(&activities).Error
	return activities, err
}
