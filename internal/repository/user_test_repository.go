package repository

import (
	"context"

	"github.com/proctorview/proctorview/internal/model"
	"gorm.io/gorm"
)

type UserTestRepository interface {
	Create(ctx context.Context, session *model.UserTest) error
	FindByID(ctx context.Context, id uint) (*model.UserTest, error)
	// FindByTestID returns sessions in creation order with their users
	// attached; one row per attempt.
	FindByTestID(ctx context.Context, testID uint) ([]model.UserTest, error)
	ExistsForUserAndTest(ctx context.Context, userID, testID uint) (bool, error)
}

type userTestRepository struct {
	db *gorm.DB
}

func NewUserTestRepository(db *gorm.DB) UserTestRepository {
	return &userTestRepository{db: db}
}

func (r *userTestRepository) Create(ctx context.Context, session *model.UserTest) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *userTestRepository) FindByID(ctx context.Context, id uint) (*model.UserTest, error) {
	var session model.UserTest
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *userTestRepository) FindByTestID(ctx context.Context, testID uint) ([]model.UserTest, error) {
	var sessions []model.UserTest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("test_id = ?", testID).
		Order("id ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *userTestRepository) ExistsForUserAndTest(ctx context.Context, userID, testID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserTest{}).
		Where("user_id = ? AND test_id = ?", userID, testID).
		Count(&count).Error
	return count > 0, err
}
