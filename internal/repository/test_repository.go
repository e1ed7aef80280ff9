package repository

import (
	"context"

	"github.com/proctorview/proctorview/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	FindByIDWithRelations(ctx context.Context, id uint) (*model.Test, error)
	FindActive(ctx context.Context, page Page) ([]model.Test, error)
	FindActiveByAdmin(ctx context.Context, adminID uint) ([]model.Test, error)
	CountActive(ctx context.Context) (int64, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindByIDWithRelations(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).
		Preload("Admin").
		Preload("UserTests").
		First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindActive(ctx context.Context, page Page) ([]model.Test, error) {
	var tests []model.Test
	err := page.apply(r.db.WithContext(ctx)).
		Preload("Admin").
		Preload("UserTests").
		Where("is_active = ?", true).
		Order("tests.created_at DESC").
		Find(&tests).Error
	return tests, err
}

func (r *testRepository) FindActiveByAdmin(ctx context.Context, adminID uint) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).
		Preload("Admin").
		Preload("UserTests").
		Where("is_active = ? AND admin_id = ?", true, adminID).
		Order("tests.created_at DESC").
		Find(&tests).Error
	return tests, err
}

func (r *testRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Test{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
