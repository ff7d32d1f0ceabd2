package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/ptroncoso/portfolio-admin/models"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

func (r *ExperienceRepo) Experiences(ctx context.Context) ([]models.Experience, error) {
	var items []models.Experience
	err := r.db.WithContext(ctx).Order("order_position asc").Find(&items).Error
	return items, err
}

func (r *ExperienceRepo) CreateExperience(ctx context.Context, item models.Experience) (models.Experience, error) {
	item.ID = models.NewRemoteID()
	err := r.db.WithContext(ctx).Create(&item).Error
	return item, err
}

func (r *ExperienceRepo) UpdateExperience(ctx context.Context, item models.Experience) error {
	return r.db.WithContext(ctx).Save(&item).Error
}

func (r *ExperienceRepo) DeleteExperience(ctx context.Context, id models.ID) error {
	return r.db.WithContext(ctx).Delete(&models.Experience{}, "id = ?", id).Error
}
