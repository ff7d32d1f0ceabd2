package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/ptroncoso/portfolio-admin/models"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

func (r *TechnologyRepo) Technologies(ctx context.Context) ([]models.Technology, error) {
	var items []models.Technology
	err := r.db.WithContext(ctx).Order("order_position asc").Find(&items).Error
	return items, err
}

func (r *TechnologyRepo) CreateTechnology(ctx context.Context, item models.Technology) (models.Technology, error) {
	item.ID = models.NewRemoteID()
	err := r.db.WithContext(ctx).Create(&item).Error
	return item, err
}

func (r *TechnologyRepo) UpdateTechnology(ctx context.Context, item models.Technology) error {
	return r.db.WithContext(ctx).Save(&item).Error
}

func (r *TechnologyRepo) DeleteTechnology(ctx context.Context, id models.ID) error {
	return r.db.WithContext(ctx).Delete(&models.Technology{}, "id = ?", id).Error
}
