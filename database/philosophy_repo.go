package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/ptroncoso/portfolio-admin/models"
)

type PhilosophyRepo struct {
	db *gorm.DB
}

func NewPhilosophyRepo(db *gorm.DB) *PhilosophyRepo {
	return &PhilosophyRepo{db}
}

func (r *PhilosophyRepo) WorkPhilosophies(ctx context.Context) ([]models.WorkPhilosophy, error) {
	var items []models.WorkPhilosophy
	err := r.db.WithContext(ctx).Order("order_position asc").Find(&items).Error
	return items, err
}

func (r *PhilosophyRepo) CreateWorkPhilosophy(ctx context.Context, item models.WorkPhilosophy) (models.WorkPhilosophy, error) {
	item.ID = models.NewRemoteID()
	err := r.db.WithContext(ctx).Create(&item).Error
	return item, err
}

func (r *PhilosophyRepo) UpdateWorkPhilosophy(ctx context.Context, item models.WorkPhilosophy) error {
	return r.db.WithContext(ctx).Save(&item).Error
}

func (r *PhilosophyRepo) DeleteWorkPhilosophy(ctx context.Context, id models.ID) error {
	return r.db.WithContext(ctx).Delete(&models.WorkPhilosophy{}, "id = ?", id).Error
}
