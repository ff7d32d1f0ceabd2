package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/ptroncoso/portfolio-admin/models"
)

// StatRepo exposes no delete; the stat set is fixed by the admin surface.
type StatRepo struct {
	db *gorm.DB
}

func NewStatRepo(db *gorm.DB) *StatRepo {
	return &StatRepo{db}
}

func (r *StatRepo) Stats(ctx context.Context) ([]models.Stat, error) {
	var items []models.Stat
	err := r.db.WithContext(ctx).Order("order_position asc").Find(&items).Error
	return items, err
}

func (r *StatRepo) CreateStat(ctx context.Context, item models.Stat) (models.Stat, error) {
	item.ID = models.NewRemoteID()
	err := r.db.WithContext(ctx).Create(&item).Error
	return item, err
}

func (r *StatRepo) UpdateStat(ctx context.Context, item models.Stat) error {
	return r.db.WithContext(ctx).Save(&item).Error
}
