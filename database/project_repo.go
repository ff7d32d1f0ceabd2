package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/ptroncoso/portfolio-admin/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

func (r *ProjectRepo) Projects(ctx context.Context) ([]models.Project, error) {
	var items []models.Project
	err := r.db.WithContext(ctx).Order("order_position asc").Find(&items).Error
	return items, err
}

func (r *ProjectRepo) CreateProject(ctx context.Context, item models.Project) (models.Project, error) {
	item.ID = models.NewRemoteID()
	err := r.db.WithContext(ctx).Create(&item).Error
	return item, err
}

func (r *ProjectRepo) UpdateProject(ctx context.Context, item models.Project) error {
	return r.db.WithContext(ctx).Save(&item).Error
}

func (r *ProjectRepo) DeleteProject(ctx context.Context, id models.ID) error {
	return r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id).Error
}
