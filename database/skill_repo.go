package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/ptroncoso/portfolio-admin/models"
)

// SkillRepo reads categories with their skills nested and writes individual
// skills. Categories themselves are managed directly in the database.
type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

func (r *SkillRepo) SkillCategories(ctx context.Context) ([]models.SkillCategory, error) {
	var items []models.SkillCategory
	err := r.db.WithContext(ctx).
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_position asc")
		}).
		Order("order_position asc").
		Find(&items).Error
	return items, err
}

func (r *SkillRepo) CreateSkill(ctx context.Context, item models.Skill) (models.Skill, error) {
	item.ID = models.NewRemoteID()
	err := r.db.WithContext(ctx).Create(&item).Error
	return item, err
}

func (r *SkillRepo) UpdateSkill(ctx context.Context, item models.Skill) error {
	return r.db.WithContext(ctx).Save(&item).Error
}

func (r *SkillRepo) DeleteSkill(ctx context.Context, id models.ID) error {
	return r.db.WithContext(ctx).Delete(&models.Skill{}, "id = ?", id).Error
}
