package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ptroncoso/portfolio-admin/models"
)

// ProfileRepo handles the two singleton sections, hero and about. Each
// table holds one row; saves upsert against whatever row exists.
type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

func (r *ProfileRepo) Hero(ctx context.Context) (models.HeroProfile, error) {
	var hero models.HeroProfile
	err := r.db.WithContext(ctx).First(&hero).Error
	return hero, err
}

func (r *ProfileRepo) SaveHero(ctx context.Context, hero models.HeroProfile) error {
	var existing models.HeroProfile
	err := r.db.WithContext(ctx).Select("id").First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hero.ID = models.NewRemoteID()
		return r.db.WithContext(ctx).Create(&hero).Error
	case err != nil:
		return err
	default:
		hero.ID = existing.ID
		return r.db.WithContext(ctx).Save(&hero).Error
	}
}

func (r *ProfileRepo) About(ctx context.Context) (models.AboutProfile, error) {
	var about models.AboutProfile
	err := r.db.WithContext(ctx).First(&about).Error
	return about, err
}

func (r *ProfileRepo) SaveAbout(ctx context.Context, about models.AboutProfile) error {
	var existing models.AboutProfile
	err := r.db.WithContext(ctx).Select("id").First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		about.ID = models.NewRemoteID()
		return r.db.WithContext(ctx).Create(&about).Error
	case err != nil:
		return err
	default:
		about.ID = existing.ID
		return r.db.WithContext(ctx).Save(&about).Error
	}
}
