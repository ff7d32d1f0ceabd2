package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/ptroncoso/portfolio-admin/models"
)

type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db}
}

// Messages returns the inbox newest first.
func (r *MessageRepo) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	var items []models.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error
	return items, err
}

func (r *MessageRepo) CreateMessage(ctx context.Context, item models.ContactMessage) (models.ContactMessage, error) {
	item.ID = models.NewRemoteID()
	err := r.db.WithContext(ctx).Create(&item).Error
	return item, err
}

func (r *MessageRepo) UpdateMessage(ctx context.Context, item models.ContactMessage) error {
	return r.db.WithContext(ctx).Save(&item).Error
}

func (r *MessageRepo) DeleteMessage(ctx context.Context, id models.ID) error {
	return r.db.WithContext(ctx).Delete(&models.ContactMessage{}, "id = ?", id).Error
}
