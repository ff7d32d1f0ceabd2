package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ptroncoso/portfolio-admin/models"
)

const styleSettingsKey = "style_settings"

// adminSetting is one key/value row in the admin_settings table. Values
// are arbitrary JSON documents.
type adminSetting struct {
	SettingKey   string         `gorm:"column:setting_key;primaryKey;type:text"`
	SettingValue datatypes.JSON `gorm:"column:setting_value"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
}

func (adminSetting) TableName() string { return "admin_settings" }

// SettingsRepo stores the style configuration as a JSON document under a
// well-known settings key.
type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *SettingsRepo {
	return &SettingsRepo{db}
}

func (r *SettingsRepo) StyleSettings(ctx context.Context) (models.StyleSettings, error) {
	var row adminSetting
	err := r.db.WithContext(ctx).Where("setting_key = ?", styleSettingsKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.StyleSettings{}, fmt.Errorf("style settings not configured: %w", err)
	}
	if err != nil {
		return models.StyleSettings{}, err
	}
	var settings models.StyleSettings
	if err := json.Unmarshal(row.SettingValue, &settings); err != nil {
		return models.StyleSettings{}, fmt.Errorf("decoding style settings: %w", err)
	}
	return settings, nil
}

func (r *SettingsRepo) SaveStyleSettings(ctx context.Context, settings models.StyleSettings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding style settings: %w", err)
	}
	row := adminSetting{SettingKey: styleSettingsKey, SettingValue: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
		}).
		Create(&row).Error
}
