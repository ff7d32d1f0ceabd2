package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pageViewRow is the single-row counter table.
type pageViewRow struct {
	ID        int       `gorm:"primaryKey"`
	Count     int       `gorm:"column:count"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (pageViewRow) TableName() string { return "page_views" }

type ViewRepo struct {
	db *gorm.DB
}

func NewViewRepo(db *gorm.DB) *ViewRepo {
	return &ViewRepo{db}
}

// PageViews reads the counter. A missing row counts as zero, not an error,
// so a fresh database starts counting instead of tripping the fallback.
func (r *ViewRepo) PageViews(ctx context.Context) (int, error) {
	var row pageViewRow
	err := r.db.WithContext(ctx).First(&row, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Count, nil
}

func (r *ViewRepo) SetPageViews(ctx context.Context, count int) error {
	row := pageViewRow{ID: 1, Count: count}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"count", "updated_at"}),
		}).
		Create(&row).Error
}
