// Package database is the Postgres-backed remote gateway. Each content
// family gets its own repository over a shared GORM connection; Database
// aggregates them and satisfies services.RemoteGateway through promotion.
package database

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ptroncoso/portfolio-admin/models"
)

type Database struct {
	*ProfileRepo
	*PhilosophyRepo
	*ExperienceRepo
	*ProjectRepo
	*StatRepo
	*SkillRepo
	*TechnologyRepo
	*MessageRepo
	*SettingsRepo
	*ViewRepo

	db *gorm.DB
}

// New wires every repository to a shared GORM instance.
func New(db *gorm.DB) *Database {
	return &Database{
		ProfileRepo:    NewProfileRepo(db),
		PhilosophyRepo: NewPhilosophyRepo(db),
		ExperienceRepo: NewExperienceRepo(db),
		ProjectRepo:    NewProjectRepo(db),
		StatRepo:       NewStatRepo(db),
		SkillRepo:      NewSkillRepo(db),
		TechnologyRepo: NewTechnologyRepo(db),
		MessageRepo:    NewMessageRepo(db),
		SettingsRepo:   NewSettingsRepo(db),
		ViewRepo:       NewViewRepo(db),
		db:             db,
	}
}

// Connect opens the Postgres connection and returns the assembled gateway.
// Callers treat a failure here as "start offline", not as fatal.
func Connect(dsn string) (*Database, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}
	return New(db), nil
}

// HealthCheck issues the cheapest possible read. A single row from the
// hero table proves both connectivity and schema access.
func (d *Database) HealthCheck(ctx context.Context) error {
	var probe models.HeroProfile
	err := d.db.WithContext(ctx).Select("id").Limit(1).Find(&probe).Error
	if err != nil {
		return fmt.Errorf("remote health check: %w", err)
	}
	return nil
}
