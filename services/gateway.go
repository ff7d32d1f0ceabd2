package services

import (
	"context"

	"github.com/ptroncoso/portfolio-admin/models"
)

// RemoteGateway is the contract the orchestrator requires from the remote
// provider: per-family CRUD plus a minimal health check. Failures are
// opaque; the orchestrator only cares whether a call failed, never why.
// database.Database is the production implementation.
type RemoteGateway interface {
	// HealthCheck performs a minimal read against one collection. It
	// decides online/offline status before a full load is attempted.
	HealthCheck(ctx context.Context) error

	StyleSettings(ctx context.Context) (models.StyleSettings, error)
	SaveStyleSettings(ctx context.Context, settings models.StyleSettings) error

	Hero(ctx context.Context) (models.HeroProfile, error)
	SaveHero(ctx context.Context, hero models.HeroProfile) error

	About(ctx context.Context) (models.AboutProfile, error)
	SaveAbout(ctx context.Context, about models.AboutProfile) error

	WorkPhilosophies(ctx context.Context) ([]models.WorkPhilosophy, error)
	CreateWorkPhilosophy(ctx context.Context, item models.WorkPhilosophy) (models.WorkPhilosophy, error)
	UpdateWorkPhilosophy(ctx context.Context, item models.WorkPhilosophy) error
	DeleteWorkPhilosophy(ctx context.Context, id models.ID) error

	Experiences(ctx context.Context) ([]models.Experience, error)
	CreateExperience(ctx context.Context, item models.Experience) (models.Experience, error)
	UpdateExperience(ctx context.Context, item models.Experience) error
	DeleteExperience(ctx context.Context, id models.ID) error

	Projects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, item models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, item models.Project) error
	DeleteProject(ctx context.Context, id models.ID) error

	Stats(ctx context.Context) ([]models.Stat, error)
	CreateStat(ctx context.Context, item models.Stat) (models.Stat, error)
	UpdateStat(ctx context.Context, item models.Stat) error

	SkillCategories(ctx context.Context) ([]models.SkillCategory, error)
	CreateSkill(ctx context.Context, item models.Skill) (models.Skill, error)
	UpdateSkill(ctx context.Context, item models.Skill) error
	DeleteSkill(ctx context.Context, id models.ID) error

	Technologies(ctx context.Context) ([]models.Technology, error)
	CreateTechnology(ctx context.Context, item models.Technology) (models.Technology, error)
	UpdateTechnology(ctx context.Context, item models.Technology) error
	DeleteTechnology(ctx context.Context, id models.ID) error

	Messages(ctx context.Context) ([]models.ContactMessage, error)
	CreateMessage(ctx context.Context, item models.ContactMessage) (models.ContactMessage, error)
	UpdateMessage(ctx context.Context, item models.ContactMessage) error
	DeleteMessage(ctx context.Context, id models.ID) error

	PageViews(ctx context.Context) (int, error)
	SetPageViews(ctx context.Context, count int) error
}
