package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ptroncoso/portfolio-admin/models"
	"github.com/ptroncoso/portfolio-admin/seed"
)

// LoadAll reconciles on startup and after mutations: health-check the
// remote, fetch every family concurrently on success, or fall back to the
// local store. Remote failures never surface as errors; the outcome's
// Offline flag is the only signal.
func (o *Orchestrator) LoadAll(ctx context.Context) Outcome {
	if o.gateway == nil {
		return o.loadOffline()
	}
	if err := o.gateway.HealthCheck(ctx); err != nil {
		o.logger.Warn().Err(err).Msg("remote health check failed, loading local data")
		return o.loadOffline()
	}

	// Each family starts from the seed catalog so a per-family fetch
	// failure substitutes defaults instead of an empty-by-error value.
	snap := seed.Snapshot(o.now())
	warn := func(family models.Family, err error) {
		o.logger.Warn().Err(err).Str("family", string(family)).Msg("family fetch failed, substituting seed data")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if v, err := o.gateway.StyleSettings(gctx); err == nil {
			snap.StyleSettings = v
		} else {
			warn(models.FamilyStyleSettings, err)
		}
		return nil
	})
	g.Go(func() error {
		if v, err := o.gateway.Hero(gctx); err == nil {
			snap.Hero = v
		} else {
			warn(models.FamilyHero, err)
		}
		return nil
	})
	g.Go(func() error {
		if v, err := o.gateway.About(gctx); err == nil {
			snap.About = v
		} else {
			warn(models.FamilyAbout, err)
		}
		return nil
	})
	g.Go(func() error {
		if v, err := o.gateway.WorkPhilosophies(gctx); err == nil {
			snap.WorkPhilosophy = v
		} else {
			warn(models.FamilyWorkPhilosophy, err)
		}
		return nil
	})
	g.Go(func() error {
		if v, err := o.gateway.Experiences(gctx); err == nil {
			snap.Experiences = v
		} else {
			warn(models.FamilyExperiences, err)
		}
		return nil
	})
	g.Go(func() error {
		if v, err := o.gateway.Projects(gctx); err == nil {
			snap.Projects = v
		} else {
			warn(models.FamilyProjects, err)
		}
		return nil
	})
	g.Go(func() error {
		if v, err := o.gateway.Stats(gctx); err == nil {
			snap.Stats = v
		} else {
			warn(models.FamilyStats, err)
		}
		return nil
	})
	g.Go(func() error {
		if v, err := o.gateway.SkillCategories(gctx); err == nil {
			snap.SkillCategories = v
		} else {
			warn(models.FamilySkillCategories, err)
		}
		return nil
	})
	g.Go(func() error {
		if v, err := o.gateway.Technologies(gctx); err == nil {
			snap.Technologies = v
		} else {
			warn(models.FamilyTechnologies, err)
		}
		return nil
	})
	g.Go(func() error {
		if v, err := o.gateway.Messages(gctx); err == nil {
			snap.Messages = v
		} else {
			// messages have no seed; an error shows an empty inbox
			snap.Messages = []models.ContactMessage{}
			warn(models.FamilyMessages, err)
		}
		return nil
	})
	g.Go(func() error {
		if v, err := o.gateway.PageViews(gctx); err == nil {
			snap.PageViews = v
		} else {
			warn(models.FamilyPageViews, err)
		}
		return nil
	})
	_ = g.Wait() // fetches are isolated and never return errors

	// persistAll marshals the same backing arrays the state now holds, so
	// it stays inside the lock.
	o.mu.Lock()
	o.state = snap
	o.online = true
	o.persistAll(snap)
	o.mu.Unlock()

	return success("data loaded from remote provider")
}

// loadOffline reads the local store (which itself falls back to the seed
// catalog when empty) and marks the system offline.
func (o *Orchestrator) loadOffline() Outcome {
	snap := o.store.Read()
	o.mu.Lock()
	o.state = snap
	o.online = false
	o.mu.Unlock()
	return localOnly("offline mode: showing locally cached data")
}

// persistAll commits a freshly loaded snapshot to the local store family by
// family, keeping the cache warm for the next offline start.
func (o *Orchestrator) persistAll(snap models.Snapshot) {
	o.store.WriteField(models.FamilyStyleSettings, snap.StyleSettings)
	o.store.WriteField(models.FamilyHero, snap.Hero)
	o.store.WriteField(models.FamilyAbout, snap.About)
	o.store.WriteField(models.FamilyWorkPhilosophy, snap.WorkPhilosophy)
	o.store.WriteField(models.FamilyExperiences, snap.Experiences)
	o.store.WriteField(models.FamilyProjects, snap.Projects)
	o.store.WriteField(models.FamilyStats, snap.Stats)
	o.store.WriteField(models.FamilySkillCategories, snap.SkillCategories)
	o.store.WriteField(models.FamilyTechnologies, snap.Technologies)
	o.store.WriteField(models.FamilyMessages, snap.Messages)
	o.store.WriteField(models.FamilyPageViews, snap.PageViews)
}
