package services

import (
	"context"
	"fmt"

	"github.com/ptroncoso/portfolio-admin/models"
	"github.com/ptroncoso/portfolio-admin/store"
)

// SyncOfflineChanges pushes every locally created record to the remote
// provider. It is create-only: edits to records the remote already knows
// were pushed when they happened (or lost the race to a newer remote write,
// which wins). Records whose create fails keep their local IDs and stay
// pending for the next attempt, even when the rest of the batch went
// through.
func (o *Orchestrator) SyncOfflineChanges(ctx context.Context) Outcome {
	if o.gateway == nil || !o.Online() {
		return failure("cannot sync while offline")
	}

	pending := store.Pending(o.State())
	if pending.Count() == 0 {
		return success("nothing to sync")
	}

	synced := 0
	var failed store.PendingChanges
	for _, item := range pending.WorkPhilosophy {
		draft := item
		draft.ID = models.ID{}
		if _, err := o.gateway.CreateWorkPhilosophy(ctx, draft); err == nil {
			synced++
		} else {
			failed.WorkPhilosophy = append(failed.WorkPhilosophy, item)
			o.logger.Warn().Err(err).Str("family", string(models.FamilyWorkPhilosophy)).Msg("sync push failed")
		}
	}
	for _, item := range pending.Experiences {
		draft := item
		draft.ID = models.ID{}
		if _, err := o.gateway.CreateExperience(ctx, draft); err == nil {
			synced++
		} else {
			failed.Experiences = append(failed.Experiences, item)
			o.logger.Warn().Err(err).Str("family", string(models.FamilyExperiences)).Msg("sync push failed")
		}
	}
	for _, item := range pending.Projects {
		draft := item
		draft.ID = models.ID{}
		if _, err := o.gateway.CreateProject(ctx, draft); err == nil {
			synced++
		} else {
			failed.Projects = append(failed.Projects, item)
			o.logger.Warn().Err(err).Str("family", string(models.FamilyProjects)).Msg("sync push failed")
		}
	}
	for _, item := range pending.Stats {
		draft := item
		draft.ID = models.ID{}
		if _, err := o.gateway.CreateStat(ctx, draft); err == nil {
			synced++
		} else {
			failed.Stats = append(failed.Stats, item)
			o.logger.Warn().Err(err).Str("family", string(models.FamilyStats)).Msg("sync push failed")
		}
	}
	for _, item := range pending.Technologies {
		draft := item
		draft.ID = models.ID{}
		if _, err := o.gateway.CreateTechnology(ctx, draft); err == nil {
			synced++
		} else {
			failed.Technologies = append(failed.Technologies, item)
			o.logger.Warn().Err(err).Str("family", string(models.FamilyTechnologies)).Msg("sync push failed")
		}
	}
	for _, item := range pending.Skills {
		draft := item
		draft.ID = models.ID{}
		if _, err := o.gateway.CreateSkill(ctx, draft); err == nil {
			synced++
		} else {
			failed.Skills = append(failed.Skills, item)
			o.logger.Warn().Err(err).Str("family", string(models.FamilySkillCategories)).Msg("sync push failed")
		}
	}

	if synced == 0 {
		return failure("sync failed, changes are still saved locally")
	}

	// The remote is authoritative: a full reload swaps local IDs for the
	// ones the provider assigned. The reload cannot know about records the
	// remote rejected, so those go back in afterwards with their local IDs
	// intact.
	out := o.LoadAll(ctx)
	if out.Offline {
		// loadOffline re-read the pre-reload store, which still holds
		// every pending record.
		return Outcome{OK: true, Count: synced, Message: fmt.Sprintf("%d items synced, but reloading remote data failed", synced)}
	}
	if remaining := failed.Count(); remaining > 0 {
		o.restorePending(failed)
		return Outcome{OK: true, Count: synced, Message: fmt.Sprintf("%d items synced, %d could not be pushed and remain pending", synced, remaining)}
	}
	return Outcome{OK: true, Count: synced, Message: fmt.Sprintf("%d items synced", synced)}
}

// restorePending merges records back into the freshly reloaded state. Their
// creates failed, so the remote copy of each family cannot contain them.
func (o *Orchestrator) restorePending(failed store.PendingChanges) {
	if len(failed.WorkPhilosophy) > 0 {
		o.mutate(models.FamilyWorkPhilosophy, func(snap *models.Snapshot) any {
			snap.WorkPhilosophy = append(snap.WorkPhilosophy, failed.WorkPhilosophy...)
			return snap.WorkPhilosophy
		})
	}
	if len(failed.Experiences) > 0 {
		o.mutate(models.FamilyExperiences, func(snap *models.Snapshot) any {
			snap.Experiences = append(snap.Experiences, failed.Experiences...)
			return snap.Experiences
		})
	}
	if len(failed.Projects) > 0 {
		o.mutate(models.FamilyProjects, func(snap *models.Snapshot) any {
			snap.Projects = append(snap.Projects, failed.Projects...)
			return snap.Projects
		})
	}
	if len(failed.Stats) > 0 {
		o.mutate(models.FamilyStats, func(snap *models.Snapshot) any {
			snap.Stats = append(snap.Stats, failed.Stats...)
			return snap.Stats
		})
	}
	if len(failed.Technologies) > 0 {
		o.mutate(models.FamilyTechnologies, func(snap *models.Snapshot) any {
			snap.Technologies = append(snap.Technologies, failed.Technologies...)
			return snap.Technologies
		})
	}
	if len(failed.Skills) > 0 {
		o.mutate(models.FamilySkillCategories, func(snap *models.Snapshot) any {
			for _, sk := range failed.Skills {
				for i := range snap.SkillCategories {
					if snap.SkillCategories[i].ID == sk.CategoryID {
						snap.SkillCategories[i].Skills = append(snap.SkillCategories[i].Skills, sk)
					}
				}
			}
			return snap.SkillCategories
		})
	}
}
