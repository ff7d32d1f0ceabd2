package services

import (
	"context"
	"strings"

	"github.com/ptroncoso/portfolio-admin/models"
)

// Every mutation follows the same shape: validate without touching I/O,
// attempt the remote write when online, then apply the change to the owned
// snapshot and persist the touched family no matter what the remote said.
// A failed remote write downgrades the outcome to local-only, never to an
// error.

// saveItem runs the shared save path for one collection record. Unconfirmed
// creates get a local ID so the pending tracker can find them later.
func saveItem[T any](
	o *Orchestrator,
	ctx context.Context,
	family models.Family,
	noun string,
	item T,
	idOf func(T) models.ID,
	withID func(T, models.ID) T,
	create func(context.Context, T) (T, error),
	update func(context.Context, T) error,
	list func(*models.Snapshot) *[]T,
) Outcome {
	prior := idOf(item)
	isNew := prior.IsZero() || prior.IsLocal()

	confirmed := false
	if o.gateway != nil && o.Online() {
		var err error
		if isNew {
			var created T
			created, err = create(ctx, withID(item, models.ID{}))
			if err == nil {
				item = created
			}
		} else {
			err = update(ctx, item)
		}
		if err != nil {
			o.logger.Warn().Err(err).Str("family", string(family)).Msg("remote save failed, keeping change locally")
			o.setOnline(false)
		} else {
			confirmed = true
		}
	}
	// an unconfirmed create keeps an already assigned local ID
	if isNew && !confirmed && prior.IsZero() {
		item = withID(item, models.NewLocalID(o.now()))
	}

	next := idOf(item)
	o.mutate(family, func(snap *models.Snapshot) any {
		target := list(snap)
		*target = replaceOrAppend(*target, func(t T) bool {
			id := idOf(t)
			return id == next || (!prior.IsZero() && id == prior)
		}, item)
		return *target
	})

	if confirmed {
		return success(noun + " saved")
	}
	return localOnly(noun + " saved locally, will sync when online")
}

// deleteItem removes one collection record. Records that only ever existed
// locally skip the remote call entirely.
func deleteItem[T any](
	o *Orchestrator,
	ctx context.Context,
	family models.Family,
	noun string,
	id models.ID,
	idOf func(T) models.ID,
	remove func(context.Context, models.ID) error,
	list func(*models.Snapshot) *[]T,
) Outcome {
	if id.IsZero() {
		return failure(noun + " not found")
	}

	confirmed := id.IsLocal()
	if !confirmed && o.gateway != nil && o.Online() {
		if err := remove(ctx, id); err != nil {
			o.logger.Warn().Err(err).Str("family", string(family)).Msg("remote delete failed, removing locally")
			o.setOnline(false)
		} else {
			confirmed = true
		}
	}

	o.mutate(family, func(snap *models.Snapshot) any {
		target := list(snap)
		*target = removeWhere(*target, func(t T) bool { return idOf(t) == id })
		return *target
	})

	if confirmed {
		return success(noun + " deleted")
	}
	return localOnly(noun + " removed locally, remote copy may reappear after reconnect")
}

// saveSingleton runs the shared save path for the one-row families.
func saveSingleton[T any](
	o *Orchestrator,
	ctx context.Context,
	family models.Family,
	noun string,
	item T,
	save func(context.Context, T) error,
	assign func(*models.Snapshot, T),
) Outcome {
	confirmed := false
	if o.gateway != nil && o.Online() {
		if err := save(ctx, item); err != nil {
			o.logger.Warn().Err(err).Str("family", string(family)).Msg("remote save failed, keeping change locally")
			o.setOnline(false)
		} else {
			confirmed = true
		}
	}
	o.mutate(family, func(snap *models.Snapshot) any {
		assign(snap, item)
		return item
	})
	if confirmed {
		return success(noun + " saved")
	}
	return localOnly(noun + " saved locally, will sync when online")
}

func (o *Orchestrator) SaveStyleSettings(ctx context.Context, settings models.StyleSettings) Outcome {
	if settings.ParticleCount < 0 {
		return failure("particle count cannot be negative")
	}
	return saveSingleton(o, ctx, models.FamilyStyleSettings, "style settings", settings,
		o.gatewaySaveStyleSettings,
		func(snap *models.Snapshot, v models.StyleSettings) { snap.StyleSettings = v })
}

func (o *Orchestrator) SaveHero(ctx context.Context, hero models.HeroProfile) Outcome {
	if strings.TrimSpace(hero.FirstName) == "" {
		return failure("first name is required")
	}
	return saveSingleton(o, ctx, models.FamilyHero, "hero section", hero,
		o.gatewaySaveHero,
		func(snap *models.Snapshot, v models.HeroProfile) { snap.Hero = v })
}

func (o *Orchestrator) SaveAbout(ctx context.Context, about models.AboutProfile) Outcome {
	if strings.TrimSpace(about.Description) == "" {
		return failure("description is required")
	}
	return saveSingleton(o, ctx, models.FamilyAbout, "about section", about,
		o.gatewaySaveAbout,
		func(snap *models.Snapshot, v models.AboutProfile) { snap.About = v })
}

func (o *Orchestrator) SaveWorkPhilosophy(ctx context.Context, item models.WorkPhilosophy) Outcome {
	if strings.TrimSpace(item.Title) == "" {
		return failure("title is required")
	}
	return saveItem(o, ctx, models.FamilyWorkPhilosophy, "philosophy card", item,
		func(v models.WorkPhilosophy) models.ID { return v.ID },
		func(v models.WorkPhilosophy, id models.ID) models.WorkPhilosophy { v.ID = id; return v },
		o.gatewayCreateWorkPhilosophy, o.gatewayUpdateWorkPhilosophy,
		func(snap *models.Snapshot) *[]models.WorkPhilosophy { return &snap.WorkPhilosophy })
}

func (o *Orchestrator) DeleteWorkPhilosophy(ctx context.Context, id models.ID) Outcome {
	return deleteItem(o, ctx, models.FamilyWorkPhilosophy, "philosophy card", id,
		func(v models.WorkPhilosophy) models.ID { return v.ID },
		o.gatewayDeleteWorkPhilosophy,
		func(snap *models.Snapshot) *[]models.WorkPhilosophy { return &snap.WorkPhilosophy })
}

func (o *Orchestrator) SaveExperience(ctx context.Context, item models.Experience) Outcome {
	if strings.TrimSpace(item.Title) == "" {
		return failure("title is required")
	}
	if item.Type != models.ExperienceWork && item.Type != models.ExperienceEducation {
		return failure("type must be work or education")
	}
	return saveItem(o, ctx, models.FamilyExperiences, "experience", item,
		func(v models.Experience) models.ID { return v.ID },
		func(v models.Experience, id models.ID) models.Experience { v.ID = id; return v },
		o.gatewayCreateExperience, o.gatewayUpdateExperience,
		func(snap *models.Snapshot) *[]models.Experience { return &snap.Experiences })
}

func (o *Orchestrator) DeleteExperience(ctx context.Context, id models.ID) Outcome {
	return deleteItem(o, ctx, models.FamilyExperiences, "experience", id,
		func(v models.Experience) models.ID { return v.ID },
		o.gatewayDeleteExperience,
		func(snap *models.Snapshot) *[]models.Experience { return &snap.Experiences })
}

func (o *Orchestrator) SaveProject(ctx context.Context, item models.Project) Outcome {
	if strings.TrimSpace(item.Title) == "" {
		return failure("title is required")
	}
	return saveItem(o, ctx, models.FamilyProjects, "project", item,
		func(v models.Project) models.ID { return v.ID },
		func(v models.Project, id models.ID) models.Project { v.ID = id; return v },
		o.gatewayCreateProject, o.gatewayUpdateProject,
		func(snap *models.Snapshot) *[]models.Project { return &snap.Projects })
}

func (o *Orchestrator) DeleteProject(ctx context.Context, id models.ID) Outcome {
	return deleteItem(o, ctx, models.FamilyProjects, "project", id,
		func(v models.Project) models.ID { return v.ID },
		o.gatewayDeleteProject,
		func(snap *models.Snapshot) *[]models.Project { return &snap.Projects })
}

// SaveStat covers both the hand-edited figures and the auto-populated live
// view counter. There is no delete; the stat set is curated, not open-ended.
func (o *Orchestrator) SaveStat(ctx context.Context, item models.Stat) Outcome {
	if strings.TrimSpace(item.Label) == "" {
		return failure("label is required")
	}
	return saveItem(o, ctx, models.FamilyStats, "stat", item,
		func(v models.Stat) models.ID { return v.ID },
		func(v models.Stat, id models.ID) models.Stat { v.ID = id; return v },
		o.gatewayCreateStat, o.gatewayUpdateStat,
		func(snap *models.Snapshot) *[]models.Stat { return &snap.Stats })
}

// SaveSkill places the skill inside its category in the nested snapshot
// shape. The category must already exist.
func (o *Orchestrator) SaveSkill(ctx context.Context, item models.Skill) Outcome {
	if strings.TrimSpace(item.Name) == "" {
		return failure("name is required")
	}
	if item.Level < 0 || item.Level > 100 {
		return failure("level must be between 0 and 100")
	}
	if !o.categoryExists(item.CategoryID) {
		return failure("unknown skill category")
	}

	prior := item.ID
	isNew := prior.IsZero() || prior.IsLocal()

	confirmed := false
	if o.gateway != nil && o.Online() {
		var err error
		if isNew {
			stripped := item
			stripped.ID = models.ID{}
			var created models.Skill
			created, err = o.gateway.CreateSkill(ctx, stripped)
			if err == nil {
				item = created
			}
		} else {
			err = o.gateway.UpdateSkill(ctx, item)
		}
		if err != nil {
			o.logger.Warn().Err(err).Str("family", string(models.FamilySkillCategories)).Msg("remote save failed, keeping change locally")
			o.setOnline(false)
		} else {
			confirmed = true
		}
	}
	if isNew && !confirmed && prior.IsZero() {
		item.ID = models.NewLocalID(o.now())
	}

	o.mutate(models.FamilySkillCategories, func(snap *models.Snapshot) any {
		for i := range snap.SkillCategories {
			cat := &snap.SkillCategories[i]
			// moving a skill between categories removes it from the old one
			if cat.ID != item.CategoryID {
				cat.Skills = removeWhere(cat.Skills, func(s models.Skill) bool {
					return s.ID == item.ID || (!prior.IsZero() && s.ID == prior)
				})
				continue
			}
			cat.Skills = replaceOrAppend(cat.Skills, func(s models.Skill) bool {
				return s.ID == item.ID || (!prior.IsZero() && s.ID == prior)
			}, item)
		}
		return snap.SkillCategories
	})

	if confirmed {
		return success("skill saved")
	}
	return localOnly("skill saved locally, will sync when online")
}

func (o *Orchestrator) DeleteSkill(ctx context.Context, id models.ID) Outcome {
	if id.IsZero() {
		return failure("skill not found")
	}

	confirmed := id.IsLocal()
	if !confirmed && o.gateway != nil && o.Online() {
		if err := o.gateway.DeleteSkill(ctx, id); err != nil {
			o.logger.Warn().Err(err).Str("family", string(models.FamilySkillCategories)).Msg("remote delete failed, removing locally")
			o.setOnline(false)
		} else {
			confirmed = true
		}
	}

	o.mutate(models.FamilySkillCategories, func(snap *models.Snapshot) any {
		for i := range snap.SkillCategories {
			cat := &snap.SkillCategories[i]
			cat.Skills = removeWhere(cat.Skills, func(s models.Skill) bool { return s.ID == id })
		}
		return snap.SkillCategories
	})

	if confirmed {
		return success("skill deleted")
	}
	return localOnly("skill removed locally, remote copy may reappear after reconnect")
}

func (o *Orchestrator) categoryExists(id models.ID) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	for _, cat := range o.state.SkillCategories {
		if cat.ID == id {
			return true
		}
	}
	return false
}

func (o *Orchestrator) SaveTechnology(ctx context.Context, item models.Technology) Outcome {
	if strings.TrimSpace(item.Name) == "" {
		return failure("name is required")
	}
	return saveItem(o, ctx, models.FamilyTechnologies, "technology", item,
		func(v models.Technology) models.ID { return v.ID },
		func(v models.Technology, id models.ID) models.Technology { v.ID = id; return v },
		o.gatewayCreateTechnology, o.gatewayUpdateTechnology,
		func(snap *models.Snapshot) *[]models.Technology { return &snap.Technologies })
}

func (o *Orchestrator) DeleteTechnology(ctx context.Context, id models.ID) Outcome {
	return deleteItem(o, ctx, models.FamilyTechnologies, "technology", id,
		func(v models.Technology) models.ID { return v.ID },
		o.gatewayDeleteTechnology,
		func(snap *models.Snapshot) *[]models.Technology { return &snap.Technologies })
}

// SubmitMessage is the one write open to unauthenticated visitors.
func (o *Orchestrator) SubmitMessage(ctx context.Context, name, email, body string) Outcome {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(body) == "" {
		return failure("name, email and message are required")
	}
	if !strings.Contains(email, "@") {
		return failure("email address is not valid")
	}
	item := models.ContactMessage{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Message:   strings.TrimSpace(body),
		CreatedAt: o.now(),
	}
	return saveItem(o, ctx, models.FamilyMessages, "message", item,
		func(v models.ContactMessage) models.ID { return v.ID },
		func(v models.ContactMessage, id models.ID) models.ContactMessage { v.ID = id; return v },
		o.gatewayCreateMessage, o.gatewayUpdateMessage,
		func(snap *models.Snapshot) *[]models.ContactMessage { return &snap.Messages })
}

// MarkMessageRead flips the read flag on an inbox entry.
func (o *Orchestrator) MarkMessageRead(ctx context.Context, id models.ID) Outcome {
	var msg models.ContactMessage
	found := false
	o.mu.RLock()
	for _, m := range o.state.Messages {
		if m.ID == id {
			msg = m
			found = true
			break
		}
	}
	o.mu.RUnlock()
	if !found {
		return failure("message not found")
	}
	msg.IsRead = true
	return saveItem(o, ctx, models.FamilyMessages, "message", msg,
		func(v models.ContactMessage) models.ID { return v.ID },
		func(v models.ContactMessage, id models.ID) models.ContactMessage { v.ID = id; return v },
		o.gatewayCreateMessage, o.gatewayUpdateMessage,
		func(snap *models.Snapshot) *[]models.ContactMessage { return &snap.Messages })
}

func (o *Orchestrator) DeleteMessage(ctx context.Context, id models.ID) Outcome {
	return deleteItem(o, ctx, models.FamilyMessages, "message", id,
		func(v models.ContactMessage) models.ID { return v.ID },
		o.gatewayDeleteMessage,
		func(snap *models.Snapshot) *[]models.ContactMessage { return &snap.Messages })
}

// Bound gateway methods, so the generic helpers can take them as plain
// funcs without a nil-gateway panic at the call site (the helpers check
// o.gateway before invoking any of these).

func (o *Orchestrator) gatewaySaveStyleSettings(ctx context.Context, v models.StyleSettings) error {
	return o.gateway.SaveStyleSettings(ctx, v)
}
func (o *Orchestrator) gatewaySaveHero(ctx context.Context, v models.HeroProfile) error {
	return o.gateway.SaveHero(ctx, v)
}
func (o *Orchestrator) gatewaySaveAbout(ctx context.Context, v models.AboutProfile) error {
	return o.gateway.SaveAbout(ctx, v)
}
func (o *Orchestrator) gatewayCreateWorkPhilosophy(ctx context.Context, v models.WorkPhilosophy) (models.WorkPhilosophy, error) {
	return o.gateway.CreateWorkPhilosophy(ctx, v)
}
func (o *Orchestrator) gatewayUpdateWorkPhilosophy(ctx context.Context, v models.WorkPhilosophy) error {
	return o.gateway.UpdateWorkPhilosophy(ctx, v)
}
func (o *Orchestrator) gatewayDeleteWorkPhilosophy(ctx context.Context, id models.ID) error {
	return o.gateway.DeleteWorkPhilosophy(ctx, id)
}
func (o *Orchestrator) gatewayCreateExperience(ctx context.Context, v models.Experience) (models.Experience, error) {
	return o.gateway.CreateExperience(ctx, v)
}
func (o *Orchestrator) gatewayUpdateExperience(ctx context.Context, v models.Experience) error {
	return o.gateway.UpdateExperience(ctx, v)
}
func (o *Orchestrator) gatewayDeleteExperience(ctx context.Context, id models.ID) error {
	return o.gateway.DeleteExperience(ctx, id)
}
func (o *Orchestrator) gatewayCreateProject(ctx context.Context, v models.Project) (models.Project, error) {
	return o.gateway.CreateProject(ctx, v)
}
func (o *Orchestrator) gatewayUpdateProject(ctx context.Context, v models.Project) error {
	return o.gateway.UpdateProject(ctx, v)
}
func (o *Orchestrator) gatewayDeleteProject(ctx context.Context, id models.ID) error {
	return o.gateway.DeleteProject(ctx, id)
}
func (o *Orchestrator) gatewayCreateStat(ctx context.Context, v models.Stat) (models.Stat, error) {
	return o.gateway.CreateStat(ctx, v)
}
func (o *Orchestrator) gatewayUpdateStat(ctx context.Context, v models.Stat) error {
	return o.gateway.UpdateStat(ctx, v)
}
func (o *Orchestrator) gatewayCreateTechnology(ctx context.Context, v models.Technology) (models.Technology, error) {
	return o.gateway.CreateTechnology(ctx, v)
}
func (o *Orchestrator) gatewayUpdateTechnology(ctx context.Context, v models.Technology) error {
	return o.gateway.UpdateTechnology(ctx, v)
}
func (o *Orchestrator) gatewayDeleteTechnology(ctx context.Context, id models.ID) error {
	return o.gateway.DeleteTechnology(ctx, id)
}
func (o *Orchestrator) gatewayCreateMessage(ctx context.Context, v models.ContactMessage) (models.ContactMessage, error) {
	return o.gateway.CreateMessage(ctx, v)
}
func (o *Orchestrator) gatewayUpdateMessage(ctx context.Context, v models.ContactMessage) error {
	return o.gateway.UpdateMessage(ctx, v)
}
func (o *Orchestrator) gatewayDeleteMessage(ctx context.Context, id models.ID) error {
	return o.gateway.DeleteMessage(ctx, id)
}
