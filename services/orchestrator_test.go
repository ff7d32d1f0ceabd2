package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptroncoso/portfolio-admin/models"
	"github.com/ptroncoso/portfolio-admin/seed"
	"github.com/ptroncoso/portfolio-admin/store"
)

var errProviderDown = errors.New("provider down")

// fakeGateway is an in-memory RemoteGateway. Flipping healthy simulates
// losing the provider; failWrites makes every mutation error while reads
// keep working.
type fakeGateway struct {
	mu         sync.Mutex
	healthy    bool
	failWrites bool
	// rejects technology creates only, so one family of a batch can fail
	failTechnologyCreates bool

	style        models.StyleSettings
	hero         models.HeroProfile
	about        models.AboutProfile
	philosophies []models.WorkPhilosophy
	experiences  []models.Experience
	projects     []models.Project
	stats        []models.Stat
	categories   []models.SkillCategory
	technologies []models.Technology
	messages     []models.ContactMessage
	views        int

	deleteCalls int
	createCalls int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{healthy: true}
}

func (f *fakeGateway) writeErr() error {
	if f.failWrites {
		return errProviderDown
	}
	return nil
}

func (f *fakeGateway) HealthCheck(ctx context.Context) error {
	if !f.healthy {
		return errProviderDown
	}
	return nil
}

func (f *fakeGateway) StyleSettings(ctx context.Context) (models.StyleSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.style, nil
}

func (f *fakeGateway) SaveStyleSettings(ctx context.Context, s models.StyleSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.writeErr(); err != nil {
		return err
	}
	f.style = s
	return nil
}

func (f *fakeGateway) Hero(ctx context.Context) (models.HeroProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hero, nil
}

func (f *fakeGateway) SaveHero(ctx context.Context, h models.HeroProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.writeErr(); err != nil {
		return err
	}
	f.hero = h
	return nil
}

func (f *fakeGateway) About(ctx context.Context) (models.AboutProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.about, nil
}

func (f *fakeGateway) SaveAbout(ctx context.Context, a models.AboutProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.writeErr(); err != nil {
		return err
	}
	f.about = a
	return nil
}

func (f *fakeGateway) WorkPhilosophies(ctx context.Context) ([]models.WorkPhilosophy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.WorkPhilosophy(nil), f.philosophies...), nil
}

func (f *fakeGateway) CreateWorkPhilosophy(ctx context.Context, item models.WorkPhilosophy) (models.WorkPhilosophy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if err := f.writeErr(); err != nil {
		return models.WorkPhilosophy{}, err
	}
	item.ID = models.NewRemoteID()
	f.philosophies = append(f.philosophies, item)
	return item, nil
}

func (f *fakeGateway) UpdateWorkPhilosophy(ctx context.Context, item models.WorkPhilosophy) error {
	return f.writeLocked()
}

func (f *fakeGateway) DeleteWorkPhilosophy(ctx context.Context, id models.ID) error {
	return f.deleteLocked()
}

func (f *fakeGateway) Experiences(ctx context.Context) ([]models.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Experience(nil), f.experiences...), nil
}

func (f *fakeGateway) CreateExperience(ctx context.Context, item models.Experience) (models.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if err := f.writeErr(); err != nil {
		return models.Experience{}, err
	}
	item.ID = models.NewRemoteID()
	f.experiences = append(f.experiences, item)
	return item, nil
}

func (f *fakeGateway) UpdateExperience(ctx context.Context, item models.Experience) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.writeErr(); err != nil {
		return err
	}
	for i := range f.experiences {
		if f.experiences[i].ID == item.ID {
			f.experiences[i] = item
		}
	}
	return nil
}

func (f *fakeGateway) DeleteExperience(ctx context.Context, id models.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if err := f.writeErr(); err != nil {
		return err
	}
	kept := f.experiences[:0]
	for _, e := range f.experiences {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.experiences = kept
	return nil
}

func (f *fakeGateway) Projects(ctx context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Project(nil), f.projects...), nil
}

func (f *fakeGateway) CreateProject(ctx context.Context, item models.Project) (models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if err := f.writeErr(); err != nil {
		return models.Project{}, err
	}
	item.ID = models.NewRemoteID()
	f.projects = append(f.projects, item)
	return item, nil
}

func (f *fakeGateway) UpdateProject(ctx context.Context, item models.Project) error {
	return f.writeLocked()
}

func (f *fakeGateway) DeleteProject(ctx context.Context, id models.ID) error {
	return f.deleteLocked()
}

func (f *fakeGateway) Stats(ctx context.Context) ([]models.Stat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Stat(nil), f.stats...), nil
}

func (f *fakeGateway) CreateStat(ctx context.Context, item models.Stat) (models.Stat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if err := f.writeErr(); err != nil {
		return models.Stat{}, err
	}
	item.ID = models.NewRemoteID()
	f.stats = append(f.stats, item)
	return item, nil
}

func (f *fakeGateway) UpdateStat(ctx context.Context, item models.Stat) error {
	return f.writeLocked()
}

func (f *fakeGateway) SkillCategories(ctx context.Context) ([]models.SkillCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.SkillCategory(nil), f.categories...), nil
}

func (f *fakeGateway) CreateSkill(ctx context.Context, item models.Skill) (models.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if err := f.writeErr(); err != nil {
		return models.Skill{}, err
	}
	item.ID = models.NewRemoteID()
	for i := range f.categories {
		if f.categories[i].ID == item.CategoryID {
			f.categories[i].Skills = append(f.categories[i].Skills, item)
		}
	}
	return item, nil
}

func (f *fakeGateway) UpdateSkill(ctx context.Context, item models.Skill) error {
	return f.writeLocked()
}

func (f *fakeGateway) DeleteSkill(ctx context.Context, id models.ID) error {
	return f.deleteLocked()
}

func (f *fakeGateway) Technologies(ctx context.Context) ([]models.Technology, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Technology(nil), f.technologies...), nil
}

func (f *fakeGateway) CreateTechnology(ctx context.Context, item models.Technology) (models.Technology, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.failTechnologyCreates {
		return models.Technology{}, errProviderDown
	}
	if err := f.writeErr(); err != nil {
		return models.Technology{}, err
	}
	item.ID = models.NewRemoteID()
	f.technologies = append(f.technologies, item)
	return item, nil
}

func (f *fakeGateway) UpdateTechnology(ctx context.Context, item models.Technology) error {
	return f.writeLocked()
}

func (f *fakeGateway) DeleteTechnology(ctx context.Context, id models.ID) error {
	return f.deleteLocked()
}

func (f *fakeGateway) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ContactMessage(nil), f.messages...), nil
}

func (f *fakeGateway) CreateMessage(ctx context.Context, item models.ContactMessage) (models.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if err := f.writeErr(); err != nil {
		return models.ContactMessage{}, err
	}
	item.ID = models.NewRemoteID()
	f.messages = append(f.messages, item)
	return item, nil
}

func (f *fakeGateway) UpdateMessage(ctx context.Context, item models.ContactMessage) error {
	return f.writeLocked()
}

func (f *fakeGateway) DeleteMessage(ctx context.Context, id models.ID) error {
	return f.deleteLocked()
}

func (f *fakeGateway) PageViews(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.healthy {
		return 0, errProviderDown
	}
	return f.views, nil
}

func (f *fakeGateway) SetPageViews(ctx context.Context, count int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.writeErr(); err != nil {
		return err
	}
	f.views = count
	return nil
}

func (f *fakeGateway) writeLocked() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writeErr()
}

func (f *fakeGateway) deleteLocked() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	return f.writeErr()
}

func newTestOrchestrator(t *testing.T, gw RemoteGateway) *Orchestrator {
	t.Helper()
	st, err := store.New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	o := New(st, gw, zerolog.Nop())
	o.randViews = func() int { return 250 }
	return o
}

func TestLoadAllWithoutGatewayGoesOffline(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	out := o.LoadAll(context.Background())
	assert.True(t, out.OK)
	assert.True(t, out.Offline)
	assert.False(t, o.Online())

	// empty store means seed content
	state := o.State()
	assert.Equal(t, seed.PageViews, state.PageViews)
	assert.NotEmpty(t, state.Experiences)
}

func TestLoadAllFailedHealthCheckFallsBackToStore(t *testing.T) {
	gw := newFakeGateway()
	gw.healthy = false
	o := newTestOrchestrator(t, gw)

	out := o.LoadAll(context.Background())
	assert.True(t, out.OK)
	assert.True(t, out.Offline)
	assert.False(t, o.Online())
}

func TestLoadAllOnlineTakesRemoteData(t *testing.T) {
	gw := newFakeGateway()
	gw.hero = models.HeroProfile{ID: models.NewRemoteID(), FirstName: "Remote", Greeting: "Hola"}
	gw.experiences = []models.Experience{{ID: models.NewRemoteID(), Title: "Remote job"}}
	gw.views = 42
	o := newTestOrchestrator(t, gw)

	out := o.LoadAll(context.Background())
	require.True(t, out.OK)
	assert.False(t, out.Offline)
	assert.True(t, o.Online())

	state := o.State()
	assert.Equal(t, "Remote", state.Hero.FirstName)
	require.Len(t, state.Experiences, 1)
	assert.Equal(t, "Remote job", state.Experiences[0].Title)
	assert.Equal(t, 42, state.PageViews)

	// the loaded snapshot is persisted for the next offline start
	o2 := New(o.store, nil, zerolog.Nop())
	assert.Equal(t, "Remote", o2.State().Hero.FirstName)
}

func TestSaveExperienceOfflineAssignsLocalID(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	o.LoadAll(context.Background())

	out := o.SaveExperience(context.Background(), models.Experience{
		Title: "Draft role",
		Type:  models.ExperienceWork,
	})
	require.True(t, out.OK)
	assert.True(t, out.Offline)

	state := o.State()
	var found *models.Experience
	for i := range state.Experiences {
		if state.Experiences[i].Title == "Draft role" {
			found = &state.Experiences[i]
		}
	}
	require.NotNil(t, found)
	assert.True(t, found.ID.IsLocal())
	assert.Equal(t, 1, o.PendingCount())
}

func TestSaveExperienceOnlineUsesRemoteID(t *testing.T) {
	gw := newFakeGateway()
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	out := o.SaveExperience(context.Background(), models.Experience{
		Title: "Confirmed role",
		Type:  models.ExperienceWork,
	})
	require.True(t, out.OK)
	assert.False(t, out.Offline)
	assert.Zero(t, o.PendingCount())
	require.Len(t, gw.experiences, 1)
	assert.False(t, gw.experiences[0].ID.IsLocal())
}

func TestSaveValidationFailsWithoutIO(t *testing.T) {
	gw := newFakeGateway()
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)
	callsBefore := gw.createCalls

	out := o.SaveExperience(context.Background(), models.Experience{Type: models.ExperienceWork})
	assert.False(t, out.OK)
	assert.Equal(t, callsBefore, gw.createCalls, "invalid input never reaches the remote")

	out = o.SaveExperience(context.Background(), models.Experience{Title: "x", Type: "neither"})
	assert.False(t, out.OK)
}

func TestRemoteWriteFailureKeepsChangeLocally(t *testing.T) {
	gw := newFakeGateway()
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	gw.failWrites = true
	out := o.SaveProject(context.Background(), models.Project{Title: "Doomed push"})
	require.True(t, out.OK, "a failed remote write is a soft warning, not an error")
	assert.True(t, out.Offline)
	assert.False(t, o.Online(), "a failed write flips the connection state")
	assert.Equal(t, 1, o.PendingCount())
}

func TestDeleteLocalRecordSkipsRemote(t *testing.T) {
	gw := newFakeGateway()
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	// create while the provider refuses writes, then reconnect
	gw.failWrites = true
	o.SaveTechnology(context.Background(), models.Technology{Name: "Draft tech"})
	gw.failWrites = false
	o.setOnline(true)

	var localID models.ID
	for _, tech := range o.State().Technologies {
		if tech.Name == "Draft tech" {
			localID = tech.ID
		}
	}
	require.True(t, localID.IsLocal())

	deletesBefore := gw.deleteCalls
	out := o.DeleteTechnology(context.Background(), localID)
	require.True(t, out.OK)
	assert.False(t, out.Offline)
	assert.Equal(t, deletesBefore, gw.deleteCalls, "local-only records are never deleted remotely")
	assert.Zero(t, o.PendingCount())
}

func TestDeleteRemoteRecordCallsGateway(t *testing.T) {
	gw := newFakeGateway()
	gw.experiences = []models.Experience{{ID: models.NewRemoteID(), Title: "Old role"}}
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	id := o.State().Experiences[0].ID
	out := o.DeleteExperience(context.Background(), id)
	require.True(t, out.OK)
	assert.Empty(t, gw.experiences)
	assert.Empty(t, o.State().Experiences)
}

func TestSyncRefusedWhileOffline(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	o.LoadAll(context.Background())

	out := o.SyncOfflineChanges(context.Background())
	assert.False(t, out.OK)
	assert.Contains(t, out.Message, "offline")
}

func TestSyncNothingToDo(t *testing.T) {
	gw := newFakeGateway()
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	out := o.SyncOfflineChanges(context.Background())
	assert.True(t, out.OK)
	assert.Contains(t, out.Message, "nothing to sync")
}

func TestSyncPushesPendingCreates(t *testing.T) {
	gw := newFakeGateway()
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	gw.failWrites = true
	o.SaveExperience(context.Background(), models.Experience{Title: "Draft A", Type: models.ExperienceWork})
	o.setOnline(true)
	o.SaveExperience(context.Background(), models.Experience{Title: "Draft B", Type: models.ExperienceEducation})
	o.setOnline(true)
	o.SaveProject(context.Background(), models.Project{Title: "Draft P"})
	require.Equal(t, 3, o.PendingCount())

	gw.failWrites = false
	o.setOnline(true)
	out := o.SyncOfflineChanges(context.Background())
	require.True(t, out.OK)
	assert.Equal(t, 3, out.Count)

	// remote IDs replaced the local ones through the post-sync reload
	assert.Zero(t, o.PendingCount())
	assert.Len(t, gw.experiences, 2)
	assert.Len(t, gw.projects, 1)
	for _, e := range o.State().Experiences {
		assert.False(t, e.ID.IsLocal())
	}
}

func TestSyncFailureKeepsRecordsPending(t *testing.T) {
	gw := newFakeGateway()
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	gw.failWrites = true
	o.SaveTechnology(context.Background(), models.Technology{Name: "Draft"})
	require.Equal(t, 1, o.PendingCount())

	o.setOnline(true)
	out := o.SyncOfflineChanges(context.Background())
	assert.False(t, out.OK)
	assert.Equal(t, 1, o.PendingCount(), "failed pushes stay pending")
}

func TestSyncPartialFailureKeepsFailedPending(t *testing.T) {
	gw := newFakeGateway()
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	gw.failWrites = true
	o.SaveExperience(context.Background(), models.Experience{Title: "Draft role", Type: models.ExperienceWork})
	o.setOnline(true)
	o.SaveTechnology(context.Background(), models.Technology{Name: "Draft tech"})
	require.Equal(t, 2, o.PendingCount())

	gw.failWrites = false
	gw.failTechnologyCreates = true
	o.setOnline(true)
	out := o.SyncOfflineChanges(context.Background())
	require.True(t, out.OK)
	assert.Equal(t, 1, out.Count)
	assert.Contains(t, out.Message, "remain pending")

	// the experience got its remote ID through the reload, the rejected
	// technology draft is still there with its local one
	assert.Equal(t, 1, o.PendingCount())
	for _, e := range o.State().Experiences {
		assert.False(t, e.ID.IsLocal())
	}
	require.Len(t, o.State().Technologies, 1)
	assert.True(t, o.State().Technologies[0].ID.IsLocal())
	assert.Equal(t, "Draft tech", o.State().Technologies[0].Name)

	// the draft also survives in the store, not just in memory
	restarted := New(o.store, nil, zerolog.Nop())
	assert.Equal(t, 1, restarted.PendingCount())

	// the retry pushes it once the provider accepts creates again
	gw.failTechnologyCreates = false
	out = o.SyncOfflineChanges(context.Background())
	require.True(t, out.OK)
	assert.Equal(t, 1, out.Count)
	assert.Zero(t, o.PendingCount())
}

func TestConcurrentSavesPersistConsistently(t *testing.T) {
	gw := newFakeGateway()
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	id := models.NewRemoteID()
	require.True(t, o.SaveTechnology(context.Background(), models.Technology{ID: id, Name: "v0"}).OK)

	var wg sync.WaitGroup
	for n := 0; n < 4; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				o.SaveTechnology(context.Background(), models.Technology{ID: id, Name: fmt.Sprintf("v%d-%d", n, j)})
			}
		}(n)
	}
	wg.Wait()

	require.Len(t, o.State().Technologies, 1)
	assert.Equal(t, id, o.State().Technologies[0].ID)

	// the persisted copy is one whole write, never a torn mix
	stored := o.store.Read()
	require.Len(t, stored.Technologies, 1)
	assert.Equal(t, id, stored.Technologies[0].ID)
	assert.NotEmpty(t, stored.Technologies[0].Name)
}

func TestRegisterViewOnlineIncrements(t *testing.T) {
	gw := newFakeGateway()
	gw.views = 100
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	assert.Equal(t, 101, o.RegisterView(context.Background()))
	assert.Equal(t, 101, gw.views)
	assert.Equal(t, 102, o.RegisterView(context.Background()))
}

func TestRegisterViewOfflineUsesLocalCount(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	o.LoadAll(context.Background())

	// the seed counter is the local value
	assert.Equal(t, seed.PageViews+1, o.RegisterView(context.Background()))
	assert.Equal(t, seed.PageViews+1, o.Views())
}

func TestRegisterViewPlaceholderOnlyBeforeFirstRecordedCount(t *testing.T) {
	gw := newFakeGateway()
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline) // remote count is 0

	// no count was ever recorded, so the fallback shows the placeholder
	gw.healthy = false
	assert.Equal(t, 251, o.RegisterView(context.Background()))

	// once a count exists the marker keeps the placeholder away, even if
	// the stored value drops back to zero
	o.mutate(models.FamilyPageViews, func(snap *models.Snapshot) any {
		snap.PageViews = 0
		return 0
	})
	assert.Equal(t, 1, o.RegisterView(context.Background()))
}

func TestLocalizedStateSubstitutesLiveViewCount(t *testing.T) {
	gw := newFakeGateway()
	gw.stats = []models.Stat{
		{ID: models.NewRemoteID(), Label: "Visitas", Icon: models.LiveViewsIcon, Value: "0"},
		{ID: models.NewRemoteID(), Label: "Proyectos", Icon: "Rocket", Value: "12"},
	}
	gw.views = 4321
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	stats := o.LocalizedState(models.LanguageES).Stats
	require.Len(t, stats, 2)
	assert.Equal(t, "4321", stats[0].Value, "the live-views stat shows the counter, not its stored value")
	assert.Equal(t, "12", stats[1].Value, "hand-edited stats are untouched")

	// the substitution happens at the read boundary only
	assert.Equal(t, "0", o.State().Stats[0].Value)
}

func TestSubmitMessageValidation(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	o.LoadAll(context.Background())

	assert.False(t, o.SubmitMessage(context.Background(), "", "a@b.c", "hi").OK)
	assert.False(t, o.SubmitMessage(context.Background(), "Ana", "not-an-email", "hi").OK)

	out := o.SubmitMessage(context.Background(), "Ana", "ana@example.com", "Hola!")
	require.True(t, out.OK)
	require.Len(t, o.State().Messages, 1)
	assert.False(t, o.State().Messages[0].IsRead)
}

func TestMarkMessageRead(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	o.LoadAll(context.Background())
	require.True(t, o.SubmitMessage(context.Background(), "Ana", "ana@example.com", "Hola!").OK)
	id := o.State().Messages[0].ID

	require.True(t, o.MarkMessageRead(context.Background(), id).OK)
	assert.True(t, o.State().Messages[0].IsRead)

	assert.False(t, o.MarkMessageRead(context.Background(), models.NewRemoteID()).OK)
}

func TestLocalizedStateAppliesLanguage(t *testing.T) {
	gw := newFakeGateway()
	gw.hero = models.HeroProfile{ID: models.NewRemoteID(), FirstName: "P", Greeting: "Hola", GreetingEN: "Hello"}
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	assert.Equal(t, "Hello", o.LocalizedState(models.LanguageEN).Hero.Greeting)
	assert.Equal(t, "Hola", o.LocalizedState(models.LanguageES).Hero.Greeting)
}

func TestLanguagePreferencePersists(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	assert.Equal(t, models.LanguageES, o.Language())

	o.SetLanguage(models.LanguageEN)
	assert.Equal(t, models.LanguageEN, o.Language())
}

func TestOfflineEditSurvivesRestart(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	o.LoadAll(context.Background())
	require.True(t, o.SaveTechnology(context.Background(), models.Technology{Name: "Draft tech"}).OK)

	// a new orchestrator over the same store sees the draft
	restarted := New(o.store, nil, zerolog.Nop())
	assert.Equal(t, 1, restarted.PendingCount())
}

func TestSaveSkillRequiresKnownCategory(t *testing.T) {
	gw := newFakeGateway()
	catID := models.NewRemoteID()
	gw.categories = []models.SkillCategory{{ID: catID, Name: "Backend"}}
	o := newTestOrchestrator(t, gw)
	require.False(t, o.LoadAll(context.Background()).Offline)

	out := o.SaveSkill(context.Background(), models.Skill{Name: "Go", Level: 90, CategoryID: models.NewRemoteID()})
	assert.False(t, out.OK)

	out = o.SaveSkill(context.Background(), models.Skill{Name: "Go", Level: 90, CategoryID: catID})
	require.True(t, out.OK)
	require.Len(t, o.State().SkillCategories, 1)
	require.Len(t, o.State().SkillCategories[0].Skills, 1)
	assert.False(t, o.State().SkillCategories[0].Skills[0].ID.IsLocal())

	out = o.SaveSkill(context.Background(), models.Skill{Name: "Go", Level: 150, CategoryID: catID})
	assert.False(t, out.OK)
}

func TestImportAndRestoreRoundTrip(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	o.LoadAll(context.Background())
	require.True(t, o.SaveTechnology(context.Background(), models.Technology{Name: "Before import"}).OK)

	var buf bytes.Buffer
	require.NoError(t, o.ExportSnapshot(&buf))

	require.True(t, o.SaveTechnology(context.Background(), models.Technology{Name: "After export"}).OK)

	out := o.ImportSnapshot(&buf)
	require.True(t, out.OK)
	names := []string{}
	for _, tech := range o.State().Technologies {
		names = append(names, tech.Name)
	}
	assert.Contains(t, names, "Before import")
	assert.NotContains(t, names, "After export")

	assert.False(t, o.ImportSnapshot(bytes.NewBufferString("garbage")).OK)
}

func TestExportFileNameIsDateStamped(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	o.now = func() time.Time { return time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC) }
	assert.Equal(t, "portfolio-backup-2026-08-29.json", o.ExportFileName())
}
