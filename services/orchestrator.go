// Package services holds the data orchestrator: the single source of truth
// for what the admin surface sees, reconciling the remote provider with the
// persistent local store and the seed catalog.
package services

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ptroncoso/portfolio-admin/models"
	"github.com/ptroncoso/portfolio-admin/store"
)

const languageSlot = "preferred_language"

// Outcome is the structured result of every orchestrator operation. No
// operation panics or returns a raw error across this boundary; Message is
// suitable for direct display.
type Outcome struct {
	OK      bool   `json:"ok"`
	Offline bool   `json:"offline,omitempty"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message"`
}

func success(message string) Outcome   { return Outcome{OK: true, Message: message} }
func localOnly(message string) Outcome { return Outcome{OK: true, Offline: true, Message: message} }
func failure(message string) Outcome   { return Outcome{Message: message} }

// Orchestrator owns the in-memory snapshot and every mutation path. It is
// constructed once per admin session; consumers read state through State()
// clones and mutate only through the action methods.
type Orchestrator struct {
	store   *store.Store
	gateway RemoteGateway // nil when no remote is configured
	logger  zerolog.Logger

	mu     sync.RWMutex
	state  models.Snapshot
	online bool

	now       func() time.Time
	randViews func() int
}

func New(st *store.Store, gateway RemoteGateway, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		store:   st,
		gateway: gateway,
		logger:  logger.With().Str("component", "orchestrator").Logger(),
		state:   st.Read(),
		now:     time.Now,
		// plausible placeholder shown when no view count is known at all
		randViews: func() int { return rand.Intn(400) + 100 },
	}
}

// Online reports whether the last health check succeeded.
func (o *Orchestrator) Online() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.online
}

// State returns a deep copy of the current snapshot.
func (o *Orchestrator) State() models.Snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state.Clone()
}

// LocalizedState applies the language fallback at the read boundary and
// substitutes the running view counter into the designated live-views stat,
// which is auto-populated rather than edited.
func (o *Orchestrator) LocalizedState(lang models.Language) models.Snapshot {
	snap := o.State()
	for i := range snap.Stats {
		if snap.Stats[i].Icon == models.LiveViewsIcon {
			live := strconv.Itoa(snap.PageViews)
			snap.Stats[i].Value = live
			snap.Stats[i].ValueEN = live
		}
	}
	return snap.Localized(lang)
}

// PendingCount is the number of locally created records awaiting sync.
func (o *Orchestrator) PendingCount() int {
	return store.PendingCount(o.State())
}

// Language returns the persisted display-language preference.
func (o *Orchestrator) Language() models.Language {
	raw, _ := o.store.Slot(languageSlot)
	return models.ParseLanguage(raw)
}

// SetLanguage persists the display-language preference.
func (o *Orchestrator) SetLanguage(lang models.Language) {
	if err := o.store.SetSlot(languageSlot, string(lang)); err != nil {
		o.logger.Warn().Err(err).Msg("persisting language preference failed")
	}
}

// ReloadFromStore replaces the in-memory state with the stored snapshot.
// Called after a snapshot import or backup restore.
func (o *Orchestrator) ReloadFromStore() {
	snap := o.store.Read()
	o.mu.Lock()
	o.state = snap
	o.mu.Unlock()
}

func (o *Orchestrator) setOnline(online bool) {
	o.mu.Lock()
	o.online = online
	o.mu.Unlock()
}

// mutate applies fn to the owned snapshot and persists the touched family
// so unrelated families are never clobbered. fn returns live state, so the
// write lock is held through the persist; releasing it earlier would let a
// concurrent mutation write into the slice while it is being marshaled.
func (o *Orchestrator) mutate(family models.Family, fn func(snap *models.Snapshot) any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	value := fn(&o.state)
	o.store.WriteField(family, value)
}

func replaceOrAppend[T any](list []T, match func(T) bool, item T) []T {
	for i := range list {
		if match(list[i]) {
			list[i] = item
			return list
		}
	}
	return append(list, item)
}

func removeWhere[T any](list []T, match func(T) bool) []T {
	out := list[:0]
	for _, item := range list {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}
