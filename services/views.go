package services

import (
	"context"

	"github.com/ptroncoso/portfolio-admin/models"
)

// visitedSlot marks that a real view count has been recorded here at least
// once. Until it is set, a missing count shows a plausible placeholder
// instead of zero; once set, a low count is trusted as-is.
const visitedSlot = "portfolio_visited"

// Views returns the current page-view count without touching the remote.
func (o *Orchestrator) Views() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state.PageViews
}

// RegisterView counts one public visit and returns the running total. The
// counter is best-effort: a remote failure falls back to the local value,
// and when no count was ever recorded a plausible placeholder is shown
// instead of zero. It never blocks a page load on an error.
func (o *Orchestrator) RegisterView(ctx context.Context) int {
	if o.gateway != nil && o.Online() {
		if current, err := o.gateway.PageViews(ctx); err == nil {
			next := current + 1
			if err := o.gateway.SetPageViews(ctx, next); err != nil {
				o.logger.Warn().Err(err).Msg("persisting remote view count failed")
			}
			o.commitViews(next)
			return next
		}
		o.logger.Warn().Msg("remote view counter unreachable, using local count")
		o.setOnline(false)
	}

	o.mu.RLock()
	local := o.state.PageViews
	o.mu.RUnlock()
	if local <= 0 && !o.viewRecorded() {
		local = o.randViews()
	}
	next := local + 1
	o.commitViews(next)
	return next
}

func (o *Orchestrator) viewRecorded() bool {
	raw, _ := o.store.Slot(visitedSlot)
	return raw != ""
}

func (o *Orchestrator) commitViews(count int) {
	o.mutate(models.FamilyPageViews, func(snap *models.Snapshot) any {
		snap.PageViews = count
		return count
	})
	if err := o.store.SetSlot(visitedSlot, "1"); err != nil {
		o.logger.Warn().Err(err).Msg("persisting visit marker failed")
	}
}
