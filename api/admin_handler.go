package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ptroncoso/portfolio-admin/errs"
	"github.com/ptroncoso/portfolio-admin/models"
	"github.com/ptroncoso/portfolio-admin/services"
)

// adminHandler is the authenticated editing surface over the orchestrator.
type adminHandler struct {
	responder    Responder
	logger       zerolog.Logger
	orchestrator *services.Orchestrator
}

func newAdminHandler(orchestrator *services.Orchestrator) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()
	return adminHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		orchestrator: orchestrator,
	}
}

func decode[T any](r *http.Request) (T, error) {
	var payload T
	err := json.NewDecoder(r.Body).Decode(&payload)
	return payload, err
}

func pathID(r *http.Request) (models.ID, error) {
	raw := chi.URLParam(r, "id")
	id := models.ParseID(raw)
	if id.IsZero() {
		return models.ID{}, errs.NewBadRequest("missing record id")
	}
	return id, nil
}

func (h adminHandler) getState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"state":   h.orchestrator.State(),
			"offline": !h.orchestrator.Online(),
			"pending": h.orchestrator.PendingCount(),
		})
	}
}

func (h adminHandler) reload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := h.orchestrator.LoadAll(r.Context())
		h.responder.WriteOutcome(w, out)
	}
}

func (h adminHandler) getPending() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"pending": h.orchestrator.PendingCount(),
			"offline": !h.orchestrator.Online(),
		})
	}
}

func (h adminHandler) sync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := h.orchestrator.SyncOfflineChanges(r.Context())
		h.responder.WriteOutcome(w, out)
	}
}

func (h adminHandler) getLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{"language": h.orchestrator.Language()})
	}
}

func (h adminHandler) setLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decode[struct {
			Language string `json:"language"`
		}](r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid language payload"))
			return
		}
		lang := models.ParseLanguage(req.Language)
		h.orchestrator.SetLanguage(lang)
		h.responder.WriteJSON(w, map[string]any{"language": lang})
	}
}

func (h adminHandler) saveStyle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := decode[models.StyleSettings](r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid style payload"))
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.SaveStyleSettings(r.Context(), settings))
	}
}

func (h adminHandler) saveHero() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hero, err := decode[models.HeroProfile](r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid hero payload"))
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.SaveHero(r.Context(), hero))
	}
}

func (h adminHandler) saveAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		about, err := decode[models.AboutProfile](r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid about payload"))
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.SaveAbout(r.Context(), about))
	}
}

func (h adminHandler) savePhilosophy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := decode[models.WorkPhilosophy](r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid philosophy payload"))
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.SaveWorkPhilosophy(r.Context(), item))
	}
}

func (h adminHandler) deletePhilosophy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.DeleteWorkPhilosophy(r.Context(), id))
	}
}

func (h adminHandler) saveExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := decode[models.Experience](r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid experience payload"))
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.SaveExperience(r.Context(), item))
	}
}

func (h adminHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.DeleteExperience(r.Context(), id))
	}
}

func (h adminHandler) saveProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := decode[models.Project](r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid project payload"))
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.SaveProject(r.Context(), item))
	}
}

func (h adminHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.DeleteProject(r.Context(), id))
	}
}

func (h adminHandler) saveStat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := decode[models.Stat](r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid stat payload"))
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.SaveStat(r.Context(), item))
	}
}

func (h adminHandler) saveSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := decode[models.Skill](r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid skill payload"))
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.SaveSkill(r.Context(), item))
	}
}

func (h adminHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.DeleteSkill(r.Context(), id))
	}
}

func (h adminHandler) saveTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := decode[models.Technology](r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid technology payload"))
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.SaveTechnology(r.Context(), item))
	}
}

func (h adminHandler) deleteTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.DeleteTechnology(r.Context(), id))
	}
}

func (h adminHandler) markMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.MarkMessageRead(r.Context(), id))
	}
}

func (h adminHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteOutcome(w, h.orchestrator.DeleteMessage(r.Context(), id))
	}
}

func (h adminHandler) exportSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.orchestrator.ExportFileName()))
		if err := h.orchestrator.ExportSnapshot(w); err != nil {
			h.logger.Error().Err(err).Msg("snapshot export failed")
		}
	}
}

func (h adminHandler) importSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteOutcome(w, h.orchestrator.ImportSnapshot(r.Body))
	}
}

func (h adminHandler) restoreBackup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteOutcome(w, h.orchestrator.RestoreBackup())
	}
}
