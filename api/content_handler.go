package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ptroncoso/portfolio-admin/errs"
	"github.com/ptroncoso/portfolio-admin/models"
	"github.com/ptroncoso/portfolio-admin/services"
)

// contentHandler serves the unauthenticated visitor surface: localized
// content, the contact form, and the view counter.
type contentHandler struct {
	responder    Responder
	logger       zerolog.Logger
	orchestrator *services.Orchestrator
}

func newContentHandler(orchestrator *services.Orchestrator) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()
	return contentHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		orchestrator: orchestrator,
	}
}

func (h contentHandler) getContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := models.ParseLanguage(r.URL.Query().Get("lang"))
		snapshot := h.orchestrator.LocalizedState(lang)
		// visitor messages are admin-only
		snapshot.Messages = nil
		h.responder.WriteJSON(w, map[string]any{
			"content": snapshot,
			"offline": !h.orchestrator.Online(),
		})
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h contentHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid contact payload"))
			return
		}
		out := h.orchestrator.SubmitMessage(r.Context(), req.Name, req.Email, req.Message)
		h.responder.WriteOutcome(w, out)
	}
}

func (h contentHandler) registerView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views := h.orchestrator.RegisterView(r.Context())
		h.responder.WriteJSON(w, map[string]any{"views": views})
	}
}

func (h contentHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"status": "ok",
			"online": h.orchestrator.Online(),
		})
	}
}
