package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ptroncoso/portfolio-admin/auth"
	"github.com/ptroncoso/portfolio-admin/errs"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	authenticator *auth.Authenticator
}

func newAuthHandler(authenticator *auth.Authenticator) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()
	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		authenticator: authenticator,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid login payload"))
			return
		}

		result := h.authenticator.Login(req.Email, req.Password)
		if !result.OK {
			w.WriteHeader(http.StatusUnauthorized)
		}
		h.responder.WriteJSON(w, result)
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.authenticator.Logout()
		h.responder.WriteJSON(w, map[string]any{"ok": true})
	}
}

func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := h.authenticator.Session()
		if session == nil {
			h.responder.WriteError(w, errs.NewUnauthorized("no active session"))
			return
		}
		h.responder.WriteJSON(w, session)
	}
}

func (h authHandler) renew() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.authenticator.Renew() {
			h.responder.WriteError(w, errs.NewUnauthorized("no active session"))
			return
		}
		h.responder.WriteJSON(w, h.authenticator.Session())
	}
}

func (h authHandler) lockStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locked, remaining := h.authenticator.LockStatus()
		h.responder.WriteJSON(w, map[string]any{
			"locked":             locked,
			"remaining_seconds":  int(remaining.Seconds()),
			"remaining_attempts": h.authenticator.RemainingAttempts(),
		})
	}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h authHandler) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid password payload"))
			return
		}

		ok, message := h.authenticator.ChangePassword(req.CurrentPassword, req.NewPassword)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
		}
		h.responder.WriteJSON(w, map[string]any{"ok": ok, "message": message})
	}
}
