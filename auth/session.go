package auth

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Session is an issued admin session. The token is opaque; validity is
// decided solely by the stored copy and its expiry.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func newSessionToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}

func (a *Authenticator) createSession(email string) Session {
	now := a.now()
	session := Session{
		Token:     newSessionToken(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTimeout),
	}
	raw, _ := json.Marshal(session)
	if err := a.slots.SetSlot(sessionSlot, string(raw)); err != nil {
		a.logger.Warn().Err(err).Msg("persisting session failed")
	}
	return session
}

// Session returns the current session, or nil when none exists or it has
// expired. Expiry clears the stored session as a side effect.
func (a *Authenticator) Session() *Session {
	raw, ok := a.slots.Slot(sessionSlot)
	if !ok {
		return nil
	}
	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		a.slots.DeleteSlot(sessionSlot)
		return nil
	}
	if session.ExpiresAt.Before(a.now()) {
		a.Logout()
		return nil
	}
	return &session
}

// IsAuthenticated reports whether a live session exists.
func (a *Authenticator) IsAuthenticated() bool {
	return a.Session() != nil
}

// ValidateToken checks a presented token against the stored session. Used
// by the HTTP middleware.
func (a *Authenticator) ValidateToken(token string) bool {
	session := a.Session()
	return session != nil && token != "" && session.Token == token
}

// Renew re-issues a session for the same email with a fresh window. It
// only works while the current session is still valid.
func (a *Authenticator) Renew() bool {
	session := a.Session()
	if session == nil {
		return false
	}
	a.createSession(session.Email)
	return true
}

// Logout clears the session unconditionally.
func (a *Authenticator) Logout() {
	a.slots.DeleteSlot(sessionSlot)
}
