// Package auth is the offline authentication subsystem: a single fixed
// administrator identity verified against a locally stored bcrypt digest,
// with an attempt-limiting lockout and storage-backed sessions. It has no
// dependency on the remote provider, so the admin surface stays operable
// while the provider is paused or unreachable.
package auth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxLoginAttempts  = 5
	lockoutDuration   = 15 * time.Minute
	sessionTimeout    = 60 * time.Minute
	minPasswordLength = 6

	digestSlot   = "admin_password_hash"
	attemptsSlot = "login_attempts"
	sessionSlot  = "admin_session"
)

// SlotStore is the scalar-slot persistence the authenticator needs.
// *store.Store satisfies it.
type SlotStore interface {
	Slot(key string) (string, bool)
	SetSlot(key, value string) error
	DeleteSlot(key string)
}

// Authenticator verifies the administrator credential and manages lockout
// and session state. Construct once, call Initialize before accepting any
// login attempt.
type Authenticator struct {
	slots  SlotStore
	email  string
	logger zerolog.Logger

	// now is swapped in tests.
	now func() time.Time
}

func New(slots SlotStore, adminEmail string, logger zerolog.Logger) *Authenticator {
	return &Authenticator{
		slots:  slots,
		email:  adminEmail,
		logger: logger.With().Str("component", "auth").Logger(),
		now:    time.Now,
	}
}

// Initialize bootstraps the stored password digest when none exists yet.
// It must run once at startup, before the first login attempt; the digest
// is never recomputed on a later start.
func (a *Authenticator) Initialize(defaultPassword string) error {
	if _, ok := a.slots.Slot(digestSlot); ok {
		return nil
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("auth: bootstrap password digest: %w", err)
	}
	if err := a.slots.SetSlot(digestSlot, string(digest)); err != nil {
		return fmt.Errorf("auth: persist password digest: %w", err)
	}
	a.logger.Info().Msg("administrator password digest initialized")
	return nil
}

// loginAttempts is the persisted attempt counter.
type loginAttempts struct {
	Count       int   `json:"count"`
	LastAttempt int64 `json:"lastAttempt"`
	LockedUntil int64 `json:"lockedUntil,omitempty"`
}

func (a *Authenticator) attempts() loginAttempts {
	raw, ok := a.slots.Slot(attemptsSlot)
	if !ok {
		return loginAttempts{}
	}
	var att loginAttempts
	if err := json.Unmarshal([]byte(raw), &att); err != nil {
		return loginAttempts{}
	}
	return att
}

func (a *Authenticator) saveAttempts(att loginAttempts) {
	raw, _ := json.Marshal(att)
	if err := a.slots.SetSlot(attemptsSlot, string(raw)); err != nil {
		a.logger.Warn().Err(err).Msg("persisting login attempts failed")
	}
}

// LockStatus reports whether login is currently blocked and, if so, how
// long remains. A lock whose expiry has passed is cleared as a side effect,
// resetting the attempt counter.
func (a *Authenticator) LockStatus() (locked bool, remaining time.Duration) {
	att := a.attempts()
	if att.LockedUntil == 0 {
		return false, 0
	}
	until := time.UnixMilli(att.LockedUntil)
	if now := a.now(); until.After(now) {
		return true, until.Sub(now)
	}
	a.saveAttempts(loginAttempts{})
	return false, 0
}

// RemainingAttempts is how many failures are left before lockout.
func (a *Authenticator) RemainingAttempts() int {
	att := a.attempts()
	if left := maxLoginAttempts - att.Count; left > 0 {
		return left
	}
	return 0
}

func (a *Authenticator) recordFailure() {
	att := a.attempts()
	att.Count++
	att.LastAttempt = a.now().UnixMilli()
	if att.Count >= maxLoginAttempts {
		att.LockedUntil = a.now().Add(lockoutDuration).UnixMilli()
	}
	a.saveAttempts(att)
}

// LoginResult is the structured outcome of a login attempt; Message is
// suitable for direct display.
type LoginResult struct {
	OK      bool
	Message string
	Session *Session
}

// Login verifies the credential pair. While locked it rejects immediately
// without recording an attempt; an expired lock resets the counter before
// the attempt is evaluated.
func (a *Authenticator) Login(email, password string) LoginResult {
	if locked, remaining := a.LockStatus(); locked {
		mins := int(remaining.Minutes()) + 1
		return LoginResult{Message: fmt.Sprintf("account locked, retry in %d min", mins)}
	}
	if email == "" || password == "" {
		return LoginResult{Message: "email and password are required"}
	}

	digest, ok := a.slots.Slot(digestSlot)
	if !ok {
		a.logger.Error().Msg("password digest missing, Initialize was not called")
		return LoginResult{Message: "authentication is not ready"}
	}

	if email != a.email || bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) != nil {
		a.recordFailure()
		if locked, remaining := a.LockStatus(); locked {
			mins := int(remaining.Minutes()) + 1
			return LoginResult{Message: fmt.Sprintf("account locked, retry in %d min", mins)}
		}
		return LoginResult{Message: fmt.Sprintf("invalid credentials, %d attempts remaining", a.RemainingAttempts())}
	}

	a.saveAttempts(loginAttempts{})
	session := a.createSession(email)
	return LoginResult{OK: true, Message: "login successful", Session: &session}
}

// ChangePassword re-verifies the current credential before accepting and
// persisting a new digest. It never touches the remote provider.
func (a *Authenticator) ChangePassword(current, newPassword string) (bool, string) {
	if current == "" || newPassword == "" {
		return false, "both passwords are required"
	}
	if len(newPassword) < minPasswordLength {
		return false, fmt.Sprintf("new password must be at least %d characters", minPasswordLength)
	}
	digest, ok := a.slots.Slot(digestSlot)
	if !ok {
		return false, "authentication is not ready"
	}
	if bcrypt.CompareHashAndPassword([]byte(digest), []byte(current)) != nil {
		return false, "current password is incorrect"
	}
	newDigest, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		a.logger.Error().Err(err).Msg("hashing new password failed")
		return false, "changing password failed"
	}
	if err := a.slots.SetSlot(digestSlot, string(newDigest)); err != nil {
		a.logger.Error().Err(err).Msg("persisting new password digest failed")
		return false, "changing password failed"
	}
	return true, "password changed"
}
