package auth

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSlots struct {
	data map[string]string
}

func newMemSlots() *memSlots {
	return &memSlots{data: map[string]string{}}
}

func (m *memSlots) Slot(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memSlots) SetSlot(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memSlots) DeleteSlot(key string) {
	delete(m.data, key)
}

func newTestAuthenticator(t *testing.T) (*Authenticator, *time.Time) {
	t.Helper()
	clock := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	a := New(newMemSlots(), "admin@example.com", zerolog.Nop())
	a.now = func() time.Time { return clock }
	require.NoError(t, a.Initialize("hunter2secret"))
	return a, &clock
}

func TestInitializeKeepsExistingDigest(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	// a second bootstrap with a different password must not overwrite
	require.NoError(t, a.Initialize("other-password"))
	result := a.Login("admin@example.com", "hunter2secret")
	assert.True(t, result.OK)
}

func TestLoginSuccess(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	result := a.Login("admin@example.com", "hunter2secret")
	require.True(t, result.OK)
	require.NotNil(t, result.Session)
	assert.Equal(t, "admin@example.com", result.Session.Email)
	assert.NotEmpty(t, result.Session.Token)
	assert.Equal(t, 60*time.Minute, result.Session.ExpiresAt.Sub(result.Session.CreatedAt))
	assert.True(t, a.IsAuthenticated())
}

func TestLoginWrongEmailOrPassword(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	result := a.Login("admin@example.com", "wrong")
	assert.False(t, result.OK)
	assert.Contains(t, result.Message, "4 attempts remaining")

	result = a.Login("intruder@example.com", "hunter2secret")
	assert.False(t, result.OK)
	assert.Contains(t, result.Message, "3 attempts remaining")
	assert.Equal(t, 3, a.RemainingAttempts())
}

func TestLockoutAfterMaxFailures(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	for i := 0; i < 5; i++ {
		a.Login("admin@example.com", "wrong")
	}

	locked, remaining := a.LockStatus()
	require.True(t, locked)
	assert.Equal(t, 15*time.Minute, remaining)
	assert.Equal(t, 0, a.RemainingAttempts())

	// correct credentials are still rejected while locked
	result := a.Login("admin@example.com", "hunter2secret")
	assert.False(t, result.OK)
	assert.Contains(t, result.Message, "locked")
}

func TestLockExpiryResetsAttempts(t *testing.T) {
	a, clock := newTestAuthenticator(t)

	for i := 0; i < 5; i++ {
		a.Login("admin@example.com", "wrong")
	}
	locked, _ := a.LockStatus()
	require.True(t, locked)

	*clock = clock.Add(15*time.Minute + time.Second)

	locked, remaining := a.LockStatus()
	assert.False(t, locked)
	assert.Zero(t, remaining)
	assert.Equal(t, 5, a.RemainingAttempts())

	result := a.Login("admin@example.com", "hunter2secret")
	assert.True(t, result.OK)
}

func TestSessionExpiry(t *testing.T) {
	a, clock := newTestAuthenticator(t)

	result := a.Login("admin@example.com", "hunter2secret")
	require.True(t, result.OK)
	token := result.Session.Token

	*clock = clock.Add(59 * time.Minute)
	assert.True(t, a.ValidateToken(token))

	*clock = clock.Add(2 * time.Minute)
	assert.False(t, a.ValidateToken(token))
	assert.Nil(t, a.Session())
	assert.False(t, a.IsAuthenticated())
}

func TestValidateTokenRejectsMismatch(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	result := a.Login("admin@example.com", "hunter2secret")
	require.True(t, result.OK)

	assert.False(t, a.ValidateToken(""))
	assert.False(t, a.ValidateToken("not-the-token"))
	assert.True(t, a.ValidateToken(result.Session.Token))
}

func TestRenewExtendsSession(t *testing.T) {
	a, clock := newTestAuthenticator(t)

	result := a.Login("admin@example.com", "hunter2secret")
	require.True(t, result.OK)

	*clock = clock.Add(45 * time.Minute)
	require.True(t, a.Renew())

	*clock = clock.Add(30 * time.Minute)
	assert.True(t, a.IsAuthenticated(), "renewed session outlives the original window")

	*clock = clock.Add(31 * time.Minute)
	assert.False(t, a.IsAuthenticated())
	assert.False(t, a.Renew(), "an expired session cannot be renewed")
}

func TestLogout(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	result := a.Login("admin@example.com", "hunter2secret")
	require.True(t, result.OK)

	a.Logout()
	assert.False(t, a.IsAuthenticated())
	assert.False(t, a.ValidateToken(result.Session.Token))
}

func TestChangePassword(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	ok, msg := a.ChangePassword("wrong", "newpassword")
	assert.False(t, ok)
	assert.Contains(t, msg, "incorrect")

	ok, msg = a.ChangePassword("hunter2secret", "tiny")
	assert.False(t, ok)
	assert.Contains(t, msg, "at least 6")

	ok, _ = a.ChangePassword("hunter2secret", "newpassword")
	require.True(t, ok)

	assert.False(t, a.Login("admin@example.com", "hunter2secret").OK)
	// the failure above consumed one attempt
	assert.True(t, a.Login("admin@example.com", "newpassword").OK)
}

func TestSuccessfulLoginResetsAttempts(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	a.Login("admin@example.com", "wrong")
	a.Login("admin@example.com", "wrong")
	require.Equal(t, 3, a.RemainingAttempts())

	require.True(t, a.Login("admin@example.com", "hunter2secret").OK)
	assert.Equal(t, 5, a.RemainingAttempts())
}
