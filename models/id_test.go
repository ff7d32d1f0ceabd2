package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoteIDIsNotLocal(t *testing.T) {
	id := NewRemoteID()
	assert.False(t, id.IsLocal())
	assert.False(t, id.IsZero())
}

func TestNewLocalIDCarriesPrefixAndTimestamp(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	id := NewLocalID(now)
	assert.True(t, id.IsLocal())
	assert.True(t, strings.HasPrefix(id.String(), "offline-"))
	assert.Contains(t, id.String(), "1768467600000")
}

func TestParseIDClassification(t *testing.T) {
	assert.True(t, ParseID("offline-1700000000-abcd").IsLocal())
	assert.True(t, ParseID("temp-1700000000-abcd").IsLocal())
	assert.False(t, ParseID("6b2c6a33-9c7e-4a93-9a1d-2f6f8e1c0de1").IsLocal())
	assert.True(t, ParseID("").IsZero())
}

func TestIDJSONRoundTrip(t *testing.T) {
	original := NewLocalID(time.Now())
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded ID
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, original.String(), decoded.String())
	assert.True(t, decoded.IsLocal(), "locality is recovered from the prefix")
}

func TestIDScanAndValue(t *testing.T) {
	var id ID
	require.NoError(t, id.Scan("offline-1-ab"))
	assert.True(t, id.IsLocal())

	v, err := id.Value()
	require.NoError(t, err)
	assert.Equal(t, "offline-1-ab", v)

	var zero ID
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, id.Scan(nil))
	assert.True(t, id.IsZero())

	assert.Error(t, id.Scan(42))
}
