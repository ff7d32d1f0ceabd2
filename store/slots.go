package store

import (
	"os"
	"path/filepath"
	"strings"
)

// Scalar slots are small independent values stored next to the snapshot:
// session, login attempts, password digest, the view-counted marker, and
// the display-language preference. Each slot is one file.

// Slot returns the value stored under key, if any.
func (s *Store) Slot(key string) (string, bool) {
	raw, err := os.ReadFile(s.slotPath(key))
	if err != nil {
		return "", false
	}
	return string(raw), true
}

// SetSlot stores value under key.
func (s *Store) SetSlot(key, value string) error {
	return s.writeFile(s.slotPath(key), []byte(value))
}

// DeleteSlot removes the slot; a missing slot is not an error.
func (s *Store) DeleteSlot(key string) {
	if err := os.Remove(s.slotPath(key)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Str("slot", key).Msg("removing slot failed")
	}
}

func (s *Store) slotPath(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, key)
	return filepath.Join(s.dir, safe+".slot")
}
