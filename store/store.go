// Package store is the persistent local mirror of all portfolio content.
// It keeps one JSON snapshot slot plus a single-slot backup on disk, the
// local counterpart of the remote provider. Storage failures degrade to
// no-ops; callers of Read and WriteField never see an error.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/ptroncoso/portfolio-admin/models"
	"github.com/ptroncoso/portfolio-admin/seed"
)

const (
	snapshotFile = "portfolio_offline_data.json"
	backupFile   = "portfolio_offline_backup.json"
)

// Store reads and writes the snapshot under a data directory. It is not
// safe for concurrent writers across processes; the design assumes a single
// active admin session.
type Store struct {
	dir    string
	logger zerolog.Logger
	now    func() time.Time
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string, logger zerolog.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store: data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	return &Store{
		dir:    dir,
		logger: logger.With().Str("component", "store").Logger(),
		now:    time.Now,
	}, nil
}

func (s *Store) snapshotPath() string { return filepath.Join(s.dir, snapshotFile) }
func (s *Store) backupPath() string   { return filepath.Join(s.dir, backupFile) }

// Read returns the current snapshot. When no snapshot exists, or the stored
// one cannot be parsed, it synthesizes one from the seed catalog stamped
// with the current time; this synthesized value is the logical empty state
// and is not persisted.
func (s *Store) Read() models.Snapshot {
	raw, err := os.ReadFile(s.snapshotPath())
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Msg("reading local snapshot failed, using seed data")
		}
		return seed.Snapshot(s.now())
	}
	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.logger.Warn().Err(err).Msg("local snapshot is corrupted, using seed data")
		return seed.Snapshot(s.now())
	}
	return snap
}

// WriteFull replaces the whole snapshot. The previous persisted value, if
// any, is copied into the single backup slot first. Returns false and
// leaves prior state intact on any serialization or storage failure.
func (s *Store) WriteFull(snap models.Snapshot) bool {
	if prev, err := os.ReadFile(s.snapshotPath()); err == nil {
		if err := s.writeFile(s.backupPath(), prev); err != nil {
			s.logger.Warn().Err(err).Msg("copying snapshot to backup slot failed")
		}
	}
	snap.LastUpdated = s.now()
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Msg("marshaling snapshot failed")
		return false
	}
	if err := s.writeFile(s.snapshotPath(), raw); err != nil {
		s.logger.Error().Err(err).Msg("writing snapshot failed")
		return false
	}
	return true
}

// WriteField replaces a single family and restamps lastUpdated, leaving
// every other family as stored. All per-entity mutations go through here so
// unrelated families are never clobbered.
func (s *Store) WriteField(family models.Family, value any) {
	snap := s.Read()
	if err := snap.Apply(family, value); err != nil {
		s.logger.Error().Err(err).Str("family", string(family)).Msg("applying field update failed")
		return
	}
	snap.LastUpdated = s.now()
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Str("family", string(family)).Msg("marshaling field update failed")
		return
	}
	if err := s.writeFile(s.snapshotPath(), raw); err != nil {
		s.logger.Error().Err(err).Str("family", string(family)).Msg("writing field update failed")
	}
}

// RestoreBackup copies the backup slot back over the live snapshot. Manual
// recovery only; nothing calls this automatically.
func (s *Store) RestoreBackup() bool {
	raw, err := os.ReadFile(s.backupPath())
	if err != nil {
		return false
	}
	if err := s.writeFile(s.snapshotPath(), raw); err != nil {
		s.logger.Error().Err(err).Msg("restoring backup failed")
		return false
	}
	return true
}

// Export writes the current snapshot as indented JSON.
func (s *Store) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Read())
}

// ExportFileName names the downloadable artifact for the given day.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("portfolio-backup-%s.json", now.Format("2006-01-02"))
}

// Import parses a previously exported snapshot and replaces the live one
// wholesale. The caller must reload all dependent state afterwards.
func (s *Store) Import(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("store: read import: %w", err)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("store: parse import: %w", err)
	}
	if !s.WriteFull(snap) {
		return errors.New("store: writing imported snapshot failed")
	}
	return nil
}

// Clear removes the live snapshot and its backup.
func (s *Store) Clear() {
	if err := os.Remove(s.snapshotPath()); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Msg("removing snapshot failed")
	}
	if err := os.Remove(s.backupPath()); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Msg("removing backup failed")
	}
}

// writeFile writes via a temp file and rename so a crash mid-write cannot
// leave a truncated snapshot behind.
func (s *Store) writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
