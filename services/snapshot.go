package services

import (
	"io"

	"github.com/ptroncoso/portfolio-admin/store"
)

// ExportFileName is the suggested download name, stamped with today's date.
func (o *Orchestrator) ExportFileName() string {
	return store.ExportFileName(o.now())
}

// ExportSnapshot streams the stored snapshot as JSON.
func (o *Orchestrator) ExportSnapshot(w io.Writer) error {
	return o.store.Export(w)
}

// ImportSnapshot replaces the stored snapshot with an exported one and
// swaps it into memory. The previous snapshot remains in the backup file.
func (o *Orchestrator) ImportSnapshot(r io.Reader) Outcome {
	if err := o.store.Import(r); err != nil {
		o.logger.Warn().Err(err).Msg("snapshot import rejected")
		return failure("import failed: file is not a valid snapshot")
	}
	o.ReloadFromStore()
	return success("snapshot imported")
}

// RestoreBackup rolls the store back to the snapshot before the last full
// write and reloads it into memory.
func (o *Orchestrator) RestoreBackup() Outcome {
	if !o.store.RestoreBackup() {
		return failure("no backup available")
	}
	o.ReloadFromStore()
	return success("backup restored")
}
