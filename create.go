package confkit

import "github.com/thoreinstein/confkit/pkg/fileutil"

// prepareTarget applies the backup and parent-creation policy shared by
// CreateDefault and Handle.Save. The branches are mutually exclusive: when a
// backup is requested and a file already exists, the backup rename preempts
// parent creation even if the parent is also missing. A failed backup rename
// is ignored and the write proceeds; the prior contents are then preserved
// only if the rename succeeded.
func (m *Manager[T]) prepareTarget(path string, createBackup, createParent bool) error {
	if createBackup && fileutil.Exists(path) {
		if backup, ok := BackupPath(path); ok {
			if err := fileutil.Rename(path, backup); err != nil {
				m.log.Warn("backup rename failed, overwriting anyway",
					"path", path, "backup", backup, "error", err)
			} else {
				m.log.Debug("backed up existing file", "path", path, "backup", backup)
			}
		}
	} else if createParent {
		if err := fileutil.EnsureParent(path); err != nil {
			return err
		}
	}
	return nil
}

// CreateDefault writes the compiled-in default text to path, creating or
// truncating the file. With createBackup, an existing file at path is first
// renamed to its BackupPath (best effort). With createParent, a missing parent
// directory is created, unless the backup branch ran instead.
func (m *Manager[T]) CreateDefault(path string, createBackup, createParent bool) error {
	if err := m.prepareTarget(path, createBackup, createParent); err != nil {
		return err
	}

	if err := fileutil.WriteFull(path, []byte(m.defaultText)); err != nil {
		return err
	}

	m.log.Info("wrote default config file", "path", path)
	return nil
}
