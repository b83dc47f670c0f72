package confkit

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Setup is the primary entry point: it locates the config file, creates it
// from the default text when absent, and returns a status message plus a
// Handle bound to the file's path.
//
// Outcomes:
//   - no derivable path: an error matching ErrNoConfigPath
//   - file absent: the default is written (parent created if needed), reopened,
//     and returned with a "Created new" message
//   - file present and valid: returned with a "Using existing" message
//   - file present but unreadable or undecodable: an error naming the path and
//     the cause, matching ErrInaccessible or ErrInvalid
//
// The caller always receives either a fully bound handle or a complete failure
// description, never both and never a partial handle.
func (m *Manager[T]) Setup() (string, *Handle[T], error) {
	return m.setup(false)
}

// SetupReplaceInvalid behaves like Setup with one changed transition: a file
// that exists but fails to decode is backed up and overwritten with the
// default text instead of being reported as an error. Inaccessible files are
// still errors.
func (m *Manager[T]) SetupReplaceInvalid() (string, *Handle[T], error) {
	return m.setup(true)
}

func (m *Manager[T]) setup(replaceInvalid bool) (string, *Handle[T], error) {
	loc := m.Locate()

	switch loc.State() {
	case LocateNoPath:
		return "", nil, errors.Wrapf(ErrNoConfigPath,
			"application %q", m.application)

	case LocateMissing:
		path, _ := loc.Path()
		return m.createAndOpen(path, false)

	default:
		path, _ := loc.Path()
		open, _ := loc.Open()

		switch open.State() {
		case OpenValid:
			cfg, _ := open.Config()
			m.log.Info("using existing config file", "path", path)
			return fmt.Sprintf("Using existing config file: %s", path), m.bind(cfg, path), nil

		case OpenInvalid:
			if replaceInvalid {
				m.log.Warn("replacing invalid config file",
					"path", path, "error", open.Err())
				return m.createAndOpen(path, true)
			}
			return "", nil, errors.Wrapf(ErrInvalid,
				"cannot read configuration at %s: %v", path, open.Err())

		default:
			return "", nil, errors.Wrapf(ErrInaccessible,
				"cannot access config file at %s: %v", path, open.Err())
		}
	}
}

// createAndOpen writes the default file and reopens it through the normal
// pipeline, so the returned handle holds a decoded, normalized record rather
// than a trusted in-memory copy of the default.
func (m *Manager[T]) createAndOpen(path string, createBackup bool) (string, *Handle[T], error) {
	if err := m.CreateDefault(path, createBackup, true); err != nil {
		return "", nil, errors.Wrapf(ErrInaccessible,
			"cannot create config file at %s: %v", path, err)
	}

	open := m.Open(path)
	cfg, ok := open.Config()
	if !ok {
		if open.State() == OpenInvalid {
			// The compiled-in default itself does not decode into T.
			return "", nil, errors.Wrapf(ErrInvalid,
				"new config file at %s does not decode: %v", path, open.Err())
		}
		return "", nil, errors.Wrapf(ErrInaccessible,
			"cannot reopen new config file at %s: %v", path, open.Err())
	}

	m.log.Info("created new config file", "path", path)
	return fmt.Sprintf("Created new config file: %s", path), m.bind(cfg, path), nil
}
