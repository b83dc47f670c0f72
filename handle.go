package confkit

import (
	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/confkit/pkg/fileutil"
)

// Handle binds a decoded config record to the file path it came from. The path
// is fixed at construction; Reload and Save always operate against it. The
// handle exclusively owns its record.
type Handle[T any] struct {
	mgr  *Manager[T]
	data *T
	path string
}

// Bind attaches an in-memory record to a path without touching the
// filesystem. The record is copied into the handle.
func (m *Manager[T]) Bind(data T, path string) *Handle[T] {
	return m.bind(&data, path)
}

func (m *Manager[T]) bind(data *T, path string) *Handle[T] {
	return &Handle[T]{mgr: m, data: data, path: path}
}

// Data returns a pointer to the owned record. Mutations through the pointer
// are what Save persists; a successful Reload rewrites the record through the
// same pointer.
func (h *Handle[T]) Data() *T { return h.data }

// Path returns the file path the handle is bound to.
func (h *Handle[T]) Path() string { return h.path }

// Reload re-reads and decodes the bound file, replacing the owned record on
// success. On failure the record keeps its last known good value and the
// failure is returned, matching ErrInaccessible or ErrInvalid.
func (h *Handle[T]) Reload() error {
	open := h.mgr.Open(h.path)

	cfg, ok := open.Config()
	if !ok {
		if open.State() == OpenInvalid {
			return errors.Wrapf(ErrInvalid, "reloading %s: %v", h.path, open.Err())
		}
		return errors.Wrapf(ErrInaccessible, "reloading %s: %v", h.path, open.Err())
	}

	*h.data = *cfg
	h.mgr.log.Debug("reloaded config file", "path", h.path)
	return nil
}

// Save encodes the owned record and writes it to the bound path, creating or
// truncating the file. The createBackup and createParent flags follow the
// CreateDefault policy: a requested backup of an existing file preempts parent
// creation, and a failed backup rename is ignored. An encode failure matches
// ErrSerialize; I/O failures match ErrInaccessible.
func (h *Handle[T]) Save(createBackup, createParent bool) error {
	if err := h.mgr.prepareTarget(h.path, createBackup, createParent); err != nil {
		return errors.Wrapf(ErrInaccessible, "preparing %s: %v", h.path, err)
	}

	data, err := h.mgr.codec.Marshal(h.data)
	if err != nil {
		return errors.Wrapf(ErrSerialize, "encoding config for %s: %v", h.path, err)
	}

	if err := fileutil.WriteFull(h.path, data); err != nil {
		return errors.Wrapf(ErrInaccessible, "writing %s: %v", h.path, err)
	}

	h.mgr.log.Info("saved config file", "path", h.path)
	return nil
}
