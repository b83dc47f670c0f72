package confkit

import (
	"log/slog"

	"github.com/thoreinstein/confkit/internal/logging"
	"github.com/thoreinstein/confkit/paths"
	"github.com/thoreinstein/confkit/pkg/fileutil"
)

// Preparer is the normalization hook a record type may implement. Prepare is
// invoked exactly once on every freshly decoded record, before any caller sees
// it, and is expected to enforce invariants the file format cannot express
// (canonical casing, filled-in derived fields, and so on).
//
// A WithPrepare option takes precedence over the interface; records
// implementing neither are used as decoded.
type Preparer interface {
	Prepare()
}

// Manager describes one configuration file: the naming tokens that locate it,
// the compiled-in default text used to create it, and the codec that converts
// between its text and the record type T.
//
// A Manager is immutable after construction and safe to share; all filesystem
// work happens inside its methods on the calling goroutine.
type Manager[T any] struct {
	qualifier    string
	organization string
	application  string
	filename     string
	defaultText  string

	codec   Codec
	prepare func(*T)
	path    string
	log     *slog.Logger
}

// Option configures a Manager at construction time.
type Option[T any] func(*Manager[T])

// WithCodec selects the text format. The default is TOML.
func WithCodec[T any](c Codec) Option[T] {
	return func(m *Manager[T]) {
		if c != nil {
			m.codec = c
		}
	}
}

// WithPrepare sets the normalization hook applied to freshly decoded records,
// overriding any Preparer implementation on the record type.
func WithPrepare[T any](fn func(*T)) Option[T] {
	return func(m *Manager[T]) {
		m.prepare = fn
	}
}

// WithPath sets an explicit config file path. Locate and Setup then skip
// platform directory resolution entirely and operate on this path, which lets
// a host application honor a user-specified file (a --config flag, typically).
func WithPath[T any](path string) Option[T] {
	return func(m *Manager[T]) {
		m.path = path
	}
}

// WithLogger routes the library's operational logging to the given logger.
// Without it the library is silent.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(m *Manager[T]) {
		if logger != nil {
			m.log = logger
		}
	}
}

// New constructs a Manager for a config file named filename under the platform
// directory derived from the qualifier, organization, and application naming
// tokens. defaultText is the file body written when the file has to be
// created; callers typically supply it with go:embed.
func New[T any](qualifier, organization, application, filename, defaultText string, opts ...Option[T]) *Manager[T] {
	m := &Manager[T]{
		qualifier:    qualifier,
		organization: organization,
		application:  application,
		filename:     filename,
		defaultText:  defaultText,
		codec:        TOML{},
		log:          logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DefaultText returns the compiled-in default file body.
func (m *Manager[T]) DefaultText() string { return m.defaultText }

// Locate resolves the config file path and classifies what is there: no
// derivable path, a missing file, or an existing file together with the
// outcome of opening it. A WithPath override bypasses resolution.
func (m *Manager[T]) Locate() LocateResult[T] {
	if m.path != "" {
		return m.LocateAt(m.path)
	}

	path, err := paths.ResolveFile(m.qualifier, m.organization, m.application, m.filename)
	if err != nil {
		m.log.Debug("config path resolution failed",
			"application", m.application, "error", err)
		return noPath[T]()
	}
	return m.LocateAt(path)
}

// LocateAt classifies an explicit path without any resolution.
func (m *Manager[T]) LocateAt(path string) LocateResult[T] {
	if !fileutil.Exists(path) {
		m.log.Debug("config file does not exist", "path", path)
		return missing[T](path)
	}
	return found(path, m.Open(path))
}

// Open reads and decodes the file at path. Any I/O failure yields the
// inaccessible state, a decode failure the invalid state. On success the
// record is normalized once and returned in the valid state.
func (m *Manager[T]) Open(path string) OpenResult[T] {
	data, err := fileutil.ReadFull(path)
	if err != nil {
		m.log.Debug("config file unreadable", "path", path, "error", err)
		return inaccessible[T](err)
	}

	cfg := new(T)
	if err := m.codec.Unmarshal(data, cfg); err != nil {
		m.log.Debug("config file does not decode", "path", path, "error", err)
		return invalid[T](err)
	}

	m.normalize(cfg)
	return valid(cfg)
}

func (m *Manager[T]) normalize(cfg *T) {
	if m.prepare != nil {
		m.prepare(cfg)
		return
	}
	if p, ok := any(cfg).(Preparer); ok {
		p.Prepare()
	}
}
