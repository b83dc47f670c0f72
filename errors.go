package confkit

import "github.com/cockroachdb/errors"

// Sentinel errors classifying the failure modes of the setup, reload, and save
// operations. Match with errors.Is.
var (
	// ErrNoConfigPath indicates the platform directory convention could not
	// produce a candidate path for the config file.
	ErrNoConfigPath = errors.New("cannot determine config path")

	// ErrInaccessible indicates an I/O-level failure: the file could not be
	// opened, read, created, or written.
	ErrInaccessible = errors.New("config file inaccessible")

	// ErrInvalid indicates the file was read but its content did not decode
	// into the record type.
	ErrInvalid = errors.New("config file invalid")

	// ErrSerialize indicates the in-memory record could not be encoded. This
	// points at a schema or programming error, not at the filesystem, and is
	// never recovered automatically.
	ErrSerialize = errors.New("config serialization failed")
)
