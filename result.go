package confkit

import "fmt"

// OpenState identifies the outcome of reading and decoding a config file.
type OpenState int

const (
	// OpenInaccessible means the file could not be opened or read.
	OpenInaccessible OpenState = iota
	// OpenInvalid means the file was read but did not decode into the record
	// type.
	OpenInvalid
	// OpenValid means the file decoded successfully. The record has already
	// been normalized.
	OpenValid
)

// OpenResult is the tri-state outcome of Manager.Open. Exactly one state is
// active; a valid result always carries a record normalized exactly once.
type OpenResult[T any] struct {
	state OpenState
	cfg   *T
	err   error
}

func inaccessible[T any](err error) OpenResult[T] {
	return OpenResult[T]{state: OpenInaccessible, err: err}
}

func invalid[T any](err error) OpenResult[T] {
	return OpenResult[T]{state: OpenInvalid, err: err}
}

func valid[T any](cfg *T) OpenResult[T] {
	return OpenResult[T]{state: OpenValid, cfg: cfg}
}

// State returns the active state.
func (r OpenResult[T]) State() OpenState { return r.state }

// Config returns the decoded record when the file was valid.
func (r OpenResult[T]) Config() (*T, bool) {
	if r.state != OpenValid {
		return nil, false
	}
	return r.cfg, true
}

// Err returns the underlying failure for the inaccessible and invalid states,
// nil for a valid result.
func (r OpenResult[T]) Err() error { return r.err }

func (r OpenResult[T]) String() string {
	switch r.state {
	case OpenInaccessible:
		return fmt.Sprintf("Cannot access file: %v", r.err)
	case OpenInvalid:
		return fmt.Sprintf("Cannot read configuration: %v", r.err)
	default:
		return "Successfully read file"
	}
}

// LocateState identifies the outcome of resolving a config path and checking
// for a file there.
type LocateState int

const (
	// LocateNoPath means directory resolution produced no candidate path.
	LocateNoPath LocateState = iota
	// LocateMissing means a path was derived but no file exists there.
	LocateMissing
	// LocateFound means a file exists at the path; the embedded OpenResult
	// holds the outcome of reading it.
	LocateFound
)

// LocateResult is the tri-state outcome of Manager.Locate. The no-path state
// carries no path; the other two always do.
type LocateResult[T any] struct {
	state LocateState
	path  string
	open  OpenResult[T]
}

func noPath[T any]() LocateResult[T] {
	return LocateResult[T]{state: LocateNoPath}
}

func missing[T any](path string) LocateResult[T] {
	return LocateResult[T]{state: LocateMissing, path: path}
}

func found[T any](path string, open OpenResult[T]) LocateResult[T] {
	return LocateResult[T]{state: LocateFound, path: path, open: open}
}

// State returns the active state.
func (r LocateResult[T]) State() LocateState { return r.state }

// Path returns the candidate path. It reports false only for the no-path
// state.
func (r LocateResult[T]) Path() (string, bool) {
	if r.state == LocateNoPath {
		return "", false
	}
	return r.path, true
}

// Open returns the embedded open outcome when a file was found.
func (r LocateResult[T]) Open() (OpenResult[T], bool) {
	if r.state != LocateFound {
		return OpenResult[T]{}, false
	}
	return r.open, true
}

// Config returns the decoded record when a file was found and opened
// successfully.
func (r LocateResult[T]) Config() (*T, bool) {
	if r.state != LocateFound {
		return nil, false
	}
	return r.open.Config()
}

func (r LocateResult[T]) String() string {
	switch r.state {
	case LocateMissing:
		return fmt.Sprintf("File does not exist: %s", r.path)
	case LocateFound:
		return fmt.Sprintf("%s at %s", r.open, r.path)
	default:
		return "Cannot find config path."
	}
}
