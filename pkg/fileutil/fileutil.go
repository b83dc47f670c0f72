// Package fileutil provides whole-file read and write helpers over the OS
// primitives: full-buffer reads, create-or-truncate writes, parent directory
// creation, and renames.
package fileutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultFilePerm is the permission applied to newly created files.
	DefaultFilePerm = 0o644

	// DefaultDirPerm is the permission applied to newly created directories
	// (private).
	DefaultDirPerm = 0o700
)

// ReadFull reads the entire file at path into memory. The buffer is sized up
// front from the file length reported by Stat, so a well-behaved file is read
// without reallocation. The first failing step wins; partial reads are not
// surfaced.
func ReadFull(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "checking file length")
	}

	buf := bytes.NewBuffer(make([]byte, 0, info.Size()+1))
	if _, err := io.Copy(buf, f); err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	return buf.Bytes(), nil
}

// WriteFull writes data to path, creating the file if absent and truncating any
// existing content. The write happens in place rather than through a temp-file
// rename, so an interrupted write can leave a partial file; callers wanting to
// preserve prior contents take a backup first.
func WriteFull(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFilePerm)
	if err != nil {
		return errors.Wrap(err, "creating file")
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrap(err, "writing file")
	}

	return errors.Wrap(f.Close(), "closing file")
}

// EnsureParent creates the parent directory of path, including intermediate
// directories, if it does not already exist.
func EnsureParent(path string) error {
	parent := filepath.Dir(path)
	if parent == "" || parent == "." || Exists(parent) {
		return nil
	}
	return errors.Wrap(os.MkdirAll(parent, DefaultDirPerm), "creating parent directory")
}

// Rename moves the file at oldPath to newPath.
func Rename(oldPath, newPath string) error {
	return errors.Wrap(os.Rename(oldPath, newPath), "renaming file")
}

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
