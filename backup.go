package confkit

import (
	"path/filepath"
)

// BackupMarker prefixes the filename of backup copies written next to the
// original file.
const BackupMarker = ".bkp."

// BackupPath derives the sibling backup path for path: same parent directory,
// filename prefixed with BackupMarker. It reports false only when path has no
// filename component (empty, root, or "."/".."). The derivation is pure and
// deterministic.
func BackupPath(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", false
	}
	return filepath.Join(filepath.Dir(path), BackupMarker+name), true
}
