// Package paths resolves platform-appropriate configuration directories from
// three caller-supplied naming tokens: a qualifier (reverse-domain prefix, used
// on macOS), an organization, and an application name.
//
// Resolution is pure string work on top of the XDG base directories reported by
// github.com/adrg/xdg; no filesystem access is performed and no directories are
// created.
package paths

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Sentinel errors for path resolution.
var (
	// ErrNoHomeDir indicates no base configuration directory could be
	// determined for the current user.
	ErrNoHomeDir = errors.New("home directory not found")

	// ErrNoApplication indicates the application naming token was empty.
	ErrNoApplication = errors.New("application name is required")
)

// Resolve returns the base configuration directory for the given naming tokens.
//
// Platform conventions:
//   - linux and other unixes: $XDG_CONFIG_HOME/<app>, where <app> is the
//     application name lowercased with spaces removed
//   - darwin: ~/Library/Application Support/<qualifier>.<organization>.<application>,
//     empty tokens and their separating dots omitted, spaces removed
//   - windows: %LOCALAPPDATA%\<organization>\<application>
//
// The qualifier and organization may be empty; the application name may not.
// Resolution fails only when no base directory is derivable, never with an
// I/O error.
func Resolve(qualifier, organization, application string) (string, error) {
	if strings.TrimSpace(application) == "" {
		return "", ErrNoApplication
	}

	base := xdg.ConfigHome
	if base == "" {
		return "", ErrNoHomeDir
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(base, bundleID(qualifier, organization, application)), nil
	case "windows":
		if organization != "" {
			return filepath.Join(base, organization, application), nil
		}
		return filepath.Join(base, application), nil
	default:
		return filepath.Join(base, unixDirName(application)), nil
	}
}

// ResolveFile resolves the base directory for the naming tokens and joins
// filename onto it. No existence check is performed.
func ResolveFile(qualifier, organization, application, filename string) (string, error) {
	dir, err := Resolve(qualifier, organization, application)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}

// unixDirName normalizes an application name for use as a dotfile-style
// directory: lowercase, spaces stripped.
func unixDirName(application string) string {
	return strings.ToLower(strings.ReplaceAll(application, " ", ""))
}

// bundleID joins the non-empty naming tokens into a macOS bundle identifier,
// e.g. ("com", "Cool Software", "Tool") -> "com.CoolSoftware.Tool".
func bundleID(qualifier, organization, application string) string {
	parts := make([]string, 0, 3)
	for _, tok := range []string{qualifier, organization, application} {
		tok = strings.ReplaceAll(tok, " ", "")
		if tok != "" {
			parts = append(parts, tok)
		}
	}
	return strings.Join(parts, ".")
}
