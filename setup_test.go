package confkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestSetup_CreatesThenUsesExisting(t *testing.T) {
	m, path := testManager(t)

	msg, handle, err := m.Setup()
	require.NoError(t, err)
	require.Contains(t, msg, "Created new")
	require.Contains(t, msg, path)
	require.Equal(t, path, handle.Path())
	require.Equal(t, "hello", handle.Data().Output)
	require.Equal(t, 3, handle.Data().Number)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, testDefault, string(content))

	msg2, handle2, err := m.Setup()
	require.NoError(t, err)
	require.Contains(t, msg2, "Using existing")
	require.Contains(t, msg2, path)
	require.Equal(t, *handle.Data(), *handle2.Data())
}

func TestSetup_NoPath(t *testing.T) {
	m := New[testConfig]("", "", "", "config.toml", testDefault)

	_, handle, err := m.Setup()
	require.Error(t, err)
	require.Nil(t, handle)
	require.True(t, errors.Is(err, ErrNoConfigPath))
}

func TestSetup_InvalidFile(t *testing.T) {
	m, path := testManager(t)
	require.NoError(t, writeFile(path, "definitely not toml [["))

	_, handle, err := m.Setup()
	require.Error(t, err)
	require.Nil(t, handle)
	require.True(t, errors.Is(err, ErrInvalid))
	require.Contains(t, err.Error(), path)
}

func TestSetup_InaccessibleFile(t *testing.T) {
	// A directory at the config path makes the read fail rather than the
	// decode.
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.Mkdir(path, 0o755))

	m := New[testConfig]("", "Acme", "Tool", "config.toml", testDefault,
		WithPath[testConfig](path))

	_, handle, err := m.Setup()
	require.Error(t, err)
	require.Nil(t, handle)
	require.True(t, errors.Is(err, ErrInaccessible))
	require.Contains(t, err.Error(), path)
}

func TestSetup_UndecodableDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	m := New[testConfig]("", "Acme", "Tool", "config.toml", "broken = [[\n",
		WithPath[testConfig](path))

	_, handle, err := m.Setup()
	require.Error(t, err)
	require.Nil(t, handle)
	require.True(t, errors.Is(err, ErrInvalid))
	require.Contains(t, err.Error(), "does not decode")
}

func TestSetupReplaceInvalid_RegeneratesWithBackup(t *testing.T) {
	m, path := testManager(t)
	const garbage = "definitely not toml [["
	require.NoError(t, writeFile(path, garbage))

	msg, handle, err := m.SetupReplaceInvalid()
	require.NoError(t, err)
	require.Contains(t, msg, "Created new")
	require.Equal(t, "hello", handle.Data().Output)

	// The invalid file survives under the backup path.
	backup, ok := BackupPath(path)
	require.True(t, ok)
	prior, err := os.ReadFile(backup)
	require.NoError(t, err)
	require.Equal(t, garbage, string(prior))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, testDefault, string(content))
}

func TestSetupReplaceInvalid_SharesOtherTransitions(t *testing.T) {
	m, path := testManager(t)

	// Missing file: identical to Setup.
	msg, handle, err := m.SetupReplaceInvalid()
	require.NoError(t, err)
	require.Contains(t, msg, "Created new")
	require.Equal(t, path, handle.Path())

	// Valid file: identical to Setup.
	msg, _, err = m.SetupReplaceInvalid()
	require.NoError(t, err)
	require.Contains(t, msg, "Using existing")
}

func TestSetup_MessageIsCompleteOnFailure(t *testing.T) {
	m, path := testManager(t)
	require.NoError(t, writeFile(path, "x = [["))

	_, _, err := m.Setup()
	require.Error(t, err)
	// The error describes the path and the failure class in one string.
	if !strings.Contains(err.Error(), path) || !strings.Contains(err.Error(), "cannot read configuration") {
		t.Errorf("error %q should name the path and the parse failure", err.Error())
	}
}
