package confkit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDefault_WritesDefaultText(t *testing.T) {
	m, path := testManager(t)

	if err := m.CreateDefault(path, false, false); err != nil {
		t.Fatalf("CreateDefault() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != testDefault {
		t.Errorf("file content = %q, want default text %q", got, testDefault)
	}
}

func TestCreateDefault_Idempotent(t *testing.T) {
	m, path := testManager(t)

	if err := m.CreateDefault(path, false, false); err != nil {
		t.Fatalf("first CreateDefault() error = %v", err)
	}
	if err := m.CreateDefault(path, false, false); err != nil {
		t.Fatalf("second CreateDefault() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != testDefault {
		t.Errorf("file content after second call = %q, want %q", got, testDefault)
	}
}

func TestCreateDefault_CreateParent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "config.toml")
	m := New[testConfig]("", "Acme", "Tool", "config.toml", testDefault,
		WithPath[testConfig](path))

	if err := m.CreateDefault(path, false, true); err != nil {
		t.Fatalf("CreateDefault() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestCreateDefault_MissingParentNotCreated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	m := New[testConfig]("", "Acme", "Tool", "config.toml", testDefault,
		WithPath[testConfig](path))

	if err := m.CreateDefault(path, false, false); err == nil {
		t.Fatal("CreateDefault() without createParent should fail when the parent is missing")
	}
}

func TestCreateDefault_BackupPreservesPrior(t *testing.T) {
	m, path := testManager(t)
	if err := writeFile(path, "output = \"old\"\nnumber = 1\n"); err != nil {
		t.Fatal(err)
	}

	if err := m.CreateDefault(path, true, false); err != nil {
		t.Fatalf("CreateDefault() error = %v", err)
	}

	backup, ok := BackupPath(path)
	if !ok {
		t.Fatal("BackupPath() failed")
	}
	prior, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if string(prior) != "output = \"old\"\nnumber = 1\n" {
		t.Errorf("backup content = %q, want the prior file content", prior)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != testDefault {
		t.Errorf("file content = %q, want default text", got)
	}
}

func TestCreateDefault_BackupTakesPriorityOverParent(t *testing.T) {
	// With both flags set and a prior file present, only the backup branch
	// runs. The parent branch is unobservable here (a file implies its parent
	// exists), so assert the backup side.
	m, path := testManager(t)
	if err := writeFile(path, "output = \"old\"\n"); err != nil {
		t.Fatal(err)
	}

	if err := m.CreateDefault(path, true, true); err != nil {
		t.Fatalf("CreateDefault() error = %v", err)
	}

	backup, _ := BackupPath(path)
	if _, err := os.Stat(backup); err != nil {
		t.Errorf("backup not created when both flags set: %v", err)
	}
}

func TestCreateDefault_NoBackupOverwrites(t *testing.T) {
	m, path := testManager(t)
	if err := writeFile(path, "output = \"old\"\n"); err != nil {
		t.Fatal(err)
	}

	if err := m.CreateDefault(path, false, false); err != nil {
		t.Fatalf("CreateDefault() error = %v", err)
	}

	backup, _ := BackupPath(path)
	if _, err := os.Stat(backup); err == nil {
		t.Error("backup file created without createBackup")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != testDefault {
		t.Errorf("file content = %q, want default text", got)
	}
}
