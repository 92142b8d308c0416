package taskfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSWriteReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "task.md")
	osfs := NewOS()

	if err := osfs.WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := osfs.WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := osfs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	// No temp files left behind.
	names, err := osfs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(names) != 1 || names[0] != "task.md" {
		t.Errorf("ReadDir = %v, want [task.md]", names)
	}
}

func TestOSReadDirSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := NewOS().ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(names) != 1 || names[0] != "a.md" {
		t.Errorf("ReadDir = %v, want [a.md]", names)
	}
}

func TestMemWriteErr(t *testing.T) {
	m := NewMem()
	m.Files["/tasks/a.md"] = "original"
	m.WriteErr = errors.New("disk full")

	if err := m.WriteFile("/tasks/a.md", []byte("changed")); err == nil {
		t.Fatal("WriteFile succeeded, want injected failure")
	}
	data, err := m.ReadFile("/tasks/a.md")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "original" {
		t.Errorf("failed write mutated contents: %q", data)
	}
}

func TestMemReadDir(t *testing.T) {
	m := NewMem()
	m.Files["/tasks/b.md"] = ""
	m.Files["/tasks/a.md"] = ""
	m.Files["/tasks/sub/c.md"] = ""

	names, err := m.ReadDir("/tasks")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(names) != 2 || names[0] != "a.md" || names[1] != "b.md" {
		t.Errorf("ReadDir = %v, want [a.md b.md]", names)
	}

	if _, err := m.ReadDir("/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDir on missing dir error = %v, want fs.ErrNotExist", err)
	}

	if _, err := m.ReadFile("/tasks/nope.md"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile on missing file error = %v, want fs.ErrNotExist", err)
	}
}
