// Package integration exercises the tag engine end to end over a real
// file system: resolver, codec, parser, and atomic rewrites together.
// Implements: prd005-tag-operations; prd004-task-resolution.
package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mesh-intelligence/satchel/internal/parse"
	"github.com/mesh-intelligence/satchel/internal/resolve"
	"github.com/mesh-intelligence/satchel/internal/tags"
	"github.com/mesh-intelligence/satchel/internal/taskfs"
)

// testNow is the fixed clock for relative-date assertions.
var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

// setupSatchel builds an engine over an isolated temp task directory.
// Each test gets its own directory and fixed clock.
func setupSatchel(t *testing.T) (*tags.Engine, string) {
	t.Helper()
	dir := t.TempDir()
	fsys := taskfs.NewOS()
	res := resolve.New(fsys, dir)
	parser := parse.NewParserAt(func() time.Time { return testNow })
	return tags.New(fsys, res, parser), dir
}

// mustWriteTask writes a task file under dir and returns its path.
func mustWriteTask(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// mustReadFile returns the current content of path.
func mustReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
