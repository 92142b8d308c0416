// Create command writes a new task file with protected frontmatter fields.
// Implements: prd009-satchel-cli R4; prd008-configuration-directories
//
//	(defaults).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/frontmatter"
	"github.com/mesh-intelligence/satchel/internal/parse"
	"github.com/mesh-intelligence/satchel/internal/resolve"
	"github.com/mesh-intelligence/satchel/internal/taskfs"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new task file",
	Long: `Create writes a new markdown task file into the current scope. The
file name is derived from the title, and the frontmatter is seeded with
an id, the title, today's date, a creation timestamp, and any defaults
from config.yaml. Defaults go through the same value parser as key=value
tokens.

Example:
  satchel create "Weekly report"
  satchel create groceries --global`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := resolveScope()
		if err != nil {
			fail("create", err)
		}
		taskDir, err := resolveTaskDir()
		if err != nil {
			fail("create", err)
		}

		fsys := taskfs.NewOS()
		res := resolve.New(fsys, taskDir)
		path, err := createTask(fsys, res.ScopeDir(scope), args[0], configDefaults, time.Now())
		if err != nil {
			fail("create", err)
		}

		if flagJSON {
			printJSON(map[string]any{"path": path})
		} else {
			fmt.Printf("Created %s\n", path)
		}
		return nil
	},
}

// createTask writes the new task file under dir and returns its path. An
// existing file with the same name is never overwritten.
func createTask(fsys taskfs.FS, dir, title string, defaults map[string]string, now time.Time) (string, error) {
	path := filepath.Join(dir, slugify(title)+".md")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create %s: %v", types.ErrIO, dir, err)
	}

	fm := types.NewFrontMatter()
	fm.Set(types.KeyID, types.String(uuid.Must(uuid.NewV7()).String()))
	fm.Set(types.KeyTitle, types.String(title))
	fm.Set(types.KeyDate, types.String(now.Format("2006-01-02")))
	fm.Set(types.KeyCreated, types.String(now.Format(time.RFC3339)))

	parser := parse.NewParser()
	for _, key := range sortedKeys(defaults) {
		if types.IsProtected(key) {
			continue
		}
		fm.Set(key, parser.Value(defaults[key]))
	}

	text, err := frontmatter.Encode(fm, "# "+title+"\n")
	if err != nil {
		return "", err
	}
	if err := fsys.WriteFile(path, []byte(text)); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", types.ErrIO, path, err)
	}
	return path, nil
}

// slugify derives a file name from a task title: lowercase, spaces to
// hyphens, and everything outside [a-z0-9-] dropped.
func slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '_':
			b.WriteByte('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "task"
	}
	return slug
}

// sortedKeys returns the map keys sorted so default fields land in the
// frontmatter in a deterministic order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
