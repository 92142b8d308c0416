// List command enumerates task files and their frontmatter mappings.
// Implements: prd005-tag-operations (list); prd006-list-index;
//
//	prd009-satchel-cli R3.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/index"
	"github.com/mesh-intelligence/satchel/internal/paths"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

var listCmd = &cobra.Command{
	Use:     "list [task]",
	Aliases: []string{"ls"},
	Short:   "List task files and their properties",
	Long: `List prints the frontmatter mapping of every task file in the current
scope, or of a single task when given. Files without a frontmatter block
are skipped. Enumeration goes through the SQLite index cache unless
--no-index is set.

Example:
  satchel list
  satchel list groceries
  satchel list --global --json`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := resolveScope()
		if err != nil {
			fail("list", err)
		}
		engine, res, err := newEngine()
		if err != nil {
			fail("list", err)
		}

		if len(args) == 1 {
			task, err := engine.List(args[0], scope)
			if err != nil {
				fail("list", err)
			}
			printTasks([]types.TaskFile{task})
			return nil
		}

		tasks, err := enumerate(engine, res, scope)
		if err != nil {
			fail("list", err)
		}
		printTasks(tasks)
		return nil
	},
}

// enumerate lists every task in the scope, going through the index cache
// when it is enabled and usable. A cache that cannot be opened degrades to
// a plain scan rather than failing the command.
func enumerate(engine taskLister, res scopeFiles, scope *types.RepoInfo) ([]types.TaskFile, error) {
	if flagNoIndex {
		return engine.ListAll(scope)
	}
	taskDir, err := resolveTaskDir()
	if err != nil {
		return nil, err
	}
	idx, err := index.Open(paths.IndexPath(taskDir))
	if err != nil {
		return engine.ListAll(scope)
	}
	defer idx.Close()

	files, err := res.Files(scope)
	if err != nil {
		return nil, err
	}
	cached, err := idx.Tasks(files, os.ReadFile)
	if err != nil {
		return engine.ListAll(scope)
	}
	tasks := make([]types.TaskFile, 0, len(cached))
	for _, c := range cached {
		tasks = append(tasks, types.TaskFile{Path: c.Path, Fields: c.Fields})
	}
	return tasks, nil
}

// taskLister and scopeFiles are the slices of the engine and resolver that
// enumeration needs; tests substitute fakes for them.
type taskLister interface {
	ListAll(scope *types.RepoInfo) ([]types.TaskFile, error)
}

type scopeFiles interface {
	Files(scope *types.RepoInfo) ([]string, error)
}

// printTasks prints the enumerated tasks, honoring --json.
func printTasks(tasks []types.TaskFile) {
	if flagJSON {
		out := make([]map[string]any, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, map[string]any{
				"path":   t.Path,
				"fields": t.Fields.Map(),
			})
		}
		printJSON(out)
		return
	}
	for i, t := range tasks {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(t.Path)
		for _, key := range t.Fields.Keys() {
			v, _ := t.Fields.Get(key)
			fmt.Printf("  %s: %s\n", key, renderValue(v))
		}
	}
}
