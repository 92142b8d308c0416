// Get command reads one property or the full mapping from a task file.
// Implements: prd005-tag-operations (get); prd009-satchel-cli R3.
package main

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <task> [key]",
	Short: "Read a property from a task file",
	Long: `Get reads one frontmatter property from a task file, or the whole
mapping when no key is given. The task may be a file name, a name or title
fragment, or an absolute path.

Example:
  satchel get groceries status
  satchel get groceries.md
  satchel get "weekly report" due --json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := resolveScope()
		if err != nil {
			fail("get", err)
		}
		engine, _, err := newEngine()
		if err != nil {
			fail("get", err)
		}

		if len(args) == 1 {
			task, err := engine.List(args[0], scope)
			if err != nil {
				fail("get", err)
			}
			printMapping(task.Fields)
			return nil
		}

		v, err := engine.Get(args[0], scope, args[1])
		if err != nil {
			fail("get", err)
		}
		printValue(v)
		return nil
	},
}
