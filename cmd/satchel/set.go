// Set command writes key=value properties to a task file.
// Implements: prd005-tag-operations (set, batch atomicity); prd009-satchel-cli R3.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <task> <key=value>...",
	Short: "Set frontmatter properties on a task file",
	Long: `Set applies one or more key=value assignments to a task file's
frontmatter. Values are typed automatically: booleans, numbers,
comma-separated lists, and relative dates (today, tomorrow, yesterday,
or offsets like +3d, -2w) are recognized; everything else is a string.

Assignments apply in order and the file is rewritten once after all of
them succeed; a failing assignment leaves the file unchanged.

Example:
  satchel set groceries status=done
  satchel set report due=+1w tags=work,urgent draft=false`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := resolveScope()
		if err != nil {
			fail("set", err)
		}
		engine, _, err := newEngine()
		if err != nil {
			fail("set", err)
		}

		task, err := engine.Set(args[0], scope, args[1:])
		if err != nil {
			fail("set", err)
		}

		if flagJSON {
			printJSON(task.Fields.Map())
		} else {
			fmt.Printf("Updated %s\n", task.Path)
		}
		return nil
	},
}
