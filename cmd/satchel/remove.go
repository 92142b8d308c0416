// Remove command deletes a frontmatter property from a task file.
// Implements: prd005-tag-operations (remove); prd009-satchel-cli R3.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <task> <key>",
	Aliases: []string{"rm"},
	Short:   "Remove a property from a task file",
	Long: `Remove deletes one frontmatter property from a task file. Removing a
key that is not present succeeds without touching the file. Protected
fields (date, created) cannot be removed.

Example:
  satchel remove groceries draft`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := resolveScope()
		if err != nil {
			fail("remove", err)
		}
		engine, _, err := newEngine()
		if err != nil {
			fail("remove", err)
		}

		task, err := engine.Remove(args[0], scope, args[1])
		if err != nil {
			fail("remove", err)
		}

		if flagJSON {
			printJSON(task.Fields.Map())
		} else {
			fmt.Printf("Updated %s\n", task.Path)
		}
		return nil
	},
}
