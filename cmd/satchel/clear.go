// Clear command strips a task file's frontmatter down to protected fields.
// Implements: prd005-tag-operations (clear); prd009-satchel-cli R3.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear <task>",
	Short: "Clear all non-protected properties from a task file",
	Long: `Clear removes every frontmatter property except the protected fields
(date, created), which keep their original order.

Example:
  satchel clear groceries`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := resolveScope()
		if err != nil {
			fail("clear", err)
		}
		engine, _, err := newEngine()
		if err != nil {
			fail("clear", err)
		}

		task, err := engine.Clear(args[0], scope)
		if err != nil {
			fail("clear", err)
		}

		if flagJSON {
			printJSON(task.Fields.Map())
		} else {
			fmt.Printf("Cleared %s\n", task.Path)
		}
		return nil
	},
}
