// Init command prepares the configuration and task directories.
// Implements: prd008-configuration-directories; prd009-satchel-cli R2.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration and task directories",
	Long: `Init creates the configuration directory with a default config.yaml
and the task directory. Both locations honor the usual flag, environment,
and platform-default precedence. Running init twice is harmless.

Example:
  satchel init
  satchel init --task-dir ~/notes/tasks`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fail("init", err)
		}
		// PersistentPreRunE already wrote the directory and default
		// config.yaml; surface where they landed.
		taskDir, err := resolveTaskDir()
		if err != nil {
			fail("init", err)
		}
		if err := os.MkdirAll(taskDir, 0o755); err != nil {
			fail("init", err)
		}

		if flagJSON {
			printJSON(map[string]any{
				"config": filepath.Join(configDir, configFileExt),
				"tasks":  taskDir,
			})
			return nil
		}
		fmt.Printf("Config: %s\n", filepath.Join(configDir, configFileExt))
		fmt.Printf("Tasks:  %s\n", taskDir)
		return nil
	},
}
