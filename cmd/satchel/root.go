// Root command for the satchel CLI.
// Implements: prd009-satchel-cli (R1, R8); prd008-configuration-directories.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/gitrepo"
	"github.com/mesh-intelligence/satchel/internal/paths"
	"github.com/mesh-intelligence/satchel/pkg/satchel"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Exit codes per prd009-satchel-cli R8.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagTaskDir   string
	flagJSON      bool
	flagGlobal    bool
	flagRepo      string
	flagNoIndex   bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configTaskDir  string
	configDefaults map[string]string
)

var rootCmd = &cobra.Command{
	Use:     "satchel",
	Short:   "Satchel manages markdown task files with frontmatter metadata",
	Version: satchel.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configTaskDir = cfg.GetString(cfgKeyTaskDir)
		configDefaults = cfg.GetStringMapString(cfgKeyDefaults)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagTaskDir, "task-dir", "", "task directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagGlobal, "global", false, "ignore any enclosing git repository and use the root task directory")
	rootCmd.PersistentFlags().StringVar(&flagRepo, "repo", "", "repository scope as host/owner/repo (default: detected from the working directory)")
	rootCmd.PersistentFlags().BoolVar(&flagNoIndex, "no-index", false, "bypass the list index cache")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(listCmd)
}

// resolveTaskDir returns the task directory following prd008 precedence:
// --task-dir flag > config.yaml task_dir > SATCHEL_TASK_DIR env > default.
func resolveTaskDir() (string, error) {
	return paths.ResolveTaskDir(flagTaskDir, configTaskDir)
}

// resolveConfigDir returns the configuration directory following prd008
// precedence: --config-dir flag > SATCHEL_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveScope returns the repository scope for the invocation: nil in
// global mode, the parsed --repo value when given, else a best-effort git
// detection from the working directory. Detection failures mean "no scope",
// not an error.
func resolveScope() (*types.RepoInfo, error) {
	if flagGlobal {
		return nil, nil
	}
	if flagRepo != "" {
		parts := strings.Split(flagRepo, "/")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid --repo %q (expected host/owner/repo)", flagRepo)
		}
		return &types.RepoInfo{Host: parts[0], Owner: parts[1], Repo: parts[2]}, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	info, err := gitrepo.Detect(cwd)
	if err != nil {
		return nil, nil
	}
	return info, nil
}
