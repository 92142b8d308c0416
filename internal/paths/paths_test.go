package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/satchel", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "satchel"), got)
	})
}

func TestDefaultTaskDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_DATA_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
		got, err := DefaultTaskDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-data/satchel/tasks", got)
	})

	t.Run("falls back to ~/.local/share when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultTaskDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "satchel", "tasks"), got)
	})
}

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("/tmp/flag-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-config", got)
	})

	t.Run("env beats default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-config", got)
	})
}

func TestResolveTaskDirPrecedence(t *testing.T) {
	t.Run("flag wins over config and env", func(t *testing.T) {
		t.Setenv(EnvTaskDir, "/tmp/env-tasks")
		got, err := ResolveTaskDir("/tmp/flag-tasks", "/tmp/config-tasks")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-tasks", got)
	})

	t.Run("config beats env", func(t *testing.T) {
		t.Setenv(EnvTaskDir, "/tmp/env-tasks")
		got, err := ResolveTaskDir("", "/tmp/config-tasks")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/config-tasks", got)
	})

	t.Run("env beats default", func(t *testing.T) {
		t.Setenv(EnvTaskDir, "/tmp/env-tasks")
		got, err := ResolveTaskDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-tasks", got)
	})
}

func TestIndexPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/tmp/tasks", IndexFileName), IndexPath("/tmp/tasks"))
}
