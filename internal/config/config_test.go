package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/thirteens/internal/config"
	"github.com/stretchr/testify/require"
)

func setHomes(t *testing.T) (configHome, dataHome string) {
	t.Helper()
	configHome = t.TempDir()
	dataHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	for _, key := range []string{"THIRTEENS_GAME", "THIRTEENS_SEED", "THIRTEENS_COLOR"} {
		// t.Setenv restores the original value after the test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return configHome, dataHome
}

func TestLoadConfig(t *testing.T) {
	t.Run("creates_the_default_file", func(t *testing.T) {
		configHome, _ := setHomes(t)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "thirteens", cfg.DefaultGame)
		require.Equal(t, "auto", cfg.Color)
		require.FileExists(t, filepath.Join(configHome, "thirteens", "config.toml"))
	})

	t.Run("reads_an_existing_file", func(t *testing.T) {
		configHome, _ := setHomes(t)
		dir := filepath.Join(configHome, "thirteens")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
			[]byte("default_game = \"elevens\"\nseed = 12\n"), 0644))

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "elevens", cfg.DefaultGame)
		require.Equal(t, int64(12), cfg.Seed)
		require.Equal(t, "#e03e3e", cfg.RedSuitColor)
	})

	t.Run("environment_overrides_the_file", func(t *testing.T) {
		setHomes(t)
		t.Setenv("THIRTEENS_GAME", "elevens")
		t.Setenv("THIRTEENS_SEED", "99")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "elevens", cfg.DefaultGame)
		require.Equal(t, int64(99), cfg.Seed)
	})

	t.Run("rejects_a_broken_file", func(t *testing.T) {
		configHome, _ := setHomes(t)
		dir := filepath.Join(configHome, "thirteens")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("seed = ="), 0644))

		_, err := config.LoadConfig()
		require.Error(t, err)
	})
}

func TestSetDefaultGame(t *testing.T) {
	setHomes(t)

	require.NoError(t, config.SetDefaultGame("elevens"))
	game, err := config.GetDefaultGame()
	require.NoError(t, err)
	require.Equal(t, "elevens", game)
}

func TestGetDefinitionPath(t *testing.T) {
	_, dataHome := setHomes(t)
	library := filepath.Join(dataHome, "thirteens", "games")
	require.NoError(t, os.MkdirAll(library, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(library, "short.toml"), []byte(""), 0644))

	t.Run("library_name_without_extension", func(t *testing.T) {
		path, err := config.GetDefinitionPath("short")
		require.NoError(t, err)
		require.Equal(t, filepath.Join(library, "short.toml"), path)
	})

	t.Run("relative_path", func(t *testing.T) {
		local := filepath.Join(t.TempDir(), "local.toml")
		require.NoError(t, os.WriteFile(local, []byte(""), 0644))

		path, err := config.GetDefinitionPath(local)
		require.NoError(t, err)
		require.Equal(t, local, path)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := config.GetDefinitionPath("nope")
		require.ErrorContains(t, err, "game not found")
	})
}
