package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"development": true,
		"board": { "width": 16, "height": 16, "mine_count": 40 },
		"log": { "path": "game.log" }
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.True(t, cfg.Development)
	assert.Equal(t, BoardConfig{Width: 16, Height: 16, MineCount: 40}, cfg.Board)
	assert.Equal(t, "game.log", cfg.Log.Path)
	// fields the file omits keep their defaults
	assert.Equal(t, Default().Log.MaxSizeMB, cfg.Log.MaxSizeMB)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoadRejectsInvalidBoard(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "zero width",
			data: `{"board": {"width": 0, "height": 10, "mine_count": 10}}`,
		},
		{
			name: "negative height",
			data: `{"board": {"width": 10, "height": -1, "mine_count": 10}}`,
		},
		{
			name: "zero mines",
			data: `{"board": {"width": 10, "height": 10, "mine_count": 0}}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(test.data), 0o644))

			_, err := Load(path)

			assert.Error(t, err)
		})
	}
}

func TestDevelopmentEnvOverride(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	assert.True(t, cfg.Development)

	t.Setenv("DEVELOPMENT", "0")

	cfg, err = Load(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	assert.False(t, cfg.Development)
}
