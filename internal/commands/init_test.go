package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finscope-dev/finscope/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir))

	paths := []string{
		"import",
		filepath.Join("import", "processed"),
		config.FileName,
		"merchant-mappings.json",
	}
	for _, p := range paths {
		_, err := os.Stat(filepath.Join(dir, p))
		assert.NoError(t, err, p)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.ModePrompt, cfg.Categorizer.Mode)

	data, err := os.ReadFile(filepath.Join(dir, "merchant-mappings.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestRunInit_RefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir))
	assert.Error(t, runInit(dir))
}
