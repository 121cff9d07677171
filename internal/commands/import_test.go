package commands

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finscope-dev/finscope/internal/config"
	"github.com/finscope-dev/finscope/internal/strategy"
)

// setupDataDir initializes a data dir configured for headerless HDFC
// exports in auto-learn mode and drops the fixture statement into import/.
func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, runInit(dir))

	zero := 0
	cfg := config.Default()
	cfg.Banks = []config.BankConfig{{ID: "hdfc", SkipRows: &zero}, {ID: "sbi", SkipRows: &zero}}
	cfg.Categorizer.Mode = config.ModeAuto
	cfg.Categorizer.LearnFallbacks = true
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	fixture, err := os.ReadFile("../../testdata/hdfc_statement.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "hdfc_jan.csv"), fixture, 0o644))
	return dir
}

func TestRunImport_AutoMode(t *testing.T) {
	dir := setupDataDir(t)

	var out strings.Builder
	err := runImport(context.Background(), dir, "", strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "hdfc_jan.csv (hdfc): 5 rows parsed, 0 skipped")
	assert.Contains(t, out.String(), "0 transactions unresolved")

	// Summary written.
	data, err := os.ReadFile(filepath.Join(dir, "summary.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "period,category,total,count")
	assert.Contains(t, string(data), "2025-01,Misl")

	// Learned mappings persisted: both swiggy rows share one signature.
	raw, err := os.ReadFile(filepath.Join(dir, "merchant-mappings.json"))
	require.NoError(t, err)
	learned := map[string]string{}
	require.NoError(t, json.Unmarshal(raw, &learned))
	assert.Len(t, learned, 4)
	assert.Equal(t, "Misl", learned["swiggy|swiggy@icici"])

	// Statement moved to processed.
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "hdfc_jan.csv"))
	assert.NoError(t, err)
}

func TestRunImport_SecondRunTakesFastPath(t *testing.T) {
	dir := setupDataDir(t)

	var out strings.Builder
	require.NoError(t, runImport(context.Background(), dir, "", strings.NewReader(""), &out))

	// Re-import the same statement: every signature is now mapped, so no
	// new mappings are learned.
	fixture, err := os.ReadFile("../../testdata/hdfc_statement.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "hdfc_feb.csv"), fixture, 0o644))

	out.Reset()
	require.NoError(t, runImport(context.Background(), dir, "", strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "learned 0 new merchant mappings")
}

func TestRunImport_PromptCancelled(t *testing.T) {
	dir := setupDataDir(t)

	var out strings.Builder
	// EOF on stdin cancels the first prompt.
	err := runImport(context.Background(), dir, config.ModePrompt, strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "run cancelled")
	// No summary, no learned mappings, statement left in import/.
	_, err = os.Stat(filepath.Join(dir, "summary.csv"))
	assert.True(t, os.IsNotExist(err))

	raw, err := os.ReadFile(filepath.Join(dir, "merchant-mappings.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(raw))

	_, err = os.Stat(filepath.Join(dir, "import", "hdfc_jan.csv"))
	assert.NoError(t, err)
}

func TestRunImport_UnmatchedFileIsReported(t *testing.T) {
	dir := setupDataDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "mystery.csv"), []byte("a,b\n1,2\n"), 0o644))

	var out strings.Builder
	require.NoError(t, runImport(context.Background(), dir, "", strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "mystery.csv: skipped")

	// The unmatched file stays put for the user to deal with.
	_, err := os.Stat(filepath.Join(dir, "import", "mystery.csv"))
	assert.NoError(t, err)
}

func TestRunImport_EmptyImportDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir))

	var out strings.Builder
	require.NoError(t, runImport(context.Background(), dir, "", strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "nothing to import")
}

func TestBanksCommand(t *testing.T) {
	cmd := NewRootCommand()
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"banks"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "hdfc\nsbi\n", out.String())
}

func TestMappingsCommand(t *testing.T) {
	dir := setupDataDir(t)
	var out strings.Builder
	require.NoError(t, runImport(context.Background(), dir, "", strings.NewReader(""), &out))

	cmd := NewRootCommand()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"mappings", dir})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "swiggy|swiggy@icici\tMisl")
	assert.Contains(t, out.String(), "4 mappings")
}

func TestBuildStrategy_FallbackOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Categorizer.FallbackCategory = "Food"
	cfg.Categorizer.LearnFallbacks = true

	strat, err := buildStrategy(cfg, config.ModeAuto, strings.NewReader(""), io.Discard)
	require.NoError(t, err)
	auto, ok := strat.(*strategy.Auto)
	require.True(t, ok)
	assert.Equal(t, "Food", auto.Fallback)

	strat, err = buildStrategy(cfg, config.ModePrompt, strings.NewReader(""), io.Discard)
	require.NoError(t, err)
	prompt, ok := strat.(*strategy.UserPrompt)
	require.True(t, ok)
	// The transport-failure fallback honors the override too.
	assert.Equal(t, "Food", prompt.Fallback.Fallback)

	_, err = buildStrategy(cfg, "oracle", strings.NewReader(""), io.Discard)
	assert.Error(t, err)
}
