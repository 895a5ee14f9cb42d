package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wlbtid/calculator/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProject_StdoutFormats(t *testing.T) {
	storeDir := t.TempDir()

	out, err := execute(t, "project", "--store-dir", storeDir)
	require.NoError(t, err)
	assert.Contains(t, out, "WHOLE LIFE VS BUY TERM & INVEST THE DIFFERENCE")

	out, err = execute(t, "project", "--store-dir", storeDir, "--format", "csv", "--real")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[1], "40,real,"))

	_, err = execute(t, "project", "--store-dir", storeDir, "--format", "xml")
	assert.Error(t, err)
}

func TestProject_ConfigFileAndOutputDir(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "inputs.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("profile:\n  current_age: 50\n  life_expectancy: 85\n"), 0644))

	outDir := t.TempDir()
	out, err := execute(t, "project", "--config", cfgPath, "--format", "all", "--output", outDir)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Report written to"))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestExampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	out, err := execute(t, "example-config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "calibration_points")
	assert.Contains(t, string(data), "retirement")
}

func TestInputs_SaveShowReset(t *testing.T) {
	storeDir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "inputs.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("profile:\n  current_age: 42\nbtid:\n  term_cost: 750\n"), 0644))

	out, err := execute(t, "inputs", "save", "profile", "--config", cfgPath, "--store-dir", storeDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved wl-btid-profile")

	out, err = execute(t, "inputs", "show", "--store-dir", storeDir)
	require.NoError(t, err)
	var cfg domain.Configuration
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 42, cfg.Profile.CurrentAge)
	// only the profile group was saved
	assert.Equal(t, "500", cfg.BTID.TermCost.String())

	out, err = execute(t, "inputs", "show", "profile", "--store-dir", storeDir)
	require.NoError(t, err)
	var p domain.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, 42, p.CurrentAge)

	out, err = execute(t, "inputs", "reset", "--store-dir", storeDir)
	require.NoError(t, err)
	assert.Contains(t, out, "All inputs reset to defaults")

	out, err = execute(t, "inputs", "show", "profile", "--store-dir", storeDir)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, 30, p.CurrentAge)
}

func TestInputs_UnknownGroup(t *testing.T) {
	storeDir := t.TempDir()
	_, err := execute(t, "inputs", "reset", "mortgage", "--store-dir", storeDir)
	assert.Error(t, err)
	_, err = execute(t, "inputs", "save", "--store-dir", storeDir)
	assert.Error(t, err, "missing --config")
}
