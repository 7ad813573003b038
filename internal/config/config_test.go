package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
inputs:
  constituents: "exports/cons.csv"
  emails: "exports/cons_email.csv"
  subscriptions: "exports/chapter.csv"

outputs:
  people: "out/people.csv"
  acquisition_facts: "out/acquisition_facts.csv"

pipeline:
  chapter_id: 7

log:
  level: "debug"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	// Test input config
	assert.Equal(t, "exports/cons.csv", cfg.Inputs.Constituents)
	assert.Equal(t, "exports/cons_email.csv", cfg.Inputs.Emails)
	assert.Equal(t, "exports/chapter.csv", cfg.Inputs.Subscriptions)

	// Test output config
	assert.Equal(t, "out/people.csv", cfg.Outputs.People)
	assert.Equal(t, "out/acquisition_facts.csv", cfg.Outputs.AcquisitionFacts)

	// Test pipeline config
	assert.Equal(t, int64(7), cfg.Pipeline.ChapterID)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadDefaults(t *testing.T) {
	// Create a minimal config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
log:
  level: "warn"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	// Verify defaults are applied
	assert.Equal(t, "cons.csv", cfg.Inputs.Constituents)
	assert.Equal(t, "cons_email.csv", cfg.Inputs.Emails)
	assert.Equal(t, "chapter.csv", cfg.Inputs.Subscriptions)
	assert.Equal(t, "people.csv", cfg.Outputs.People)
	assert.Equal(t, "acquisition_facts.csv", cfg.Outputs.AcquisitionFacts)
	assert.Equal(t, int64(1), cfg.Pipeline.ChapterID)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadBadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("inputs: [not, a, mapping"), 0644)
	require.NoError(t, err)

	_, err = Load(configPath)
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	// Create a minimal config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
inputs:
  constituents: "file-cons.csv"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	// Set environment variables
	os.Setenv("CONS_FILE", "env-cons.csv")
	os.Setenv("PEOPLE_FILE", "env-people.csv")
	os.Setenv("CHAPTER_ID", "3")
	defer func() {
		os.Unsetenv("CONS_FILE")
		os.Unsetenv("PEOPLE_FILE")
		os.Unsetenv("CHAPTER_ID")
	}()

	cfg, err := LoadFromEnv(configPath)
	require.NoError(t, err)

	// Environment variables should override file values
	assert.Equal(t, "env-cons.csv", cfg.Inputs.Constituents)
	assert.Equal(t, "env-people.csv", cfg.Outputs.People)
	assert.Equal(t, int64(3), cfg.Pipeline.ChapterID)

	// Untouched values keep their defaults
	assert.Equal(t, "cons_email.csv", cfg.Inputs.Emails)
}

func TestLoadFromEnvBadChapterID(t *testing.T) {
	os.Setenv("CHAPTER_ID", "first")
	defer os.Unsetenv("CHAPTER_ID")

	_, err := LoadFromEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
