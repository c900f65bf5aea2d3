package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termcv/internal/logger"
)

func TestLoad_MissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	in := &Config{
		CV:        "cv.json",
		Theme:     "amber",
		HomePanel: "home",
		LastPanel: "education",
		Logging:   logger.Config{Enabled: true, Level: "debug"},
	}
	require.NoError(t, Save(dir, in))

	out, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("{{nope"), 0o644))
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestFragmentStore_Replace(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Theme: "green"}
	fs := NewFragmentStore(dir, cfg)

	require.NoError(t, fs.Replace("about"))
	require.NoError(t, fs.Replace("skills"))
	assert.Equal(t, "skills", fs.Current())

	// Replace semantics: reloading shows only the last value, and the
	// rest of the config survives.
	out, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "skills", out.LastPanel)
	assert.Equal(t, "green", out.Theme)
}
