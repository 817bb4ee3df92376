// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at fresh temp dirs so the
// host's real config cannot leak into the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultLibraryFile(), cfg.LibraryFile)
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), ".arc-shelf", "library.json"), cfg.LibraryFile)
	assert.Equal(t, "library.txt", cfg.ExportFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("ARC_SHELF_LIBRARY_FILE", "/tmp/elsewhere/books.json")
	t.Setenv("ARC_SHELF_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/elsewhere/books.json", cfg.LibraryFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "library.txt", cfg.ExportFile)
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)

	yaml := "library_file: /data/books.json\nexport_file: shelf.txt\nlog_format: json\n"
	require.NoError(t, os.WriteFile("config.yaml", []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/books.json", cfg.LibraryFile)
	assert.Equal(t, "shelf.txt", cfg.ExportFile)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvBeatsConfigFile(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile("config.yaml", []byte("library_file: /data/books.json\n"), 0o644))
	t.Setenv("ARC_SHELF_LIBRARY_FILE", "/env/wins.json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/env/wins.json", cfg.LibraryFile)
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile("config.yaml", []byte("library_file: [unclosed\n"), 0o644))

	_, err := Load()
	require.Error(t, err)
}
