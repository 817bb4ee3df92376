// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package config resolves arc-shelf settings from defaults, an optional
// config.yaml and ARC_SHELF_* environment variables, in rising precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config carries everything the commands need to run.
type Config struct {
	// LibraryFile is the JSON file the catalog persists to.
	LibraryFile string `mapstructure:"library_file"`
	// ExportFile is the default target of the export command.
	ExportFile string `mapstructure:"export_file"`
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
}

// Load resolves the configuration. A config.yaml in the working directory
// wins over one in ~/.arc-shelf; environment variables win over both.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("library_file", DefaultLibraryFile())
	v.SetDefault("export_file", "library.txt")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".arc-shelf"))
	}

	v.SetEnvPrefix("ARC_SHELF")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// DefaultLibraryFile is ~/.arc-shelf/library.json, falling back to the
// working directory when the home directory cannot be resolved.
func DefaultLibraryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "library.json"
	}
	return filepath.Join(home, ".arc-shelf", "library.json")
}
