// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads CodeMentor configuration from an optional YAML
// file with environment variable overrides.
//
// Resolution order, lowest to highest precedence:
//
//  1. Built-in defaults (Default)
//  2. YAML file (~/.codementor/config.yaml or --config)
//  3. Environment: OPENAI_API_KEY, OPENAI_MODEL, CODEMENTOR_DATA_DIR
//
// The loaded config is validated before use; a config that fails
// validation is rejected with ErrInvalidConfig.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates the configuration failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full CodeMentor configuration.
type Config struct {
	// OpenAIAPIKey authenticates LLM calls. Empty means the review and
	// refactor commands are unavailable; the local style checker still
	// works without it.
	OpenAIAPIKey string `yaml:"openai_api_key"`

	// OpenAIModel is the chat model used for review and refactor.
	OpenAIModel string `yaml:"openai_model" validate:"required"`

	// DataDir holds the review history database and log files.
	DataDir string `yaml:"data_dir" validate:"required"`

	// Server configures the HTTP API.
	Server ServerConfig `yaml:"server"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=1,lte=65535"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	Dir   string `yaml:"dir"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		OpenAIModel: "gpt-4o-mini",
		DataDir:     "~/.codementor",
		Server:      ServerConfig{Port: 8080},
		Log:         LogConfig{Level: "info", Dir: "~/.codementor/logs"},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".codementor", "config.yaml")
}

// Load builds the effective configuration.
//
// Description:
//
//	Starts from Default, merges the YAML file at path if it exists (a
//	missing file is not an error; a malformed one is), then applies
//	environment overrides and validates the result.
//
// Inputs:
//
//	path - Config file path. Empty means DefaultPath.
//
// Outputs:
//
//	*Config - The validated configuration.
//	error - ErrInvalidConfig (wrapped) on validation failure, or a
//	        read/parse error for a present-but-broken file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(expandPath(path))
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.DataDir = expandPath(cfg.DataDir)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAIModel = v
	}
	if v := os.Getenv("CODEMENTOR_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
