// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of example tables:
// the row representation, text parsing options and growth policy.
// Configurations are read from TOML or YAML files, with defaults
// given by `def:` struct field tags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ntj/ComplexRapidMiner-sub004/base/errors"
	"github.com/ntj/ComplexRapidMiner-sub004/row"
	"github.com/ntj/ComplexRapidMiner-sub004/table"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of example tables.
type Config struct {

	// the representation of new rows
	RowKind row.Kinds `def:"double_array" toml:"row_kind" yaml:"row_kind"`

	// the decimal separator of numeric text cells
	DecimalPoint string `def:"." toml:"decimal_point" yaml:"decimal_point"`

	// the text of a missing value in text input
	MissingMarker string `def:"?" toml:"missing_marker" yaml:"missing_marker"`

	// the number of columns by which memory tables grow their rows
	GrowthIncrement int `def:"10" toml:"growth_increment" yaml:"growth_increment"`

	// the initial capacity of sparse array rows
	SparseCapacity int `def:"4" toml:"sparse_capacity" yaml:"sparse_capacity"`

	// the minimum level of log messages: debug, info, warn or error
	LogLevel string `def:"warn" toml:"log_level" yaml:"log_level"`
}

// New returns a new configuration with all default values.
func New() *Config {
	c := &Config{}
	errors.Log(SetFromDefaults(c))
	return c
}

// Open returns the configuration read from the given file on top of the
// defaults. The format is chosen by the file extension: .toml, .yaml or .yml.
func Open(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := New()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	default:
		return nil, fmt.Errorf("config.Open: %s: unsupported file extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config.Open: %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config.Open: %s: %w", path, err)
	}
	return c, nil
}

// Save writes the configuration to the given file, in the format
// chosen by the file extension as in [Open].
func (c *Config) Save(path string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		b, err = toml.Marshal(c)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("config.Save: %s: unsupported file extension %q", path, ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0666)
}

// Validate returns an error for values that cannot be used.
func (c *Config) Validate() error {
	if !c.RowKind.IsValid() {
		return fmt.Errorf("invalid row kind %v", c.RowKind)
	}
	if c.GrowthIncrement < 1 {
		return fmt.Errorf("growth increment must be positive, is %d", c.GrowthIncrement)
	}
	if c.SparseCapacity < 0 {
		return fmt.Errorf("sparse capacity must not be negative, is %d", c.SparseCapacity)
	}
	if c.DecimalPoint == "" {
		return fmt.Errorf("decimal point must not be empty")
	}
	_, err := c.Level()
	return err
}

// Level returns the log level given by [Config.LogLevel].
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// RowFactory returns a row factory for the configured row kind
// and text parsing options.
func (c *Config) RowFactory() *row.Factory {
	return &row.Factory{
		Kind:                  c.RowKind,
		DecimalPoint:          c.DecimalPoint,
		MissingMarker:         c.MissingMarker,
		InitialSparseCapacity: c.SparseCapacity,
	}
}

// TableOptions returns the options for memory tables.
func (c *Config) TableOptions() table.Options {
	return table.Options{Increment: c.GrowthIncrement, Factory: c.RowFactory()}
}
