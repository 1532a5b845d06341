/*
 * config.go, part of gocesmd.
 *
 * Copyright 2026 The gocesmd authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config loads the converter settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config holds the converter settings.
type Config struct {
	Input          []string `yaml:"input"`  //files or directories
	Output         string   `yaml:"output"` //directory, empty for next to each input
	Formats        []string `yaml:"formats"`
	Workers        int      `yaml:"workers"`
	MatCompress    bool     `yaml:"mat_compress"`
	TabCompression string   `yaml:"tab_compression"`
	Overwrite      bool     `yaml:"overwrite"`
	Debug          bool     `yaml:"debug"`
}

// Defaults returns the settings used when nothing else is given.
func Defaults() *Config {
	return &Config{
		Formats: []string{"csv"},
		Workers: runtime.NumCPU(),
	}
}

// Load reads the named YAML file over the defaults. Keys the file doesn't set keep
// their default values, unknown keys are an error.
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	C := Defaults()
	if err := yaml.UnmarshalStrict(b, C); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	return C, nil
}

// Merge sets on C every non-zero value of o. Booleans can only be turned on.
func (C *Config) Merge(o Config) {
	if len(o.Input) > 0 {
		C.Input = o.Input
	}
	if o.Output != "" {
		C.Output = o.Output
	}
	if len(o.Formats) > 0 {
		C.Formats = o.Formats
	}
	if o.Workers > 0 {
		C.Workers = o.Workers
	}
	if o.TabCompression != "" {
		C.TabCompression = o.TabCompression
	}
	C.MatCompress = C.MatCompress || o.MatCompress
	C.Overwrite = C.Overwrite || o.Overwrite
	C.Debug = C.Debug || o.Debug
}

// Validate checks the settings. Format names are checked against known, when given.
func (C *Config) Validate(known ...string) error {
	if len(C.Input) == 0 {
		return fmt.Errorf("config: no input given")
	}
	if len(C.Formats) == 0 {
		return fmt.Errorf("config: no output format given")
	}
	if C.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", C.Workers)
	}
	switch C.TabCompression {
	case "", "gz", "zst":
	default:
		return fmt.Errorf("config: tab_compression must be gz or zst, got %q", C.TabCompression)
	}
	if len(known) == 0 {
		return nil
	}
	for _, f := range C.Formats {
		ok := false
		for _, k := range known {
			if strings.EqualFold(f, k) {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("config: unknown format %q (known: %s)", f, strings.Join(known, ", "))
		}
	}
	return nil
}

// String returns C as YAML.
func (C *Config) String() string {
	b, err := yaml.Marshal(C)
	if err != nil {
		return err.Error()
	}
	return string(b)
}
