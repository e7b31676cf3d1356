// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvFile is the optional dotenv file read by Load.
var EnvFile = ".env"

// File is the layout of a YAML configuration file.
type File struct {
	Prompt  string   `yaml:"prompt"`
	Color   string   `yaml:"color"`
	Verbose bool     `yaml:"verbose"`
	Debug   []string `yaml:"debug"`
}

// Load builds a Config from, in increasing priority, the YAML file at path
// (or $TWINE_CONFIG when path is empty) and the TWINE_* environment
// variables. Variables from EnvFile are added to the environment first
// when that file exists. A missing file is an error only when named
// explicitly.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", EnvFile, err)
	}
	conf := new(Config)
	if path == "" {
		path = os.Getenv("TWINE_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := conf.apply(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := conf.applyEnv(); err != nil {
		return nil, err
	}
	return conf, nil
}

// apply sets the fields present in the YAML document.
func (c *Config) apply(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if f.Prompt != "" {
		c.SetPrompt(f.Prompt)
	}
	if f.Color != "" {
		if err := c.SetColor(f.Color); err != nil {
			return err
		}
	}
	if f.Verbose {
		c.SetVerbose(true)
	}
	for _, d := range f.Debug {
		if err := c.SetDebugList(d); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) applyEnv() error {
	if s, ok := os.LookupEnv("TWINE_PROMPT"); ok {
		c.SetPrompt(s)
	}
	if s := os.Getenv("TWINE_COLOR"); s != "" {
		if err := c.SetColor(s); err != nil {
			return fmt.Errorf("TWINE_COLOR: %w", err)
		}
	}
	if s := os.Getenv("TWINE_VERBOSE"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("TWINE_VERBOSE: %w", err)
		}
		c.SetVerbose(v)
	}
	if s := os.Getenv("TWINE_DEBUG"); s != "" {
		if err := c.SetDebugList(s); err != nil {
			return fmt.Errorf("TWINE_DEBUG: %w", err)
		}
	}
	return nil
}
