// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// driverConfig holds the driver's tunables: an optional YAML file
// supplies defaults, and command-line flags (set up in main.go)
// override whatever the file provides, mirroring the teacher's
// command-line-flags-are-final precedence, extended with a file layer
// underneath it.
type driverConfig struct {
	Prompt   string `yaml:"prompt"`
	MaxDepth int    `yaml:"maxDepth"`
	Color    bool   `yaml:"color"`
	History  string `yaml:"history"`
}

func defaultConfig() driverConfig {
	return driverConfig{
		Prompt:   "> ",
		MaxDepth: 10000,
		Color:    true,
		History:  "",
	}
}

// loadConfigFile reads path as YAML into a driverConfig seeded with
// defaults. A missing file is not an error: it just leaves the
// defaults in place, since the config file is optional.
func loadConfigFile(path string) (driverConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
