// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/distlab/distributions/dist"
	"gopkg.in/yaml.v2"
)

// Config is the configuration file format. Flags given on the command
// line override it.
type Config struct {
	P     float64     `yaml:"p"`
	N     int         `yaml:"n"`
	Seed  int64       `yaml:"seed"`
	Chart ChartConfig `yaml:"chart"`
}

type ChartConfig struct {
	// Renderer is "svg" or "gonum".
	Renderer string `yaml:"renderer"`
	// Format is the gonum image format, such as "png" or "pdf".
	Format string `yaml:"format"`
	// Width and Height are the gonum image size in inches.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func defaultConfig() Config {
	return Config{
		P:    dist.DefaultP,
		N:    dist.DefaultN,
		Seed: 1,
		Chart: ChartConfig{
			Renderer: "svg",
			Format:   "png",
			Width:    6,
			Height:   4,
		},
	}
}

// LoadConfig reads the YAML file at path over config. Keys absent
// from the file keep their current values.
func LoadConfig(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return config.check()
}

func (c *Config) check() error {
	switch c.Chart.Renderer {
	case "svg", "gonum":
	default:
		return fmt.Errorf("unknown renderer %q", c.Chart.Renderer)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart size %vx%v must be positive", c.Chart.Width, c.Chart.Height)
	}
	return nil
}
