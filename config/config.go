// This file is part of Einherjar - https://github.com/narke/Einherjar
//
// Copyright 2016 The Einherjar Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config handles the cfconv.toml configuration file.
//
// A configuration file looks like this:
//
//	[log]
//	verbosity = 1
//	file = "cfconv.log"
//
//	[convert]
//	strict = true
//	alphabet = " rtoeanismcylgfwdvpbhxuq0123456789j-k.z/;:!+@*,?"
//
//	[render]
//	color = "auto"
//	stylesheet = "colorforth.css"
//
//	[render.html]
//	define = "#ff4040"
//
//	[render.ansi]
//	define = "1;91"
//
//	[store]
//	path = "blocks.db"
//
// Every setting is optional. Relative paths are relative to the directory of
// the configuration file.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/narke/Einherjar/code"
	"github.com/narke/Einherjar/render"
	"github.com/pkg/errors"
)

// FileName is the name of configuration files searched by FindAndLoad.
const FileName = "cfconv.toml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is a cfconv configuration.
type Config struct {
	Log     Log     `toml:"log"`
	Convert Convert `toml:"convert"`
	Render  Render  `toml:"render"`
	Store   Store   `toml:"store"`

	// Dir is the directory containing the configuration file. Empty for
	// the default configuration.
	Dir string `toml:"-"`
}

// Log configures logging. Verbosity follows commonlog: 0 logs notices and
// above, 1 adds info, 2 adds debug messages, negative values log less.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Convert configures block conversion.
type Convert struct {
	Strict   bool   `toml:"strict"`
	Alphabet string `toml:"alphabet"`
}

// Render configures output colors.
type Render struct {
	Color      string            `toml:"color"`
	Stylesheet string            `toml:"stylesheet"`
	HTML       map[string]string `toml:"html"`
	ANSI       map[string]string `toml:"ansi"`
}

// Store configures the block store.
type Store struct {
	Path string `toml:"path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Convert: Convert{Alphabet: code.Alphabet},
		Render:  Render{Color: ColorAuto},
		Store:   Store{Path: "blocks.db"},
	}
}

// Load parses the configuration file at path. Settings missing from the file
// keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, errors.Wrapf(err, "parse error in %s", path)
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, len(u))
		for i, k := range u {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if c.Dir, err = filepath.Abs(filepath.Dir(path)); err != nil {
		return nil, errors.Wrapf(err, "cannot resolve path %s", path)
	}
	if err = c.validate(); err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find a configuration file and loads
// it. It returns the default configuration if none is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot resolve path %s", startDir)
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

func (c *Config) validate() error {
	switch c.Render.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("render.color: invalid value %q", c.Render.Color)
	}
	for _, m := range []map[string]string{c.Render.HTML, c.Render.ANSI} {
		for k := range m {
			if !isClass(k) {
				return errors.Errorf("render: unknown class %q", k)
			}
		}
	}
	_, err := c.Table()
	return err
}

func isClass(name string) bool {
	for _, c := range render.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// Table returns the code table for the configured alphabet.
func (c *Config) Table() (*code.Table, error) {
	if c.Convert.Alphabet == "" || c.Convert.Alphabet == code.Alphabet {
		return code.Std, nil
	}
	t, err := code.NewTable(c.Convert.Alphabet)
	return t, errors.WithMessage(err, "convert.alphabet")
}

// Style returns the default render style with the configured colors applied.
func (c *Config) Style() render.Style {
	return render.DefaultStyle().Merge(render.Style{
		HTML:       c.Render.HTML,
		ANSI:       c.Render.ANSI,
		Stylesheet: c.Render.Stylesheet,
	})
}

// Path resolves p relative to the configuration directory.
func (c *Config) Path(p string) string {
	if p == "" || c.Dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}
