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

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/narke/Einherjar/code"
	"github.com/narke/Einherjar/config"
	"github.com/pkg/errors"
)

func writeFile(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, `
[log]
verbosity = 2

[convert]
strict = true

[render]
color = "never"
stylesheet = "cf.css"

[render.html]
define = "#ff4040"

[store]
path = "data/blocks.db"
`)
	c, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Log.Verbosity != 2 || !c.Convert.Strict || c.Render.Color != config.ColorNever {
		t.Errorf("bad config: %+v", c)
	}
	if tbl, err := c.Table(); err != nil || tbl != code.Std {
		t.Errorf("Table() = %v, %v, expected the standard table", tbl, err)
	}
	st := c.Style()
	if st.HTML["define"] != "#ff4040" || st.HTML["compile"] != "#00ff00" || st.Stylesheet != "cf.css" {
		t.Errorf("bad style: %+v", st)
	}
	if p := c.Path(c.Store.Path); p != filepath.Join(dir, "data", "blocks.db") {
		t.Errorf("store path %q", p)
	}
	if p := c.Path("/tmp/x.db"); p != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", p)
	}
}

func TestLoad_alphabet(t *testing.T) {
	path := writeFile(t, t.TempDir(), "[convert]\nalphabet = \" RTOEANISMCYLGFWDVPBHXUQ0123456789J-K.Z/;:!+@*,?\"\n")
	c, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := c.Table()
	if err != nil {
		t.Fatal(err)
	}
	if w, err := tbl.Pack("SWAP"); err != nil || w != 0x85d71000 {
		t.Errorf("Pack(SWAP) = %#x, %v", w, err)
	}
}

func TestLoad_errors(t *testing.T) {
	data := []struct {
		name, data, err string
	}{
		{"syntax", "[log\n", "parse error"},
		{"unknown key", "[log]\nlevel = 1\n", "unknown keys log.level"},
		{"color", "[render]\ncolor = \"sometimes\"\n", `invalid value "sometimes"`},
		{"class", "[render.ansi]\nfoo = \"31\"\n", `unknown class "foo"`},
		{"alphabet", "[convert]\nalphabet = \"abc\"\n", "alphabet has 3 symbols"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, t.TempDir(), d.data))
			if err == nil || !strings.Contains(err.Error(), d.err) {
				t.Errorf("got error %v, expected %q", err, d.err)
			}
		})
	}
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml")); !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("got error %v, expected not exist", err)
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0777); err != nil {
		t.Fatal(err)
	}
	c, err := config.FindAndLoad(sub)
	if err != nil {
		t.Fatal(err)
	}
	if c.Dir != "" || c.Render.Color != config.ColorAuto || c.Store.Path != "blocks.db" {
		t.Errorf("expected defaults, got %+v", c)
	}

	writeFile(t, filepath.Join(root, "a"), "[store]\npath = \"x.db\"\n")
	c, err = config.FindAndLoad(sub)
	if err != nil {
		t.Fatal(err)
	}
	if exp := filepath.Join(root, "a", "x.db"); c.Path(c.Store.Path) != exp {
		t.Errorf("store path %q, expected %q", c.Path(c.Store.Path), exp)
	}
	if c.Render.Color != config.ColorAuto {
		t.Errorf("default color lost: %q", c.Render.Color)
	}
}
