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

package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/narke/Einherjar/code"
	"github.com/narke/Einherjar/store"
	"github.com/pkg/errors"
)

const src = "{block 0}\n" +
	"text(hello) \n" +
	"define(sq) compileword(dup) compileword(*) compilemacro(;)\n" +
	"{block 1}\n" +
	"{block 2}\n" +
	"hex_executelong(ff) variable(x) compileword(42)\n"

func cfconvRun(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	c := newCfconv(&out, &errb)
	err = c.run(append([]string{"-v", "-4", "-color", "never"}, args...))
	return out.String(), errb.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := cfconvRun(t, args...)
	if err != nil {
		t.Fatalf("cfconv %s: %+v", strings.Join(args, " "), err)
	}
	return out
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	if err := ioutil.WriteFile(name, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return name
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := ioutil.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func assembleFile(t *testing.T) (dir, blk string) {
	dir = t.TempDir()
	in := writeFile(t, filepath.Join(dir, "in.txt"), src)
	blk = filepath.Join(dir, "out.blk")
	mustRun(t, "tocf", in, blk)
	return dir, blk
}

func TestConvert(t *testing.T) {
	dir, blk := assembleFile(t)
	if data := readFile(t, blk); len(data) != 3*1024 {
		t.Fatalf("got %d bytes, expected %d", len(data), 3*1024)
	}

	txt := filepath.Join(dir, "out.txt")
	mustRun(t, "totext", blk, txt)
	if diff := cmp.Diff(src, readFile(t, txt)); diff != "" {
		t.Errorf("totext file mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(src, mustRun(t, "totext", blk)); diff != "" {
		t.Errorf("totext stdout mismatch (-want +got):\n%s", diff)
	}
	if out := mustRun(t, "totext", blk, "-"); out != src {
		t.Errorf("totext - output:\n%s", out)
	}

	out := mustRun(t, "-color", "always", "totext", blk)
	if !strings.Contains(out, "\x1b[1;31mdefine(sq)\x1b[0m") {
		t.Errorf("no colors in output:\n%q", out)
	}

	out = mustRun(t, "html", blk)
	if !strings.Contains(out, "<code class=define>sq</code><code class=compile> dup</code>") {
		t.Errorf("unexpected html output:\n%s", out)
	}

	out = mustRun(t, "dump", blk)
	exp := "{block 0}\n" +
		"00: c894a189 86700003 c19b1004 fa000004 f0000007\n" +
		"{block 1}\n" +
		"{block 2}\n" +
		"00: 00000012 000000ff ca00000c 0000002a\n"
	if diff := cmp.Diff(exp, out); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestExportImport(t *testing.T) {
	dir, blk := assembleFile(t)
	cb := filepath.Join(dir, "out.cbor")
	mustRun(t, "export", blk, cb)
	blk2 := filepath.Join(dir, "out2.blk")
	mustRun(t, "import", cb, blk2)
	if readFile(t, blk) != readFile(t, blk2) {
		t.Error("images differ after export and import")
	}
}

func TestPackUnpack(t *testing.T) {
	if out := mustRun(t, "pack", "swap", "hello"); out != "0x85d71000\n0xc894a180\n" {
		t.Errorf("pack: %q", out)
	}
	if out := mustRun(t, "unpack", "85d71000", "0xC894A189"); out != "swap\nhello\n" {
		t.Errorf("unpack: %q", out)
	}
	if _, _, err := cfconvRun(t, "pack", "Hello"); !errors.Is(err, code.ErrInvalidChar) {
		t.Errorf("got error %v, expected %v", err, code.ErrInvalidChar)
	}
	if _, _, err := cfconvRun(t, "unpack", "xyz"); err == nil || err == errUsage {
		t.Errorf("got error %v for a bad word", err)
	}
}

func TestStore(t *testing.T) {
	dir, blk := assembleFile(t)
	db := filepath.Join(dir, "test.db")
	mustRun(t, "-db", db, "store", "put", "boot", blk)
	if out := mustRun(t, "-db", db, "store", "ls"); out != "boot\t3\n" {
		t.Errorf("ls: %q", out)
	}
	blk2 := filepath.Join(dir, "boot.blk")
	mustRun(t, "-db", db, "store", "get", "boot", blk2)
	if readFile(t, blk) != readFile(t, blk2) {
		t.Error("images differ after put and get")
	}
	mustRun(t, "-db", db, "store", "rm", "boot")
	if _, _, err := cfconvRun(t, "-db", db, "store", "get", "boot", blk2); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("got error %v, expected %v", err, store.ErrNotFound)
	}
}

func TestConfig(t *testing.T) {
	dir, blk := assembleFile(t)
	cfg := writeFile(t, filepath.Join(dir, "cfconv.toml"), "[render]\ncolor = \"always\"\n\n[render.ansi]\ndefine = \"35\"\n")
	out, _, err := cfconvRun(t, "-config", cfg, "totext", blk)
	if err != nil {
		t.Fatal(err)
	}
	// the -color flag overrides the configuration file
	if strings.Contains(out, "\x1b[") {
		t.Errorf("unexpected colors in output:\n%q", out)
	}
	var b bytes.Buffer
	c := newCfconv(&b, ioutil.Discard)
	if err = c.run([]string{"-v", "-4", "-config", cfg, "totext", blk}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "\x1b[35mdefine(sq)\x1b[0m") {
		t.Errorf("configured colors not used:\n%q", b.String())
	}

	bad := writeFile(t, filepath.Join(dir, "bad.toml"), "[render]\ncolor = 1\n")
	if _, _, err = cfconvRun(t, "-config", bad, "dump", blk); err == nil || err == errUsage {
		t.Errorf("got error %v for a bad configuration", err)
	}
}

func TestUsage(t *testing.T) {
	data := []struct {
		args []string
		msg  string
	}{
		{nil, "missing command"},
		{[]string{"frobnicate"}, `unknown command "frobnicate"`},
		{[]string{"tocf", "in.txt"}, "tocf: wrong number of arguments"},
		{[]string{"dump", "a", "b"}, "dump: wrong number of arguments"},
		{[]string{"store", "put", "x"}, "store: bad arguments"},
		{[]string{"-color", "sometimes", "dump", "a"}, `invalid color mode "sometimes"`},
		{[]string{"-nosuchflag"}, "flag provided but not defined"},
	}
	dir := t.TempDir()
	for _, d := range data {
		args := d.args
		if len(args) > 0 && args[0] == "store" {
			args = append([]string{"-db", filepath.Join(dir, "x.db")}, args...)
		}
		_, stderr, err := cfconvRun(t, args...)
		if err != errUsage {
			t.Errorf("%v: got error %v, expected %v", d.args, err, errUsage)
		}
		if !strings.Contains(stderr, d.msg) || !strings.Contains(stderr, "usage: cfconv") {
			t.Errorf("%v: unexpected usage message:\n%s", d.args, stderr)
		}
	}
	if _, _, err := cfconvRun(t, "-h"); err != nil {
		t.Errorf("-h: got error %v", err)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := cfconvRun(t, "tocf", filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.blk")); err == nil || err == errUsage {
		t.Errorf("got error %v for a missing file", err)
	}
	in := writeFile(t, filepath.Join(dir, "bad.txt"), "{block 0}\nbogus(1)\n")
	out := filepath.Join(dir, "bad.blk")
	_, _, err := cfconvRun(t, "tocf", in, out)
	if err == nil || !strings.Contains(err.Error(), "bad.txt:2:1") {
		t.Errorf("got error %v, expected a positioned error", err)
	}
	short := writeFile(t, filepath.Join(dir, "short.blk"), "abc")
	if _, _, err = cfconvRun(t, "totext", short); err == nil {
		t.Error("no error for a truncated block file")
	}
}
