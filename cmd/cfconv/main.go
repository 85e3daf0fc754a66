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
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/narke/Einherjar/asm"
	"github.com/narke/Einherjar/code"
	"github.com/narke/Einherjar/config"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	"github.com/tliron/kutil/util"

	_ "github.com/tliron/commonlog/simple"
)

// errUsage is returned on command line errors, once usage has been printed.
var errUsage = errors.New("bad usage")

type colorMode string

func (m *colorMode) String() string { return string(*m) }
func (m *colorMode) Set(s string) error {
	switch s {
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
		*m = colorMode(s)
		return nil
	default:
		return errors.Errorf("invalid color mode %q", s)
	}
}
func (m *colorMode) Get() interface{} { return string(*m) }

type cfconv struct {
	flags  *flag.FlagSet
	stdout io.Writer
	stderr io.Writer
	tty    bool

	configFile string
	debug      bool
	verbosity  int
	color      colorMode
	strict     bool
	dbPath     string

	cfg   *config.Config
	log   commonlog.Logger
	table *code.Table
	opts  []asm.Option
}

func newCfconv(stdout, stderr io.Writer) *cfconv {
	c := &cfconv{stdout: stdout, stderr: stderr, color: config.ColorAuto}
	fs := flag.NewFlagSet("cfconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.configFile, "config", "", "load configuration from `file` instead of searching for "+config.FileName)
	fs.BoolVar(&c.debug, "debug", false, "enable debug diagnostics")
	fs.IntVar(&c.verbosity, "v", 0, "log verbosity, from -4 (silent) to 2 (debug)")
	fs.Var(&c.color, "color", "colorize output: auto, always or never")
	fs.BoolVar(&c.strict, "strict", false, "require {block N} headers to number blocks in order")
	fs.StringVar(&c.dbPath, "db", "", "block store database `path`")
	fs.Usage = c.usage
	c.flags = fs
	return c
}

func (c *cfconv) usage() {
	fmt.Fprint(c.stderr, "usage: cfconv [flags] command [arguments]\n\ncommands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(c.stderr, "  %-6s %s\n", cmd.name, cmd.args)
	}
	fmt.Fprint(c.stderr, "\nflags:\n")
	c.flags.PrintDefaults()
}

func (c *cfconv) badUsage(format string, args ...interface{}) error {
	fmt.Fprintf(c.stderr, "cfconv: "+format+"\n", args...)
	c.flags.Usage()
	return errUsage
}

// setup loads the configuration and applies command line overrides.
func (c *cfconv) setup() (err error) {
	if c.configFile != "" {
		c.cfg, err = config.Load(c.configFile)
	} else {
		c.cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		return err
	}
	c.flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			c.cfg.Log.Verbosity = c.verbosity
		case "color":
			c.cfg.Render.Color = string(c.color)
		case "strict":
			c.cfg.Convert.Strict = c.strict
		}
	})

	var logFile *string
	if f := c.cfg.Log.File; f != "" {
		p := c.cfg.Path(f)
		logFile = &p
	}
	commonlog.Configure(c.cfg.Log.Verbosity, logFile)
	c.log = commonlog.GetLogger("cfconv")
	if c.cfg.Dir != "" {
		c.log.Debugf("using configuration in %s", c.cfg.Dir)
	}

	if c.table, err = c.cfg.Table(); err != nil {
		return err
	}
	c.opts = []asm.Option{asm.WithTable(c.table), asm.StrictNumbering(c.cfg.Convert.Strict)}
	return nil
}

func (c *cfconv) run(args []string) (err error) {
	if err = c.flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errUsage
	}
	args = c.flags.Args()
	if len(args) == 0 {
		return c.badUsage("missing command")
	}
	cmd := lookupCommand(args[0])
	if cmd == nil {
		return c.badUsage("unknown command %q", args[0])
	}
	if args = args[1:]; len(args) < cmd.min || len(args) > cmd.max {
		return c.badUsage("%s: wrong number of arguments", cmd.name)
	}
	if err = c.setup(); err != nil {
		return err
	}

	c.tty = isTerminal(c.stdout)
	stdout := bufio.NewWriter(c.stdout)
	c.stdout = stdout
	defer func() {
		if ferr := stdout.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "flush failed")
		}
	}()
	return cmd.run(c, args)
}

// atExit prints err and exits. util.Exit flushes the log before exiting.
func atExit(c *cfconv, err error) {
	status := 0
	switch {
	case err == nil:
	case err == errUsage:
		status = 2
	case c.debug:
		fmt.Fprintf(c.stderr, "%+v\n", err)
		status = 1
	default:
		fmt.Fprintf(c.stderr, "cfconv: %v\n", err)
		status = 1
	}
	util.Exit(status)
}

func main() {
	c := newCfconv(os.Stdout, os.Stderr)
	atExit(c, c.run(os.Args[1:]))
}
