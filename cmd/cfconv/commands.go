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
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/narke/Einherjar/asm"
	"github.com/narke/Einherjar/block"
	"github.com/narke/Einherjar/internal/iox"
	"github.com/narke/Einherjar/render"
	"github.com/narke/Einherjar/store"
	"github.com/pkg/errors"
)

type command struct {
	name     string
	args     string
	min, max int
	run      func(c *cfconv, args []string) error
}

var commands []*command

func init() {
	commands = []*command{
		{"tocf", "<in.txt> <out.blk>", 2, 2, (*cfconv).toCF},
		{"totext", "<in.blk> [out.txt|-]", 1, 2, (*cfconv).toText},
		{"html", "<in.blk> [out.html|-]", 1, 2, (*cfconv).html},
		{"dump", "<in.blk>", 1, 1, (*cfconv).dump},
		{"export", "<in.blk> <out.cbor>", 2, 2, (*cfconv).export},
		{"import", "<in.cbor> <out.blk>", 2, 2, (*cfconv).importSources},
		{"pack", "<token>...", 1, 1 << 16, (*cfconv).pack},
		{"unpack", "<hexword>...", 1, 1 << 16, (*cfconv).unpack},
		{"store", "put <name> <in.blk> | get <name> <out.blk> | ls | rm <name>", 1, 3, (*cfconv).storeCmd},
	}
}

func lookupCommand(name string) *command {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd
		}
	}
	return nil
}

// output calls f with a writer for the named file, or for stdout if name is
// empty or "-". The file is removed if f fails.
func (c *cfconv) output(name string, f func(w io.Writer) error) (err error) {
	if name == "" || name == "-" {
		return f(c.stdout)
	}
	file, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(file)
	ew := iox.NewErrWriter(w)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "flush failed")
		}
		if cerr := file.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		if err != nil {
			os.Remove(name)
			return
		}
		c.log.Infof("%s: wrote %d bytes", name, ew.N)
	}()
	if err = f(ew); err == nil {
		err = ew.Err
	}
	return err
}

func (c *cfconv) load(name string) ([]block.Source, error) {
	img, err := block.Load(name)
	if err != nil {
		return nil, err
	}
	c.log.Infof("%s: %d blocks", name, len(img))
	srcs, err := asm.Disassemble(img, c.opts...)
	return srcs, errors.WithMessage(err, name)
}

func (c *cfconv) save(name string, img block.Image) error {
	if err := block.Save(name, img); err != nil {
		return err
	}
	c.log.Infof("%s: wrote %d blocks", name, len(img))
	return nil
}

func (c *cfconv) toCF(args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "open failed")
	}
	defer f.Close()
	img, err := asm.Assemble(args[0], bufio.NewReader(f), c.opts...)
	if err != nil {
		return err
	}
	return c.save(args[1], img)
}

func outName(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return ""
}

func (c *cfconv) toText(args []string) error {
	srcs, err := c.load(args[0])
	if err != nil {
		return err
	}
	out := outName(args)
	if (out == "" || out == "-") && c.colorize() {
		return render.ANSI(c.stdout, srcs, c.cfg.Style())
	}
	return c.output(out, func(w io.Writer) error { return asm.Format(w, srcs) })
}

func (c *cfconv) html(args []string) error {
	srcs, err := c.load(args[0])
	if err != nil {
		return err
	}
	return c.output(outName(args), func(w io.Writer) error {
		return render.HTML(w, srcs, c.cfg.Style())
	})
}

func (c *cfconv) dump(args []string) error {
	img, err := block.Load(args[0])
	if err != nil {
		return err
	}
	return render.Dump(c.stdout, img)
}

func (c *cfconv) export(args []string) error {
	srcs, err := c.load(args[0])
	if err != nil {
		return err
	}
	data, err := block.MarshalSources(srcs)
	if err != nil {
		return err
	}
	return c.output(args[1], func(w io.Writer) error {
		_, err := w.Write(data)
		return errors.Wrap(err, "write failed")
	})
}

func (c *cfconv) importSources(args []string) error {
	data, err := ioutil.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "read failed")
	}
	srcs, err := block.UnmarshalSources(data)
	if err != nil {
		return errors.WithMessage(err, args[0])
	}
	img, err := asm.Encode(srcs, c.opts...)
	if err != nil {
		return errors.WithMessage(err, args[0])
	}
	return c.save(args[1], img)
}

func (c *cfconv) pack(args []string) error {
	ew := iox.NewErrWriter(c.stdout)
	for _, tok := range args {
		w, err := c.table.Pack(tok)
		if err != nil {
			return err
		}
		ew.Printf("0x%x\n", w)
	}
	return ew.Err
}

func (c *cfconv) unpack(args []string) error {
	ew := iox.NewErrWriter(c.stdout)
	for _, s := range args {
		w, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 32)
		if err != nil {
			return errors.Wrapf(err, "bad word %q", s)
		}
		ew.WriteString(c.table.Unpack(uint32(w)) + "\n")
	}
	return ew.Err
}

func (c *cfconv) openStore() (*store.Store, error) {
	path := c.dbPath
	if path == "" {
		path = c.cfg.Path(c.cfg.Store.Path)
	}
	c.log.Debugf("opening block store %s", path)
	return store.Open(path)
}

func (c *cfconv) storeCmd(args []string) (err error) {
	nargs := map[string]int{"put": 3, "get": 3, "ls": 1, "rm": 2}
	if n, ok := nargs[args[0]]; !ok || n != len(args) {
		return c.badUsage("store: bad arguments")
	}
	s, err := c.openStore()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
	}()

	switch args[0] {
	case "put":
		img, err := block.Load(args[2])
		if err != nil {
			return err
		}
		if err = s.Put(args[1], img); err != nil {
			return err
		}
		c.log.Infof("stored %d blocks as %s", len(img), args[1])
	case "get":
		img, err := s.Get(args[1])
		if err != nil {
			return err
		}
		return c.save(args[2], img)
	case "ls":
		l, err := s.List()
		if err != nil {
			return err
		}
		ew := iox.NewErrWriter(c.stdout)
		for _, i := range l {
			ew.Printf("%s\t%d\n", i.Name, i.Blocks)
		}
		return ew.Err
	case "rm":
		return s.Delete(args[1])
	}
	return nil
}
