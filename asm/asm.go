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

package asm

import (
	"io"
	"strings"
	"text/scanner"

	"github.com/narke/Einherjar/block"
	"github.com/narke/Einherjar/code"
	"github.com/pkg/errors"
)

// Codec errors.
var (
	ErrBlockOverflow = errors.New("block overflow")
	ErrTruncatedPair = errors.New("truncated number at end of block")
	ErrBadNumber     = errors.New("bad number")
	ErrBlockNumber   = errors.New("unexpected block number")
	ErrNoBlock       = errors.New("call outside of a block")
	ErrNoValue       = errors.New("variable not followed by compileword")
)

const maxErrors = 10

// Error is an assembly error at a given position in the source.
type Error struct {
	Pos scanner.Position
	Err error
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 errors.
type ErrAsm []*Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap returns the individual errors.
func (e ErrAsm) Unwrap() []error {
	errs := make([]error, len(e))
	for i := range e {
		errs[i] = e[i]
	}
	return errs
}

type options struct {
	table  *code.Table
	strict bool
}

// Option configures encoding and decoding.
type Option func(*options)

// WithTable sets the character code table. The default is code.Std.
func WithTable(t *code.Table) Option {
	return func(o *options) {
		o.table = t
	}
}

// StrictNumbering makes the encoder reject block headers that do not number
// blocks in sequence from 0. By default block numbers are ignored and blocks
// are stored in order of appearance.
func StrictNumbering(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

func newOptions(opts []Option) *options {
	o := &options{table: code.Std}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Assemble reads source text from r and returns the encoded blocks.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value.
func Assemble(name string, r io.Reader, opts ...Option) (block.Image, error) {
	p := newParser(NewEncoder(opts...))
	img, err := p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Encode encodes already parsed blocks. It stops at the first error.
func Encode(srcs []block.Source, opts ...Option) (block.Image, error) {
	e := NewEncoder(opts...)
	for _, s := range srcs {
		if err := e.Block(s.Number); err != nil {
			return nil, err
		}
		for i, c := range s.Calls {
			if err := e.Call(c); err != nil {
				return nil, errors.WithMessagef(err, "block %d, call %d", s.Number, i)
			}
		}
	}
	return e.Image()
}

// DisassembleAll decodes img and writes it in source form to w.
func DisassembleAll(img block.Image, w io.Writer, opts ...Option) error {
	srcs, err := Disassemble(img, opts...)
	if err != nil {
		return err
	}
	return Format(w, srcs)
}
