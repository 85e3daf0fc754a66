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
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/narke/Einherjar/block"
	"github.com/pkg/errors"
)

type parser struct {
	s    scanner.Scanner
	enc  *Encoder
	errs ErrAsm
}

func newParser(enc *Encoder) *parser {
	return &parser{enc: enc}
}

func (p *parser) error(pos scanner.Position, err error) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, &Error{pos, err})
	}
}

func (p *parser) errorf(pos scanner.Position, format string, args ...interface{}) {
	p.error(pos, errors.New(fmt.Sprintf(format, args...)))
}

// Parse does the parsing and encoding.
func (p *parser) Parse(name string, r io.Reader) (block.Image, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.errorf(s.Pos(), "%s", msg)
	}
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		switch tok {
		case '{':
			p.header()
		case scanner.Ident:
			p.call(p.s.TokenText())
		default:
			p.errorf(p.s.Position, "unexpected %s", scanner.TokenString(tok))
		}
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	img, err := p.enc.Image()
	if err != nil {
		p.error(p.s.Pos(), err)
		return nil, p.errs
	}
	return img, nil
}

// header parses a block header. The opening brace has already been read.
func (p *parser) header() {
	pos := p.s.Position
	if tok := p.s.Scan(); tok != scanner.Ident || p.s.TokenText() != "block" {
		p.errorf(p.s.Position, "expected \"block\", got %q", p.s.TokenText())
		p.skip(tok)
		return
	}
	if tok := p.s.Scan(); tok != scanner.Int {
		p.errorf(p.s.Position, "expected block number, got %q", p.s.TokenText())
		p.skip(tok)
		return
	}
	n, err := strconv.Atoi(p.s.TokenText())
	if err != nil {
		p.errorf(p.s.Position, "bad block number %s", p.s.TokenText())
		return
	}
	if tok := p.s.Scan(); tok != '}' {
		p.errorf(p.s.Position, "expected '}', got %q", p.s.TokenText())
		return
	}
	if err = p.enc.Block(n); err != nil {
		p.error(pos, err)
	}
}

// skip skips tokens up to the end of a block header.
func (p *parser) skip(tok rune) {
	for tok != '}' && tok != scanner.EOF {
		tok = p.s.Scan()
	}
}

// call parses name(param). The function name has already been read.
func (p *parser) call(name string) {
	pos := p.s.Position
	if tok := p.s.Scan(); tok != '(' {
		p.errorf(p.s.Position, "expected '(' after %s, got %q", name, p.s.TokenText())
		return
	}
	// the parameter is raw text up to the closing parenthesis
	var b strings.Builder
	for {
		ch := p.s.Next()
		if ch == scanner.EOF {
			p.errorf(pos, "unterminated call to %s", name)
			return
		}
		if ch == ')' {
			break
		}
		b.WriteRune(ch)
	}
	f, hex, err := block.Lookup(name)
	if err != nil {
		p.error(pos, err)
		return
	}
	if err = p.enc.Call(block.Call{Func: f, Hex: hex, Param: b.String()}); err != nil {
		p.error(pos, err)
	}
}
