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
	"math"
	"strconv"
	"strings"

	"github.com/narke/Einherjar/block"
	"github.com/narke/Einherjar/code"
	"github.com/pkg/errors"
)

// variable state
const (
	normal        = iota
	expectAddress // last call was a variable
)

// Encoder encodes calls to blocks. An Encoder produces a single image.
type Encoder struct {
	opts   *options
	img    block.Image
	words  []block.Word
	number int
	open   bool
	state  int
	// first overflow, returned again by Image
	overflow error
}

// NewEncoder returns a new Encoder.
func NewEncoder(opts ...Option) *Encoder {
	return &Encoder{
		opts:  newOptions(opts),
		words: make([]block.Word, 0, block.Words),
	}
}

// Block ends the current block and starts a new one. The number is the block
// number declared in the source.
func (e *Encoder) Block(number int) error {
	e.endBlock()
	e.state = normal
	if e.opts.strict && number != len(e.img) {
		return errors.Wrapf(ErrBlockNumber, "block %d, expected %d", number, len(e.img))
	}
	e.number = number
	e.open = true
	return nil
}

// endBlock pads the current block with zeros and appends it to the image. An
// overflowed block keeps its first 256 words.
func (e *Encoder) endBlock() {
	if !e.open {
		return
	}
	var b block.Block
	copy(b[:], e.words)
	e.img = append(e.img, b)
	e.words = e.words[:0]
	e.open = false
}

// Call encodes c in the current block.
func (e *Encoder) Call(c block.Call) error {
	if !e.open {
		return errors.Wrapf(ErrNoBlock, "%s", c.Name())
	}
	if len(e.words) > block.Words {
		// already reported
		return nil
	}
	ws, err := e.encode(c)
	if err != nil {
		return err
	}
	e.words = append(e.words, ws...)
	if len(e.words) > block.Words {
		err = errors.Wrapf(ErrBlockOverflow, "block %d: %d words", e.number, len(e.words))
		if e.overflow == nil {
			e.overflow = err
		}
		return err
	}
	return nil
}

// Image ends the current block and returns the encoded blocks. It fails if
// any block overflowed.
func (e *Encoder) Image() (block.Image, error) {
	e.endBlock()
	if e.overflow != nil {
		return nil, e.overflow
	}
	return e.img, nil
}

func (e *Encoder) encode(c block.Call) ([]block.Word, error) {
	if int(c.Func) > int(block.CommentedNumber) || c.Hex && !c.Func.Numeric() {
		return nil, errors.Wrapf(block.ErrUnknownFunction, "%q", c.Name())
	}
	tag := block.Word(c.Func)
	if c.Hex {
		tag |= block.HexBit
	}
	prev := e.state
	e.state = normal
	if prev == expectAddress && c.Func != block.CompileWord {
		return nil, errors.Wrapf(ErrNoValue, "got %s", c.Name())
	}

	switch {
	case c.Func == block.CompileWord && prev == expectAddress:
		v, err := parseNumber(c, false, 32)
		if err != nil {
			return nil, err
		}
		return []block.Word{block.Word(v)}, nil
	case c.Func.Kind() == block.KindLong:
		v, err := parseNumber(c, c.Hex, 32)
		if err != nil {
			return nil, err
		}
		return []block.Word{tag, block.Word(v)}, nil
	case c.Func.Kind() == block.KindShort:
		v, err := parseNumber(c, c.Hex, 32-block.ShortShift)
		if err != nil {
			return nil, err
		}
		return []block.Word{block.Word(v)<<block.ShortShift | tag}, nil
	}

	ws, err := packText(e.opts.table, tag, c.Param)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s", c.Name())
	}
	if c.Func == block.Variable {
		// the value word follows the name, which must not be split
		if len(ws) > 1 {
			return nil, errors.Wrapf(code.ErrTooLong, "variable name %q", c.Param)
		}
		e.state = expectAddress
	}
	return ws, nil
}

// parseNumber parses the parameter of c as a decimal or unsigned hexadecimal
// number of the given bit size. Full words accept decimal values from -2^31 to
// 2^32-1, narrower fields a signed value.
func parseNumber(c block.Call, hex bool, bitSize int) (uint32, error) {
	s := strings.TrimSpace(c.Param)
	if hex {
		v, err := strconv.ParseUint(s, 16, bitSize)
		if err != nil {
			return 0, errors.Wrapf(ErrBadNumber, "%s(%s)", c.Name(), c.Param)
		}
		return uint32(v), nil
	}
	if bitSize == 32 {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < math.MinInt32 || v > math.MaxUint32 {
			return 0, errors.Wrapf(ErrBadNumber, "%s(%s)", c.Name(), c.Param)
		}
		return uint32(v), nil
	}
	v, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, errors.Wrapf(ErrBadNumber, "%s(%s)", c.Name(), c.Param)
	}
	return uint32(int32(v)), nil
}

// packText packs s into one or more words. The first word is tagged with tag,
// the others are extension words.
func packText(t *code.Table, tag block.Word, s string) ([]block.Word, error) {
	var (
		ws     []block.Word
		packed uint32
		bits   = uint(code.PayloadBits)
	)
	flush := func() {
		w := block.Word(packed << (bits + code.TagBits))
		if len(ws) == 0 {
			w |= tag
		}
		ws = append(ws, w)
		packed, bits = 0, code.PayloadBits
	}

	for i := 0; i < len(s); {
		c, ok := t.Code(s[i])
		if !ok {
			return nil, errors.Wrapf(code.ErrInvalidChar, "%q at offset %d", s[i], i)
		}
		// shrink
		for c.Len > bits && c.Bits&1 == 0 {
			c.Bits >>= 1
			c.Len--
		}
		if c.Len > bits {
			flush()
			continue
		}
		packed = packed<<c.Len | c.Bits
		bits -= c.Len
		i++
		if bits == 0 {
			flush()
		}
	}
	if packed != 0 || len(ws) == 0 {
		flush()
	}
	return ws, nil
}
