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
	"strconv"

	"github.com/narke/Einherjar/block"
	"github.com/narke/Einherjar/code"
	"github.com/pkg/errors"
)

// Disassemble decodes all blocks in img. The returned sources are numbered
// after their position in the image.
func Disassemble(img block.Image, opts ...Option) ([]block.Source, error) {
	o := newOptions(opts)
	srcs := make([]block.Source, len(img))
	for n := range img {
		calls, err := decodeBlock(o.table, &img[n])
		if err != nil {
			return nil, errors.WithMessagef(err, "block %d", n)
		}
		srcs[n] = block.Source{Number: n, Calls: calls}
	}
	return srcs, nil
}

func decodeBlock(t *code.Table, b *block.Block) ([]block.Call, error) {
	if b.IsZero() {
		return nil, nil
	}
	var (
		calls []block.Call
		// the last call accepts extension words
		textOpen bool
	)
	text := func(w block.Word) string {
		return t.Unpack(uint32(w))
	}

	for pos := 0; pos < block.Words; pos++ {
		w := b[pos]
		f := w.Tag()
		switch {
		case f == block.Extension:
			if w == 0 {
				continue
			}
			if textOpen {
				c := &calls[len(calls)-1]
				c.Param = string(t.AppendUnpack([]byte(c.Param), uint32(w)))
				continue
			}
			calls = append(calls, block.Call{Func: block.Extension, Param: text(w)})
			textOpen = true
		case f.Kind() == block.KindLong:
			if pos == block.Words-1 {
				return nil, errors.Wrapf(ErrTruncatedPair, "%s at word %d", f, pos)
			}
			pos++
			calls = append(calls, block.Call{Func: f, Hex: w.Hex(), Param: formatLong(b[pos], w.Hex())})
			textOpen = false
		case f.Kind() == block.KindShort:
			calls = append(calls, block.Call{Func: f, Hex: w.Hex(), Param: formatShort(w)})
			textOpen = false
		case f.Kind() == block.KindVariable:
			calls = append(calls, block.Call{Func: f, Param: text(w)})
			if pos == block.Words-1 {
				break
			}
			pos++
			calls = append(calls, block.Call{Func: block.CompileWord, Param: formatLong(b[pos], false)})
			textOpen = false
		default:
			calls = append(calls, block.Call{Func: f, Param: text(w)})
			textOpen = true
		}
	}
	return calls, nil
}

// formatLong formats a full word number, signed if decimal.
func formatLong(w block.Word, hex bool) string {
	if hex {
		return strconv.FormatUint(uint64(w), 16)
	}
	return strconv.FormatInt(int64(int32(w)), 10)
}

// formatShort formats the number held in the upper bits of w.
func formatShort(w block.Word) string {
	if w.Hex() {
		return strconv.FormatUint(uint64(w>>block.ShortShift), 16)
	}
	return strconv.FormatInt(int64(int32(w)>>block.ShortShift), 10)
}
