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

package code

import (
	"github.com/pkg/errors"
)

// Word codec errors.
var (
	ErrInvalidChar = errors.New("character not in alphabet")
	ErrTooLong     = errors.New("token too long")
	ErrRoundTrip   = errors.New("round trip mismatch")
)

// nibbleClass describes how to complete a code given its first 4 bits: read
// extra more bits and add them to base to get the alphabet index.
type nibbleClass struct {
	extra uint
	base  int
}

var decodeTable [16]nibbleClass

func init() {
	for n := range decodeTable {
		switch {
		case n < 8:
			decodeTable[n] = nibbleClass{0, n}
		case n < 12:
			decodeTable[n] = nibbleClass{1, (n ^ 12) << 1}
		default:
			decodeTable[n] = nibbleClass{3, 8 * (n - 10)}
		}
	}
}

// Pack packs token into a single word. The returned word has its low TagBits
// bits cleared.
//
// Pack checks its result by unpacking it again and returns an error wrapping
// ErrRoundTrip if that does not yield the original token. This happens for
// tokens ending with a space.
func (t *Table) Pack(token string) (uint32, error) {
	var packed uint32
	bits := uint(PayloadBits)
	for i := 0; i < len(token); i++ {
		c, ok := t.Code(token[i])
		if !ok {
			return 0, errors.Wrapf(ErrInvalidChar, "pack %q: %q at offset %d", token, token[i], i)
		}
		if c.Len > bits {
			return 0, errors.Wrapf(ErrTooLong, "pack %q: more than %d bits", token, PayloadBits)
		}
		packed = packed<<c.Len | c.Bits
		bits -= c.Len
	}
	packed <<= bits + TagBits
	if s := t.Unpack(packed); s != token {
		return 0, errors.Wrapf(ErrRoundTrip, "pack %q: packed as 0x%08x, unpacks as %q", token, packed, s)
	}
	return packed, nil
}

// Unpack returns the token packed in w. The low TagBits bits of w are ignored.
func (t *Table) Unpack(w uint32) string {
	return string(t.AppendUnpack(make([]byte, 0, 8), w))
}

// AppendUnpack appends the token packed in w to dst and returns the extended
// slice.
func (t *Table) AppendUnpack(dst []byte, w uint32) []byte {
	w &^= 1<<TagBits - 1
	for w != 0 {
		nc := decodeTable[w>>28]
		w <<= 4
		dst = append(dst, t.symbols[nc.base+int(w>>(32-nc.extra))])
		w <<= nc.extra
	}
	return dst
}

// Pack packs token with the standard table.
func Pack(token string) (uint32, error) {
	return Std.Pack(token)
}

// Unpack unpacks w with the standard table.
func Unpack(w uint32) string {
	return Std.Unpack(w)
}
