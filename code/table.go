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

const (
	// Symbols is the number of symbols in an alphabet.
	Symbols = 48
	// PayloadBits is the number of bits of a word available to packed text.
	PayloadBits = 28
	// TagBits is the number of low order bits reserved in every packed word.
	TagBits = 32 - PayloadBits
)

// Alphabet is the standard colorForth character set.
const Alphabet = " rtoeani" + "smcylgfw" + "dvpbhxuq" + "01234567" + "89j-k.z/" + ";:!+@*,?"

// Code is the variable length bit code of a symbol.
type Code struct {
	Len  uint   // 4, 5 or 7
	Bits uint32 // right aligned
}

// codeFor returns the code assigned to the symbol at the given alphabet index.
func codeFor(index int) Code {
	switch {
	case index < 8:
		return Code{4, uint32(index)}
	case index < 16:
		return Code{5, uint32(index + 8)}
	default:
		return Code{7, uint32(index + 80)}
	}
}

// A Table maps symbols to codes and back. A Table is never modified after
// NewTable returns it and can be shared between goroutines.
type Table struct {
	symbols [Symbols]byte
	codes   [Symbols]Code
	index   [256]int8
}

// Std is the Table for the standard Alphabet.
var Std = MustTable(Alphabet)

// NewTable builds a Table for the given alphabet. The alphabet must contain
// exactly Symbols distinct bytes.
func NewTable(alphabet string) (*Table, error) {
	if len(alphabet) != Symbols {
		return nil, errors.Errorf("alphabet has %d symbols, expected %d", len(alphabet), Symbols)
	}
	t := new(Table)
	for i := range t.index {
		t.index[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if t.index[c] >= 0 {
			return nil, errors.Errorf("duplicate symbol %q in alphabet", c)
		}
		t.symbols[i] = c
		t.codes[i] = codeFor(i)
		t.index[c] = int8(i)
	}
	return t, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(alphabet string) *Table {
	t, err := NewTable(alphabet)
	if err != nil {
		panic(err)
	}
	return t
}

// Index returns the alphabet index of c, or -1 if c is not in the alphabet.
func (t *Table) Index(c byte) int {
	return int(t.index[c])
}

// Code returns the code for c. ok is false if c is not in the alphabet.
func (t *Table) Code(c byte) (code Code, ok bool) {
	i := t.index[c]
	if i < 0 {
		return Code{}, false
	}
	return t.codes[i], true
}

// Symbol returns the symbol at index i.
func (t *Table) Symbol(i int) byte {
	return t.symbols[i]
}

// String returns the alphabet.
func (t *Table) String() string {
	return string(t.symbols[:])
}
