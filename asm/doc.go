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

// Package asm converts between the textual colorForth block notation and
// binary blocks.
//
// Source format:
//
// Source text is a sequence of blocks. Each block starts with a header and is
// followed by any number of function calls:
//
//	{block 0}
//	text(hello) execute(dup)
//	define(sq) compileword(dup) compileword(*) compileword(;)
//
// Function names are those of package block. Numeric functions take a decimal
// number, or a hexadecimal number without prefix for their hex_ variants:
//
//	compileshort(42) hex_executelong(ff) commented_number(-7)
//
// The parameter of any other function is the raw text between the parentheses,
// spaces included. Whitespace between calls and headers is not significant.
//
// Encoding:
//
// Each block is encoded to 256 words, zero padded. Encoding fails if a block
// needs more than 256 words.
//
// Text is packed with the character code of package code. The first word holds
// the function tag, and text that does not fit in 28 bits continues in
// extension words (tag 0). When a character does not fit in the bits left in a
// word, its code is shortened by dropping trailing zero bits until it fits:
// the decoder reads zeros past the end of the word, so the character decodes
// correctly. If a set bit would be dropped, the word is closed and the
// character goes to the next word.
//
// Long numbers (executelong, compilelong) take two words: the tag, then the
// 32-bit value. A decimal long number ranges from -2^31 to 2^32-1 and decodes
// as a signed value, so executelong(4294967295) comes back as executelong(-1).
// Short numbers (compileshort, executeshort, commented_number) are stored in
// the upper 27 bits of a single word, from -2^26 to 2^26-1 in decimal.
//
// A variable is a named cell: variable(name) must be directly followed by
// compileword(n), where n is the decimal value of the cell, in the same range
// as a long number. That value is stored untagged in the word following the
// name. Any other call after a variable fails with ErrNoValue. The name must
// fit in a single word of 28 bits, with no extension word, or encoding fails
// with code.ErrTooLong. A variable may end its block without a value, which
// then reads back as the padding word: compileword(0).
//
// Decoding:
//
// Disassemble decodes blocks back to calls and Format writes them in the same
// notation, one line per definition.
//
// Some text does not survive a round trip: trailing spaces of a text word are
// dropped, as are spaces falling at the end of a word when the text continues
// in an extension word.
package asm
