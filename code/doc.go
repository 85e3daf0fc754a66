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

// Package code implements the colorForth character code and the single word
// codec.
//
// colorForth stores names and text as packed 32-bit words. Characters are
// taken from a 48 symbol alphabet ordered by frequency and each is assigned a
// prefix-free code whose length depends on its position in the alphabet:
//
//	index	length	pattern
//	-----	------	------------
//	0-7	4	0xxx
//	8-15	5	10xxx
//	16-47	7	11xxxxx
//
// Codes are packed left aligned in a word. The low 4 bits of a word are left
// clear: inside a block they hold a tag (see package block). A word therefore
// holds 28 bits of text, which is up to 7 characters from the first row of the
// alphabet.
//
// Decoding is driven by the top nibble of the word: nibbles 0-7 are complete
// 4-bit codes, nibbles 8-11 need one more bit and nibbles 12-15 need three more
// bits. Decoding stops when the remaining bits are all zero, which is why the
// space character, whose code is 0000, cannot end a packed token.
package code
