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

// Package block defines the colorForth binary block format.
//
// A block is 1024 bytes, stored as 256 little endian 32-bit words. Blocks are
// numbered by their position in a file: block n starts at byte offset n*1024.
// Block files, called images here, are a plain concatenation of blocks.
//
// Each non-zero word in a block starts with a tag in its low 4 bits that
// selects one of 16 functions (see Function). The tag decides how the other
// bits are read:
//
//	tag	function		payload
//	---	--------		-------
//	0	extension		more text for the preceding word
//	1	execute			text
//	2	executelong		number in the next word
//	3	define			text
//	4	compileword		text
//	5	compilelong		number in the next word
//	6	compileshort		27-bit number in bits 5-31
//	7	compilemacro		text
//	8	executeshort		27-bit number in bits 5-31
//	9	text			text
//	10	textcapitalized		text
//	11	textallcaps		text
//	12	variable		text, address in the next word
//	13	compiler_feedback	text
//	14	display_macro		text
//	15	commented_number	27-bit number in bits 5-31
//
// Bit 4 of numeric words (HexBit) selects hexadecimal display. Numeric
// functions with that bit set are named with a "hex_" prefix in the textual
// notation, e.g. hex_compileshort.
//
// Text payloads use the character code of package code.
package block
