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

package block

const (
	// Words is the number of words in a block.
	Words = 256
	// Size is the size of a block in bytes.
	Size = Words * 4

	// TagMask selects the tag bits of a word.
	TagMask = 0xf
	// HexBit flags a numeric word for hexadecimal display.
	HexBit = 0x10
	// ShortShift is the position of the payload of short numbers.
	ShortShift = 5
)

// Word is a 32-bit block cell.
type Word uint32

// Tag returns the function tag of w.
func (w Word) Tag() Function {
	return Function(w & TagMask)
}

// Hex returns true if the hex bit of w is set. This is only meaningful for
// numeric functions.
func (w Word) Hex() bool {
	return w&HexBit != 0
}

// Block is a single 1024 bytes block.
type Block [Words]Word

// IsZero returns true if all words in the block are zero.
func (b *Block) IsZero() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

// Image is a sequence of blocks, as stored in a block file.
type Image []Block
