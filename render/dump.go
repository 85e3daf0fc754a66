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

package render

import (
	"io"
	"strconv"

	"github.com/narke/Einherjar/block"
	"github.com/narke/Einherjar/internal/iox"
)

const wordsPerLine = 8

func appendHex(b []byte, v uint64, width int) []byte {
	var tmp [16]byte
	d := strconv.AppendUint(tmp[:0], v, 16)
	for i := len(d); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, d...)
}

func dumpBlock(w io.Writer, n int, blk *block.Block) error {
	end := len(blk)
	for end > 0 && blk[end-1] == 0 {
		end--
	}
	b := make([]byte, 0, 6+9*wordsPerLine)
	b = append(b, "{block "...)
	b = strconv.AppendInt(b, int64(n), 10)
	b = append(b, "}\n"...)
	if _, err := w.Write(b); err != nil {
		return err
	}
	for i := 0; i < end; i += wordsPerLine {
		b = appendHex(b[:0], uint64(i), 2)
		b = append(b, ':')
		for j := i; j < i+wordsPerLine && j < end; j++ {
			b = append(b, ' ')
			b = appendHex(b, uint64(blk[j]), 8)
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes the words of each block in hexadecimal, eight per line. Each
// line starts with the hexadecimal index of its first word. Trailing zero
// words are not shown.
func Dump(w io.Writer, img block.Image) error {
	ew := iox.NewErrWriter(w)
	for n := range img {
		if err := dumpBlock(ew, n, &img[n]); err != nil {
			return err
		}
	}
	return nil
}
