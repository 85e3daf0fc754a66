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
	"io"
	"strconv"

	"github.com/narke/Einherjar/block"
	"github.com/narke/Einherjar/internal/iox"
)

// Format writes srcs in source form to w. Calls are separated by a space and
// each definition starts on a new line.
func Format(w io.Writer, srcs []block.Source) error {
	ew, _ := w.(*iox.ErrWriter)
	if ew == nil {
		ew = iox.NewErrWriter(w)
	}
	for _, s := range srcs {
		io.WriteString(ew, "{block ")
		io.WriteString(ew, strconv.Itoa(s.Number))
		io.WriteString(ew, "}\n")
		for i, c := range s.Calls {
			if i > 0 {
				io.WriteString(ew, ") ")
				if c.Func == block.Define {
					io.WriteString(ew, "\n")
				}
			}
			io.WriteString(ew, c.Name())
			io.WriteString(ew, "(")
			io.WriteString(ew, c.Param)
		}
		if len(s.Calls) > 0 {
			io.WriteString(ew, ")\n")
		}
		if ew.Err != nil {
			return ew.Err
		}
	}
	return ew.Err
}
