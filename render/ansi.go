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

const (
	csi   = "\x1b["
	reset = csi + "0m"
)

// ANSI writes srcs in source form with ANSI colors. The layout is the same as
// asm.Format.
func ANSI(w io.Writer, srcs []block.Source, s Style) error {
	ew := iox.NewErrWriter(w)
	for _, src := range srcs {
		ew.WriteString("{block " + strconv.Itoa(src.Number) + "}\n")
		for i, c := range src.Calls {
			if i > 0 {
				ew.WriteString(" ")
				if c.Func == block.Define {
					ew.WriteString("\n")
				}
			}
			if sgr, ok := s.ANSI[Class(c)]; ok {
				ew.WriteString(csi + sgr + "m" + c.String() + reset)
			} else {
				ew.WriteString(c.String())
			}
		}
		if len(src.Calls) > 0 {
			ew.WriteString("\n")
		}
		if ew.Err != nil {
			return ew.Err
		}
	}
	return ew.Err
}
