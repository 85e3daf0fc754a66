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
	"html"
	"io"
	"strconv"

	"github.com/narke/Einherjar/block"
	"github.com/narke/Einherjar/internal/iox"
)

var transforms = map[string]string{
	"textcapitalized": "capitalize",
	"textallcaps":     "uppercase",
}

func writeCSS(w *iox.ErrWriter, s Style) {
	w.WriteString("<style type=\"text/css\">\n")
	w.WriteString("  body { margin-right:10%; }\n")
	w.WriteString("  div.code { width:100%; padding:0.5em; background-color:black; font-size:xx-large; font-weight:bold; text-transform:lowercase; }\n")
	for _, c := range Classes {
		color, ok := s.HTML[c]
		if !ok {
			continue
		}
		w.WriteString("  code." + c + " { color:" + color + ";")
		if t, ok := transforms[c]; ok {
			w.WriteString(" text-transform:" + t + ";")
		}
		w.WriteString(" }\n")
	}
	w.WriteString("</style>\n")
}

// HTML writes srcs as an HTML page.
func HTML(w io.Writer, srcs []block.Source, s Style) error {
	ew := iox.NewErrWriter(w)
	ew.WriteString("<html>\n<head>\n")
	if s.Stylesheet != "" {
		ew.WriteString("<link rel=stylesheet type=\"text/css\" href=\"" + html.EscapeString(s.Stylesheet) + "\">\n")
	}
	writeCSS(ew, s)
	ew.WriteString("</head>\n<body>\n")
	for _, src := range srcs {
		ew.WriteString("{block " + strconv.Itoa(src.Number) + "}\n<div class=code>\n")
		for i, c := range src.Calls {
			if i > 0 {
				ew.WriteString("</code>")
				if c.Func == block.Define {
					ew.WriteString("<br>")
				}
			}
			ew.WriteString("<code class=" + Class(c) + ">")
			if c.Func != block.Define {
				ew.WriteString(" ")
			}
			ew.WriteString(html.EscapeString(c.Param))
		}
		if len(src.Calls) > 0 {
			ew.WriteString("</code>\n")
		}
		ew.WriteString("</div>\n<hr>\n")
		if ew.Err != nil {
			return ew.Err
		}
	}
	ew.WriteString("</body>\n</html>\n")
	return ew.Err
}
