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
	"github.com/narke/Einherjar/block"
)

// Classes lists the style classes, in the order they appear in style sheets.
var Classes = []string{
	"define",
	"compile",
	"compilehex",
	"execute",
	"executehex",
	"compilemacro",
	"variable",
	"text",
	"textcapitalized",
	"textallcaps",
	"display_macro",
	"compiler_feedback",
	"commented_number",
	"extension",
}

// Style holds the colors used for each class. HTML colors are CSS color
// values, ANSI colors are SGR parameters such as "1;31".
type Style struct {
	HTML map[string]string
	ANSI map[string]string
	// Stylesheet, if set, is linked from HTML pages.
	Stylesheet string
}

// DefaultStyle returns the traditional colorForth colors.
func DefaultStyle() Style {
	return Style{
		HTML: map[string]string{
			"define":            "red",
			"compile":           "#00ff00",
			"compilehex":        "green",
			"execute":           "yellow",
			"executehex":        "#c0c000",
			"compilemacro":      "#00ffff",
			"variable":          "#ff00ff",
			"text":              "white",
			"textcapitalized":   "white",
			"textallcaps":       "white",
			"display_macro":     "#0000ff",
			"compiler_feedback": "grey",
			"commented_number":  "white",
			"extension":         "white",
		},
		ANSI: map[string]string{
			"define":            "1;31",
			"compile":           "92",
			"compilehex":        "32",
			"execute":           "93",
			"executehex":        "33",
			"compilemacro":      "96",
			"variable":          "95",
			"text":              "97",
			"textcapitalized":   "97",
			"textallcaps":       "97",
			"display_macro":     "94",
			"compiler_feedback": "90",
			"commented_number":  "37",
			"extension":         "97",
		},
	}
}

// Merge returns s with the colors of o replacing its own.
func (s Style) Merge(o Style) Style {
	r := Style{HTML: make(map[string]string), ANSI: make(map[string]string), Stylesheet: s.Stylesheet}
	for k, v := range s.HTML {
		r.HTML[k] = v
	}
	for k, v := range s.ANSI {
		r.ANSI[k] = v
	}
	for k, v := range o.HTML {
		r.HTML[k] = v
	}
	for k, v := range o.ANSI {
		r.ANSI[k] = v
	}
	if o.Stylesheet != "" {
		r.Stylesheet = o.Stylesheet
	}
	return r
}

// Class returns the style class of a call. Words compiled or executed share
// a class regardless of how they are stored.
func Class(c block.Call) string {
	var base string
	switch c.Func {
	case block.Execute, block.ExecuteLong, block.ExecuteShort:
		base = "execute"
	case block.CompileWord, block.CompileLong, block.CompileShort:
		base = "compile"
	default:
		return c.Func.String()
	}
	if c.Hex {
		return base + "hex"
	}
	return base
}
