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

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownFunction is returned when looking up a name that is not a
// function name.
var ErrUnknownFunction = errors.New("unknown function")

// Function identifies what a tagged word does.
type Function uint8

// colorForth functions, by tag value.
const (
	Extension Function = iota
	Execute
	ExecuteLong
	Define
	CompileWord
	CompileLong
	CompileShort
	CompileMacro
	ExecuteShort
	Text
	TextCapitalized
	TextAllCaps
	Variable
	CompilerFeedback
	DisplayMacro
	CommentedNumber
)

// HexPrefix is prepended to numeric function names when the hex bit is set.
const HexPrefix = "hex_"

var functions = [...]string{
	"extension",
	"execute",
	"executelong",
	"define",
	"compileword",
	"compilelong",
	"compileshort",
	"compilemacro",
	"executeshort",
	"text",
	"textcapitalized",
	"textallcaps",
	"variable",
	"compiler_feedback",
	"display_macro",
	"commented_number",
}

var functionIndex = make(map[string]Function)

func init() {
	for i, v := range functions {
		functionIndex[v] = Function(i)
	}
}

// Kind tells how the payload of a function is stored.
type Kind int

// Function kinds.
const (
	// KindText functions hold packed text, possibly followed by extension words.
	KindText Kind = iota
	// KindLong functions are followed by a word holding a full 32-bit number.
	KindLong
	// KindShort functions hold a 27-bit number above the tag and hex bit.
	KindShort
	// KindVariable functions hold packed text and are followed by a word
	// holding the variable's value.
	KindVariable
)

// Kind returns the kind of f.
func (f Function) Kind() Kind {
	switch f {
	case ExecuteLong, CompileLong:
		return KindLong
	case CompileShort, ExecuteShort, CommentedNumber:
		return KindShort
	case Variable:
		return KindVariable
	default:
		return KindText
	}
}

// Numeric returns true if f holds a number and accepts the hex bit.
func (f Function) Numeric() bool {
	k := f.Kind()
	return k == KindLong || k == KindShort
}

func (f Function) String() string {
	if int(f) < len(functions) {
		return functions[f]
	}
	return "function(" + strconv.Itoa(int(f)) + ")"
}

// Lookup returns the function with the given name. Numeric functions may be
// prefixed with HexPrefix, in which case hex is true.
func Lookup(name string) (f Function, hex bool, err error) {
	base := name
	if strings.HasPrefix(name, HexPrefix) {
		base, hex = name[len(HexPrefix):], true
	}
	f, ok := functionIndex[base]
	if !ok || hex && !f.Numeric() {
		return 0, false, errors.Wrapf(ErrUnknownFunction, "%q", name)
	}
	return f, hex, nil
}
