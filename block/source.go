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

// Call is a single function call in the textual block notation, i.e.
// name(param). Param is the call's text, or its number formatted in decimal or
// hexadecimal according to Hex.
type Call struct {
	Func  Function `cbor:"1,keyasint"`
	Hex   bool     `cbor:"2,keyasint,omitempty"`
	Param string   `cbor:"3,keyasint"`
}

// Name returns the function name of the call as written in source text.
func (c Call) Name() string {
	if c.Hex {
		return HexPrefix + c.Func.String()
	}
	return c.Func.String()
}

func (c Call) String() string {
	return c.Name() + "(" + c.Param + ")"
}

// Source is the textual form of a block: a block header followed by calls.
type Source struct {
	Number int    `cbor:"1,keyasint"`
	Calls  []Call `cbor:"2,keyasint,omitempty"`
}
