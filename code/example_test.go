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

package code_test

import (
	"fmt"

	"github.com/narke/Einherjar/code"
)

func ExamplePack() {
	w, err := code.Pack("swap")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("0x%08x %s\n", w, code.Unpack(w))

	// trailing spaces are lost
	_, err = code.Pack("swap ")
	fmt.Println(err)

	// Output:
	// 0x85d71000 swap
	// pack "swap ": packed as 0x85d71000, unpacks as "swap": round trip mismatch
}
