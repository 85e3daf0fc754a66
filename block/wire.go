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
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("block: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalSources serializes decoded blocks to canonical CBOR.
func MarshalSources(srcs []Source) ([]byte, error) {
	data, err := cborEncMode.Marshal(srcs)
	return data, errors.Wrap(err, "marshal sources")
}

// UnmarshalSources deserializes blocks serialized with MarshalSources.
func UnmarshalSources(data []byte) ([]Source, error) {
	var srcs []Source
	if err := cbor.Unmarshal(data, &srcs); err != nil {
		return nil, errors.Wrap(err, "unmarshal sources")
	}
	for _, s := range srcs {
		for _, c := range s.Calls {
			if int(c.Func) >= len(functions) || c.Hex && !c.Func.Numeric() {
				return nil, errors.Wrapf(ErrUnknownFunction, "block %d: %v", s.Number, c.Func)
			}
		}
	}
	return srcs, nil
}
