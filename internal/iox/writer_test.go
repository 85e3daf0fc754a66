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

package iox_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/narke/Einherjar/internal/iox"
	"github.com/pkg/errors"
)

type failWriter struct {
	n int
}

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, io.ErrShortWrite
	}
	f.n--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	w := iox.NewErrWriter(&b)
	io.WriteString(w, "foo")
	w.Write([]byte("bar"))
	w.Printf(" %d-%s", 42, "baz")
	if w.Err != nil || b.String() != "foobar 42-baz" || w.N != int64(b.Len()) {
		t.Fatalf("got %q, %d bytes, %v", b.String(), w.N, w.Err)
	}

	fw := &failWriter{n: 1}
	w = iox.NewErrWriter(fw)
	if _, err := w.WriteString("ok"); err != nil {
		t.Fatal(err)
	}
	if _, err := w.WriteString("fail"); err == nil {
		t.Fatal("expected error")
	}
	fw.n = 10
	if n, err := w.Write([]byte("again")); n != 0 || err == nil {
		t.Fatalf("error must stick, got %d, %v", n, err)
	}
	w.Printf("%s", "more")
	if fw.n != 10 || w.N != 2 {
		t.Fatalf("nothing must be written after an error, %d bytes written", w.N)
	}
	if !errors.Is(w.Err, io.ErrShortWrite) {
		t.Fatalf("got error %v, expected %v", w.Err, io.ErrShortWrite)
	}
}
