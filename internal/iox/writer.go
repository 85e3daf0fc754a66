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

// Package iox holds io helpers shared by the formatters, the renderers and
// the cfconv command.
package iox

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer. The first write error is kept in Err and
// returned by every later call, which then writes nothing. N counts the bytes
// written.
type ErrWriter struct {
	w   io.Writer
	N   int64
	Err error
}

// NewErrWriter returns a new ErrWriter writing to w.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

func (w *ErrWriter) done(n int, err error) (int, error) {
	w.N += int64(n)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	return w.done(w.w.Write(p))
}

// WriteString writes s.
func (w *ErrWriter) WriteString(s string) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	return w.done(io.WriteString(w.w, s))
}

// Printf writes formatted output. Errors are left in w.Err.
func (w *ErrWriter) Printf(format string, args ...interface{}) {
	if w.Err == nil {
		fmt.Fprintf(w, format, args...)
	}
}
