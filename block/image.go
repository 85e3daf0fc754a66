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
	"bufio"
	"encoding/binary"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// ErrBadLength is returned when decoding binary data whose length is not a
// multiple of Size.
var ErrBadLength = errors.New("length is not a multiple of the block size")

// Decode decodes binary block data. The length of data must be a multiple of
// Size.
func Decode(data []byte) (Image, error) {
	if len(data)%Size != 0 {
		return nil, errors.Wrapf(ErrBadLength, "%d bytes", len(data))
	}
	img := make(Image, len(data)/Size)
	for n := range img {
		b := data[n*Size:]
		for i := range img[n] {
			img[n][i] = Word(binary.LittleEndian.Uint32(b[i*4:]))
		}
	}
	return img, nil
}

// Bytes returns the binary form of the image.
func (img Image) Bytes() []byte {
	data := make([]byte, len(img)*Size)
	for n := range img {
		b := data[n*Size:]
		for i, w := range img[n] {
			binary.LittleEndian.PutUint32(b[i*4:], uint32(w))
		}
	}
	return data
}

// Read reads an image from r until EOF.
func Read(r io.Reader) (Image, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return Decode(data)
}

// Write writes the binary form of img to w.
func Write(w io.Writer, img Image) error {
	var b [4]byte
	for n := range img {
		for _, v := range img[n] {
			binary.LittleEndian.PutUint32(b[:], uint32(v))
			if _, err := w.Write(b[:]); err != nil {
				return errors.Wrapf(err, "write failed at block %d", n)
			}
		}
	}
	return nil
}

// Load loads an image from file fileName. The file size is checked before
// anything is read.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "fstat failed")
	}
	if sz := st.Size(); sz%Size != 0 {
		return nil, errors.Wrapf(ErrBadLength, "%s: %d bytes", fileName, sz)
	}
	img, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	return img, nil
}

// Save saves an image to file fileName. The file is removed if anything goes
// wrong.
func Save(fileName string, img Image) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "flush failed")
		}
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	return errors.Wrap(Write(w, img), "save failed")
}
