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

// Package store keeps named block images in an SQLite database. Each block is
// stored in its own row, so images can be listed and fetched without decoding
// them.
package store

import (
	"database/sql"
	"sync"

	"github.com/narke/Einherjar/block"
	"github.com/pkg/errors"

	_ "modernc.org/sqlite" // database/sql driver "sqlite"
)

// ErrNotFound is returned when an image does not exist in the store.
var ErrNotFound = errors.New("image not found")

const schema = `CREATE TABLE IF NOT EXISTS blocks (
	image  TEXT    NOT NULL,
	number INTEGER NOT NULL,
	data   BLOB    NOT NULL,
	PRIMARY KEY (image, number)
)`

// Store is a block image store. Writes are serialized.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Info describes a stored image.
type Info struct {
	Name   string
	Blocks int
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	for _, q := range []string{"PRAGMA busy_timeout = 5000", schema} {
		if _, err = db.Exec(q); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "init %s", path)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores img under name, replacing any previous image of that name.
// An image is stored as its blocks, so putting an empty image removes name
// and a later Get fails with ErrNotFound.
func (s *Store) Put(name string, img block.Image) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		if err = tx.Commit(); err != nil {
			err = errors.Wrapf(err, "put %s", name)
		}
	}()

	if _, err = tx.Exec("DELETE FROM blocks WHERE image = ?", name); err != nil {
		return errors.Wrapf(err, "put %s", name)
	}
	stmt, err := tx.Prepare("INSERT INTO blocks (image, number, data) VALUES (?, ?, ?)")
	if err != nil {
		return errors.Wrapf(err, "put %s", name)
	}
	defer stmt.Close()
	for n := range img {
		if _, err = stmt.Exec(name, n, img[n:n+1].Bytes()); err != nil {
			return errors.Wrapf(err, "put %s block %d", name, n)
		}
	}
	return nil
}

// Get returns the image stored under name.
func (s *Store) Get(name string) (block.Image, error) {
	rows, err := s.db.Query("SELECT number, data FROM blocks WHERE image = ? ORDER BY number", name)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", name)
	}
	defer rows.Close()

	var img block.Image
	for rows.Next() {
		var (
			n    int
			data []byte
		)
		if err = rows.Scan(&n, &data); err != nil {
			return nil, errors.Wrapf(err, "get %s", name)
		}
		if n != len(img) {
			return nil, errors.Errorf("get %s: block %d missing", name, len(img))
		}
		b, err := block.Decode(data)
		if err != nil {
			return nil, errors.Wrapf(err, "get %s block %d", name, n)
		}
		img = append(img, b...)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "get %s", name)
	}
	if img == nil {
		return nil, errors.Wrap(ErrNotFound, name)
	}
	return img, nil
}

// List returns the stored images, sorted by name.
func (s *Store) List() ([]Info, error) {
	rows, err := s.db.Query("SELECT image, COUNT(*) FROM blocks GROUP BY image ORDER BY image")
	if err != nil {
		return nil, errors.Wrap(err, "list")
	}
	defer rows.Close()

	var l []Info
	for rows.Next() {
		var i Info
		if err = rows.Scan(&i.Name, &i.Blocks); err != nil {
			return nil, errors.Wrap(err, "list")
		}
		l = append(l, i)
	}
	return l, errors.Wrap(rows.Err(), "list")
}

// Delete removes the image stored under name.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM blocks WHERE image = ?", name)
	if err != nil {
		return errors.Wrapf(err, "delete %s", name)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "delete %s", name)
	}
	if n == 0 {
		return errors.Wrap(ErrNotFound, name)
	}
	return nil
}
