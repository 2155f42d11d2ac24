// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// DataAccess - batched access to a single database
type DataAccess interface {
	Begin()
	Put([]byte, []byte)
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Commit() error
	Abort()
}

func isNotFoundError(err error) bool {
	return leveldb.ErrNotFound == err
}

type dataAccess struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDataAccess(db *leveldb.DB, cache Cache) DataAccess {
	return &dataAccess{
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *dataAccess) Begin() {
	d.batch.Reset()
	d.cache.Clear()
}

func (d *dataAccess) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *dataAccess) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Get - read back through the uncommitted batch
//
// a key deleted earlier in the same batch reads as not found even
// though the database still holds the previous value
func (d *dataAccess) Get(key []byte) ([]byte, error) {
	if value, found := d.cache.Get(string(key)); found {
		if nil == value {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}
	return d.db.Get(key, nil)
}

func (d *dataAccess) Has(key []byte) (bool, error) {
	if value, found := d.cache.Get(string(key)); found {
		return nil != value, nil
	}
	return d.db.Has(key, nil)
}

func (d *dataAccess) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *dataAccess) Commit() error {
	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	return err
}

func (d *dataAccess) Abort() {
	d.batch.Reset()
	d.cache.Clear()
}
