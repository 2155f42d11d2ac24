// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/leasifyd/fault"
)

func TestPutGetHas(t *testing.T) {
	pool := Pool.TestData

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")

	trx.Put(pool, []byte("key-one"), []byte("data-one"))

	// visible inside the transaction before commit
	assert.Equal(t, []byte("data-one"), trx.Get(pool, []byte("key-one")), "wrong uncommitted data")
	assert.True(t, trx.Has(pool, []byte("key-one")), "missing uncommitted key")

	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	// visible through the plain handle after commit
	assert.Equal(t, []byte("data-one"), pool.Get([]byte("key-one")), "wrong committed data")
	assert.True(t, pool.Has([]byte("key-one")), "missing committed key")
	assert.Nil(t, pool.Get([]byte("no-such-key")), "unexpected data")
}

func TestAbortDiscardsWrites(t *testing.T) {
	pool := Pool.TestData

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")

	trx.Put(pool, []byte("key-two"), []byte("data-two"))
	trx.Abort()

	assert.Nil(t, pool.Get([]byte("key-two")), "aborted write was persisted")
	assert.False(t, pool.Has([]byte("key-two")), "aborted write was persisted")
}

func TestDeleteReadBack(t *testing.T) {
	pool := Pool.TestData

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")
	trx.Put(pool, []byte("key-three"), []byte("data-three"))
	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	trx, err = NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")
	trx.Delete(pool, []byte("key-three"))

	// deleted key must read as absent inside the same transaction
	assert.Nil(t, trx.Get(pool, []byte("key-three")), "deleted key still readable")
	assert.False(t, trx.Has(pool, []byte("key-three")), "deleted key still present")

	err = trx.Commit()
	assert.Nil(t, err, "commit failed")
	assert.Nil(t, pool.Get([]byte("key-three")), "deleted key survived commit")
}

func TestSecondBeginFails(t *testing.T) {
	trx, err := NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")

	_, err = NewDBTransaction()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "second begin must fail")

	trx.Abort()
}

func TestCursorPaging(t *testing.T) {
	pool := Pool.TestData

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")
	trx.Put(pool, []byte("page-1"), []byte("one"))
	trx.Put(pool, []byte("page-2"), []byte("two"))
	trx.Put(pool, []byte("page-3"), []byte("three"))
	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	cursor := pool.NewFetchCursor().Seek([]byte("page-"))

	elements, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch failed")
	assert.Equal(t, 2, len(elements), "wrong element count")
	assert.Equal(t, []byte("page-1"), elements[0].Key, "wrong first key")
	assert.Equal(t, []byte("page-2"), elements[1].Key, "wrong second key")

	// the cursor advances, so the next fetch continues
	elements, err = cursor.Fetch(2)
	assert.Nil(t, err, "fetch failed")
	assert.Equal(t, 1, len(elements), "wrong element count")
	assert.Equal(t, []byte("page-3"), elements[0].Key, "wrong third key")
	assert.Equal(t, []byte("three"), elements[0].Value, "wrong third value")
}
