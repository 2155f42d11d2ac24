// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/leasifyd/fault"
)

// Transaction - all-or-nothing batch over the ledger pools
//
// reads through an in-use transaction observe its own uncommitted
// writes; Abort discards everything since Begin
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
}

type transactionData struct {
	sync.Mutex
	inUse      bool
	dataAccess []DataAccess
}

func newTransaction(access []DataAccess) Transaction {
	return &transactionData{
		inUse:      false,
		dataAccess: access,
	}
}

func (t *transactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyInUse
	}

	for _, access := range t.dataAccess {
		access.Begin()
	}
	t.inUse = true
	return nil
}

func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.dataAccess {
		err := access.Commit()
		if nil != err {
			// discard whatever is still pending so a later
			// Begin does not find the transaction wedged
			for _, a := range t.dataAccess {
				a.Abort()
			}
			t.inUse = false
			return err
		}
	}
	t.inUse = false
	return nil
}

func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.dataAccess {
		access.Abort()
	}
	t.inUse = false
}

func (t *transactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

func (t *transactionData) Put(pool *PoolHandle, key []byte, value []byte) {
	pool.put(key, value)
}

func (t *transactionData) Delete(pool *PoolHandle, key []byte) {
	pool.remove(key)
}

func (t *transactionData) Get(pool *PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

func (t *transactionData) Has(pool *PoolHandle, key []byte) bool {
	return pool.Has(key)
}
