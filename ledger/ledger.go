// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - typed access to the ledger pools
//
// record lookup and store only; invariant maintenance across records
// belongs to the marketplace package
//
// every accessor takes a storage.Transaction as its first parameter;
// a nil transaction reads the committed state directly
package ledger

import (
	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/ledgerrecord"
	"github.com/bitmark-inc/leasifyd/storage"
)

// Ledger - interface for ledger pool access
type Ledger interface {
	Asset(trx storage.Transaction, assetId string) (*ledgerrecord.Asset, error)
	HasAsset(trx storage.Transaction, assetId string) bool
	StoreAsset(trx storage.Transaction, asset *ledgerrecord.Asset)
	AllAssets() ([]*ledgerrecord.Asset, error)

	Lessor(trx storage.Transaction, owner *account.Account) (*ledgerrecord.Lessor, error)
	LessorOrCreate(trx storage.Transaction, owner *account.Account) (*ledgerrecord.Lessor, error)
	StoreLessor(trx storage.Transaction, lessor *ledgerrecord.Lessor)

	Lessee(trx storage.Transaction, renter *account.Account) (*ledgerrecord.Lessee, error)
	LesseeOrCreate(trx storage.Transaction, renter *account.Account) (*ledgerrecord.Lessee, error)
	StoreLessee(trx storage.Transaction, lessee *ledgerrecord.Lessee)
}

type ledgerData struct {
	poolAssets  *storage.PoolHandle
	poolLessors *storage.PoolHandle
	poolLessees *storage.PoolHandle
}

var data ledgerData

// Initialise - attach the ledger to its storage pools
func Initialise(assets *storage.PoolHandle, lessors *storage.PoolHandle, lessees *storage.PoolHandle) {
	data = ledgerData{
		poolAssets:  assets,
		poolLessors: lessors,
		poolLessees: lessees,
	}
}

// Get - return the Ledger interface
func Get() Ledger {
	return &data
}

// read through the transaction when one is in flight
func fetch(trx storage.Transaction, pool *storage.PoolHandle, key []byte) []byte {
	if nil == trx {
		return pool.Get(key)
	}
	return trx.Get(pool, key)
}
