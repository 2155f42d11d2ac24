// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/storage"
)

// key for the custody balance
//
// account names never encode to a single zero byte, so this cannot
// collide with a party balance
var custodyKey = []byte{0x00}

// globals for background process
type settlementData struct {
	sync.RWMutex

	log  *logger.L
	pool *storage.PoolHandle

	// set once during initialise
	initialised bool
}

// global data
var globalData settlementData

// Initialise - attach the provider to the settlements pool
func Initialise(pool *storage.PoolHandle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("payment")
	globalData.log.Info("starting…")

	globalData.pool = pool
	globalData.initialised = true

	return nil
}

// Finalise - stop all payment handling
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.Lock()
	globalData.pool = nil
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// Get - return the settlement Provider
func Get() Provider {
	return &globalData
}

func balance(trx storage.Transaction, key []byte) uint64 {
	var packed []byte
	if nil == trx {
		packed = globalData.pool.Get(key)
	} else {
		packed = trx.Get(globalData.pool, key)
	}
	if 8 != len(packed) {
		return 0
	}
	return binary.BigEndian.Uint64(packed)
}

func storeBalance(trx storage.Transaction, key []byte, amount uint64) {
	packed := make([]byte, 8)
	binary.BigEndian.PutUint64(packed, amount)
	trx.Put(globalData.pool, key, packed)
}

// FromAccount - debit a party balance into custody
func (s *settlementData) FromAccount(trx storage.Transaction, from *account.Account, amount uint64) error {
	s.Lock()
	defer s.Unlock()

	if !s.initialised {
		return fault.NotInitialised
	}

	key := from.Bytes()
	available := balance(trx, key)
	if available < amount {
		s.log.Warnf("debit: %s  amount: %d  available: %d", from, amount, available)
		return fault.InsufficientFunds
	}

	storeBalance(trx, key, available-amount)
	storeBalance(trx, custodyKey, balance(trx, custodyKey)+amount)

	s.log.Debugf("debit: %s  amount: %d", from, amount)
	return nil
}

// ToAccount - pay a party balance out of custody
func (s *settlementData) ToAccount(trx storage.Transaction, to *account.Account, amount uint64) error {
	s.Lock()
	defer s.Unlock()

	if !s.initialised {
		return fault.NotInitialised
	}

	held := balance(trx, custodyKey)
	if held < amount {
		// conservation means custody always covers a valid pay-out
		s.log.Errorf("custody short: amount: %d  held: %d", amount, held)
		return fault.TransferFailed
	}

	key := to.Bytes()
	storeBalance(trx, custodyKey, held-amount)
	storeBalance(trx, key, balance(trx, key)+amount)

	s.log.Debugf("credit: %s  amount: %d", to, amount)
	return nil
}

// Deposit - fund a party balance from outside the settlement system
//
// the way value enters: seeding on test chains and the funding RPC
func Deposit(trx storage.Transaction, to *account.Account, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	key := to.Bytes()
	storeBalance(trx, key, balance(trx, key)+amount)

	globalData.log.Infof("deposit: %s  amount: %d", to, amount)
	return nil
}

// Balance - current settlement balance of a party
func Balance(acc *account.Account) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0
	}
	return balance(nil, acc.Bytes())
}

// CustodyBalance - funds currently held for active leases and unsold assets
func CustodyBalance() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0
	}
	return balance(nil, custodyKey)
}
