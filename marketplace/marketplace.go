// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package marketplace - the leasing marketplace operations
//
// each operation runs under a single storage transaction in strict
// order: preconditions, funds transfer, record mutation, persist; any
// failure aborts the transaction so a failed operation leaves no
// trace in the ledger
package marketplace

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/ledger"
	"github.com/bitmark-inc/leasifyd/ledgerrecord"
	"github.com/bitmark-inc/leasifyd/payment"
)

// Marketplace - the operations a connected party can perform
type Marketplace interface {

	// asset administration
	CreateAsset(assetId string, price uint64, leasePrice uint64, periodicIncome uint64, depositAmount uint64) error

	// owner side
	Buy(caller *account.Account, assetId string) error
	Sell(caller *account.Account, assetId string) error
	WithdrawIncome(caller *account.Account, amount uint64) error

	// renter side
	Lease(caller *account.Account, assetId string) error
	Release(caller *account.Account, assetId string) error
	PayLease(caller *account.Account, assetId string) error

	// funding
	Fund(to *account.Account, amount uint64) error

	// views of the committed state
	BuyableAssets() ([]*ledgerrecord.Asset, error)
	LeasableAssets() ([]*ledgerrecord.Asset, error)
	OwnedAssets(owner *account.Account) ([]*ledgerrecord.Asset, error)
	LeasedAssets(renter *account.Account) ([]*ledgerrecord.Asset, error)
	AccumulatedIncome(owner *account.Account) (uint64, error)
	DepositBalance(renter *account.Account) (uint64, error)
}

// globals for background process
type marketData struct {
	sync.Mutex // operations are serialised

	log      *logger.L
	ledger   ledger.Ledger
	provider payment.Provider

	// set once during initialise
	initialised bool
}

// global data
var globalData marketData

// Initialise - connect the marketplace to its ledger and provider
func Initialise(l ledger.Ledger, provider payment.Provider) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("marketplace")
	globalData.log.Info("starting…")

	globalData.ledger = l
	globalData.provider = provider
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting operations
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.Lock()
	globalData.ledger = nil
	globalData.provider = nil
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// Get - return the Marketplace interface
func Get() Marketplace {
	return &globalData
}
