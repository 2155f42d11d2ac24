// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/ledgerrecord"
	"github.com/bitmark-inc/leasifyd/storage"
)

// Lease - take a lease on an asset that is not already leased
//
// the renter pays the security deposit into custody; instalments are
// paid separately through PayLease; ownership is not required for an
// asset to be leasable
func (m *marketData) Lease(caller *account.Account, assetId string) error {
	if nil == caller {
		return fault.MissingParameters
	}

	m.Lock()
	defer m.Unlock()

	if !m.initialised {
		return fault.NotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	asset, err := m.ledger.Asset(trx, assetId)
	if nil != err {
		trx.Abort()
		return err
	}
	if asset.IsLeased() {
		trx.Abort()
		return fault.AssetAlreadyLeased
	}

	err = m.provider.FromAccount(trx, caller, asset.DepositAmount)
	if nil != err {
		trx.Abort()
		return err
	}

	lessee, err := m.ledger.LesseeOrCreate(trx, caller)
	if nil != err {
		trx.Abort()
		return err
	}

	asset.Lease(caller)
	lessee.AddAsset(assetId, asset.DepositAmount)

	m.ledger.StoreAsset(trx, asset)
	m.ledger.StoreLessee(trx, lessee)

	m.log.Infof("lease: %q by: %s  deposit: %d", assetId, caller, asset.DepositAmount)
	return trx.Commit()
}

// Release - end a lease and recover the deposit
func (m *marketData) Release(caller *account.Account, assetId string) error {
	if nil == caller {
		return fault.MissingParameters
	}

	m.Lock()
	defer m.Unlock()

	if !m.initialised {
		return fault.NotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	asset, err := m.ledger.Asset(trx, assetId)
	if nil != err {
		trx.Abort()
		return err
	}
	if !asset.IsLeased() {
		trx.Abort()
		return fault.AssetNotLeased
	}
	if !caller.Equal(asset.LeasedBy) {
		trx.Abort()
		return fault.AssetNotLeasedByCaller
	}

	lessee, err := m.ledger.Lessee(trx, caller)
	if nil != err {
		trx.Abort()
		return err
	}
	if lessee.DepositBalance < asset.DepositAmount {
		trx.Abort()
		return fault.InsufficientDeposit
	}

	err = m.provider.ToAccount(trx, caller, asset.DepositAmount)
	if nil != err {
		trx.Abort()
		return err
	}

	asset.Release()
	lessee.RemoveAsset(assetId, asset.DepositAmount)

	m.ledger.StoreAsset(trx, asset)
	m.ledger.StoreLessee(trx, lessee)

	m.log.Infof("release: %q by: %s  deposit: %d", assetId, caller, asset.DepositAmount)
	return trx.Commit()
}

// PayLease - pay one lease instalment on a held lease
//
// instalments are caller paced: nothing in the ledger limits how many
// are paid or when, each one simply accrues the periodic income to
// the current owner
func (m *marketData) PayLease(caller *account.Account, assetId string) error {
	if nil == caller {
		return fault.MissingParameters
	}

	m.Lock()
	defer m.Unlock()

	if !m.initialised {
		return fault.NotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	asset, err := m.ledger.Asset(trx, assetId)
	if nil != err {
		trx.Abort()
		return err
	}
	if !asset.IsLeased() {
		trx.Abort()
		return fault.AssetNotLeased
	}
	if !caller.Equal(asset.LeasedBy) {
		trx.Abort()
		return fault.AssetNotLeasedByCaller
	}

	err = m.provider.FromAccount(trx, caller, asset.LeasePrice)
	if nil != err {
		trx.Abort()
		return err
	}

	err = m.accrueToOwner(trx, asset, asset.PeriodicIncome)
	if nil != err {
		trx.Abort()
		return err
	}

	m.log.Infof("pay lease: %q by: %s  instalment: %d", assetId, caller, asset.LeasePrice)
	return trx.Commit()
}

// credit income to the asset owner, a no-op for an unowned asset
func (m *marketData) accrueToOwner(trx storage.Transaction, asset *ledgerrecord.Asset, amount uint64) error {
	if !asset.IsOwned() {
		return nil
	}

	lessor, err := m.ledger.Lessor(trx, asset.OwnedBy)
	if nil != err {
		return err
	}
	lessor.AccrueIncome(amount)
	m.ledger.StoreLessor(trx, lessor)
	return nil
}
