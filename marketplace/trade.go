// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/storage"
)

// Buy - purchase an unowned asset
//
// the purchase price moves from the buyer into custody and is held
// there until the asset is sold back
func (m *marketData) Buy(caller *account.Account, assetId string) error {
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
	if asset.IsOwned() {
		trx.Abort()
		return fault.AssetAlreadyOwned
	}

	err = m.provider.FromAccount(trx, caller, asset.Price)
	if nil != err {
		trx.Abort()
		return err
	}

	lessor, err := m.ledger.LessorOrCreate(trx, caller)
	if nil != err {
		trx.Abort()
		return err
	}

	asset.Buy(caller)
	lessor.AddAsset(assetId)

	m.ledger.StoreAsset(trx, asset)
	m.ledger.StoreLessor(trx, lessor)

	m.log.Infof("buy: %q by: %s  price: %d", assetId, caller, asset.Price)
	return trx.Commit()
}

// Sell - return an owned asset to the marketplace
//
// only the current owner can sell; the purchase price is refunded out
// of custody and both sides of the ownership reference are cleared,
// an active lease survives the sale
func (m *marketData) Sell(caller *account.Account, assetId string) error {
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
	if !caller.Equal(asset.OwnedBy) {
		trx.Abort()
		return fault.AssetNotOwnedByCaller
	}

	lessor, err := m.ledger.Lessor(trx, caller)
	if nil != err {
		trx.Abort()
		return err
	}

	err = m.provider.ToAccount(trx, caller, asset.Price)
	if nil != err {
		trx.Abort()
		return err
	}

	asset.Sell()
	lessor.RemoveAsset(assetId)

	m.ledger.StoreAsset(trx, asset)
	m.ledger.StoreLessor(trx, lessor)

	m.log.Infof("sell: %q by: %s  refund: %d", assetId, caller, asset.Price)
	return trx.Commit()
}
