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

// CreateAsset - register a new asset on the marketplace
//
// the asset starts unowned and not leased
func (m *marketData) CreateAsset(assetId string, price uint64, leasePrice uint64, periodicIncome uint64, depositAmount uint64) error {

	m.Lock()
	defer m.Unlock()

	if !m.initialised {
		return fault.NotInitialised
	}

	asset, err := ledgerrecord.NewAsset(assetId, price, leasePrice, periodicIncome, depositAmount)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	if m.ledger.HasAsset(trx, assetId) {
		trx.Abort()
		return fault.AssetAlreadyExists
	}

	m.ledger.StoreAsset(trx, asset)

	m.log.Infof("create asset: %q  price: %d  lease: %d  deposit: %d", assetId, price, leasePrice, depositAmount)
	return trx.Commit()
}

// BuyableAssets - all assets without a current owner
func (m *marketData) BuyableAssets() ([]*ledgerrecord.Asset, error) {
	return m.filteredAssets(func(asset *ledgerrecord.Asset) bool {
		return !asset.IsOwned()
	})
}

// LeasableAssets - all assets without a current lease
func (m *marketData) LeasableAssets() ([]*ledgerrecord.Asset, error) {
	return m.filteredAssets(func(asset *ledgerrecord.Asset) bool {
		return !asset.IsLeased()
	})
}

func (m *marketData) filteredAssets(keep func(*ledgerrecord.Asset) bool) ([]*ledgerrecord.Asset, error) {
	m.Lock()
	defer m.Unlock()

	if !m.initialised {
		return nil, fault.NotInitialised
	}

	all, err := m.ledger.AllAssets()
	if nil != err {
		return nil, err
	}

	assets := make([]*ledgerrecord.Asset, 0, len(all))
	for _, asset := range all {
		if keep(asset) {
			assets = append(assets, asset)
		}
	}
	return assets, nil
}

// OwnedAssets - the assets currently owned by a party
func (m *marketData) OwnedAssets(owner *account.Account) ([]*ledgerrecord.Asset, error) {
	if nil == owner {
		return nil, fault.MissingParameters
	}

	m.Lock()
	defer m.Unlock()

	if !m.initialised {
		return nil, fault.NotInitialised
	}

	lessor, err := m.ledger.Lessor(nil, owner)
	if nil != err {
		return nil, err
	}
	return m.assetsById(lessor.OwnedAssetIds)
}

// LeasedAssets - the assets currently leased by a party
func (m *marketData) LeasedAssets(renter *account.Account) ([]*ledgerrecord.Asset, error) {
	if nil == renter {
		return nil, fault.MissingParameters
	}

	m.Lock()
	defer m.Unlock()

	if !m.initialised {
		return nil, fault.NotInitialised
	}

	lessee, err := m.ledger.Lessee(nil, renter)
	if nil != err {
		return nil, err
	}
	return m.assetsById(lessee.LeasedAssetIds)
}

// fetch records for a reference list from the committed state
func (m *marketData) assetsById(ids []string) ([]*ledgerrecord.Asset, error) {
	assets := make([]*ledgerrecord.Asset, 0, len(ids))
	for _, id := range ids {
		asset, err := m.ledger.Asset(nil, id)
		if nil != err {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}
