// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/ledgerrecord"
	"github.com/bitmark-inc/leasifyd/storage"
)

// number of elements fetched per cursor page when scanning the pool
const assetFetchSize = 100

// Asset - fetch a single asset record by its id
func (l *ledgerData) Asset(trx storage.Transaction, assetId string) (*ledgerrecord.Asset, error) {
	packed := fetch(trx, l.poolAssets, []byte(assetId))
	if nil == packed {
		return nil, fault.AssetNotFound
	}
	return ledgerrecord.PackedAsset(packed).Unpack()
}

// HasAsset - check an asset record exists
func (l *ledgerData) HasAsset(trx storage.Transaction, assetId string) bool {
	if nil == trx {
		return l.poolAssets.Has([]byte(assetId))
	}
	return trx.Has(l.poolAssets, []byte(assetId))
}

// StoreAsset - write an asset record into the transaction
func (l *ledgerData) StoreAsset(trx storage.Transaction, asset *ledgerrecord.Asset) {
	trx.Put(l.poolAssets, []byte(asset.Id), asset.Pack())
}

// AllAssets - scan every asset record in the committed state
//
// id order, as the pool keys are the asset ids
func (l *ledgerData) AllAssets() ([]*ledgerrecord.Asset, error) {

	assets := []*ledgerrecord.Asset{}
	cursor := l.poolAssets.NewFetchCursor()

	for {
		elements, err := cursor.Fetch(assetFetchSize)
		if nil != err {
			return nil, err
		}
		if 0 == len(elements) {
			return assets, nil
		}
		for _, element := range elements {
			asset, err := ledgerrecord.PackedAsset(element.Value).Unpack()
			if nil != err {
				return nil, err
			}
			assets = append(assets, asset)
		}
	}
}
