// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord

import (
	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/util"
)

// asset id length limits
const (
	minimumAssetIdLength = 1
	maximumAssetIdLength = 64
)

// Asset - a leasable/purchasable unit
//
// the price fields are fixed at creation; only the owner and renter
// references change over the asset's lifetime
type Asset struct {
	Id             string           `json:"id"`
	Price          uint64           `json:"price"`
	LeasePrice     uint64           `json:"leasePrice"`
	PeriodicIncome uint64           `json:"periodicIncome"`
	DepositAmount  uint64           `json:"depositAmount"`
	OwnedBy        *account.Account `json:"ownedBy,omitempty"`  // nil when unowned
	LeasedBy       *account.Account `json:"leasedBy,omitempty"` // nil when not leased
}

// PackedAsset - packed byte form for the asset pool
type PackedAsset []byte

// NewAsset - create an asset with validated id, unowned and unleased
func NewAsset(id string, price uint64, leasePrice uint64, periodicIncome uint64, depositAmount uint64) (*Asset, error) {
	if len(id) < minimumAssetIdLength || len(id) > maximumAssetIdLength {
		return nil, fault.AssetIdLength
	}
	return &Asset{
		Id:             id,
		Price:          price,
		LeasePrice:     leasePrice,
		PeriodicIncome: periodicIncome,
		DepositAmount:  depositAmount,
	}, nil
}

// IsOwned - check for an owner reference
func (asset *Asset) IsOwned() bool {
	return nil != asset.OwnedBy
}

// IsLeased - check for a renter reference
func (asset *Asset) IsLeased() bool {
	return nil != asset.LeasedBy
}

// Buy - assign the owner reference
func (asset *Asset) Buy(owner *account.Account) {
	asset.OwnedBy = owner
}

// Sell - clear the owner reference
func (asset *Asset) Sell() {
	asset.OwnedBy = nil
}

// Lease - assign the renter reference
func (asset *Asset) Lease(renter *account.Account) {
	asset.LeasedBy = renter
}

// Release - clear the renter reference
func (asset *Asset) Release() {
	asset.LeasedBy = nil
}

// Pack - pack an asset record to its byte form
func (asset *Asset) Pack() PackedAsset {
	buffer := appendString(nil, asset.Id)
	buffer = append(buffer, util.ToVarint64(asset.Price)...)
	buffer = append(buffer, util.ToVarint64(asset.LeasePrice)...)
	buffer = append(buffer, util.ToVarint64(asset.PeriodicIncome)...)
	buffer = append(buffer, util.ToVarint64(asset.DepositAmount)...)
	buffer = appendAccount(buffer, asset.OwnedBy)
	buffer = appendAccount(buffer, asset.LeasedBy)
	return buffer
}

// Unpack - unpack an asset record, rejecting corrupt data
func (packed PackedAsset) Unpack() (*Asset, error) {

	buffer := []byte(packed)
	asset := &Asset{}
	n := 0

	id, used, ok := nextString(buffer)
	if !ok || len(id) < minimumAssetIdLength || len(id) > maximumAssetIdLength {
		return nil, fault.NotAssetRecord
	}
	asset.Id = id
	n += used

	for _, field := range []*uint64{&asset.Price, &asset.LeasePrice, &asset.PeriodicIncome, &asset.DepositAmount} {
		value, used, ok := nextUint64(buffer[n:])
		if !ok {
			return nil, fault.NotAssetRecord
		}
		*field = value
		n += used
	}

	owner, used, ok := nextAccount(buffer[n:])
	if !ok {
		return nil, fault.NotAssetRecord
	}
	asset.OwnedBy = owner
	n += used

	renter, used, ok := nextAccount(buffer[n:])
	if !ok {
		return nil, fault.NotAssetRecord
	}
	asset.LeasedBy = renter
	n += used

	if n != len(buffer) {
		return nil, fault.NotAssetRecord
	}

	return asset, nil
}
