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

// Lessee - a party that leases assets
//
// depositBalance always equals the sum of the deposit amounts of the
// currently leased assets: every AddAsset adds exactly one deposit
// and every RemoveAsset subtracts exactly one
type Lessee struct {
	Account        *account.Account `json:"account"`
	DepositBalance uint64           `json:"depositBalance"`
	LeasedAssetIds []string         `json:"leasedAssetIds"` // sorted
}

// PackedLessee - packed byte form for the lessee pool
type PackedLessee []byte

// NewLessee - create an empty lessee record
func NewLessee(renter *account.Account) *Lessee {
	return &Lessee{
		Account:        renter,
		LeasedAssetIds: []string{},
	}
}

// AddAsset - record a lease and hold its deposit
func (lessee *Lessee) AddAsset(assetId string, depositAmount uint64) {
	lessee.LeasedAssetIds = setAdd(lessee.LeasedAssetIds, assetId)
	lessee.DepositBalance += depositAmount
}

// RemoveAsset - remove a lease and release its deposit
//
// the caller has already verified the balance covers the deposit;
// the only guarantee here is that the balance never wraps below zero
func (lessee *Lessee) RemoveAsset(assetId string, depositAmount uint64) {
	lessee.LeasedAssetIds = setRemove(lessee.LeasedAssetIds, assetId)
	if depositAmount > lessee.DepositBalance {
		depositAmount = lessee.DepositBalance
	}
	lessee.DepositBalance -= depositAmount
}

// Leases - check an asset id is in the leased set
func (lessee *Lessee) Leases(assetId string) bool {
	return setContains(lessee.LeasedAssetIds, assetId)
}

// Pack - pack a lessee record to its byte form
func (lessee *Lessee) Pack() PackedLessee {
	buffer := appendString(nil, lessee.Account.String())
	buffer = append(buffer, util.ToVarint64(lessee.DepositBalance)...)
	buffer = append(buffer, util.ToVarint64(uint64(len(lessee.LeasedAssetIds)))...)
	for _, id := range lessee.LeasedAssetIds {
		buffer = appendString(buffer, id)
	}
	return buffer
}

// Unpack - unpack a lessee record, rejecting corrupt data
func (packed PackedLessee) Unpack() (*Lessee, error) {

	buffer := []byte(packed)
	n := 0

	name, used, ok := nextString(buffer)
	if !ok {
		return nil, fault.NotLesseeRecord
	}
	renter, err := account.New(name)
	if nil != err {
		return nil, fault.NotLesseeRecord
	}
	n += used

	balance, used, ok := nextUint64(buffer[n:])
	if !ok {
		return nil, fault.NotLesseeRecord
	}
	n += used

	count, used, ok := nextUint64(buffer[n:])
	if !ok {
		return nil, fault.NotLesseeRecord
	}
	n += used

	ids := make([]string, 0, count)
	for i := uint64(0); i < count; i += 1 {
		id, used, ok := nextString(buffer[n:])
		if !ok || "" == id {
			return nil, fault.NotLesseeRecord
		}
		ids = setAdd(ids, id)
		n += used
	}

	if n != len(buffer) {
		return nil, fault.NotLesseeRecord
	}

	return &Lessee{
		Account:        renter,
		DepositBalance: balance,
		LeasedAssetIds: ids,
	}, nil
}
