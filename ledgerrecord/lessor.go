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

// Lessor - a party that has purchased assets
//
// accumulatedIncome only increases by paid-lease events and only
// decreases by explicit withdrawal; the caller validates amounts
// before invoking the mutators here
type Lessor struct {
	Account           *account.Account `json:"account"`
	AccumulatedIncome uint64           `json:"accumulatedIncome"`
	OwnedAssetIds     []string         `json:"ownedAssetIds"` // sorted
}

// PackedLessor - packed byte form for the lessor pool
type PackedLessor []byte

// NewLessor - create an empty lessor record
func NewLessor(owner *account.Account) *Lessor {
	return &Lessor{
		Account:       owner,
		OwnedAssetIds: []string{},
	}
}

// AddAsset - record ownership of an asset id
func (lessor *Lessor) AddAsset(assetId string) {
	lessor.OwnedAssetIds = setAdd(lessor.OwnedAssetIds, assetId)
}

// RemoveAsset - remove ownership of an asset id
func (lessor *Lessor) RemoveAsset(assetId string) {
	lessor.OwnedAssetIds = setRemove(lessor.OwnedAssetIds, assetId)
}

// Owns - check an asset id is in the owned set
func (lessor *Lessor) Owns(assetId string) bool {
	return setContains(lessor.OwnedAssetIds, assetId)
}

// AccrueIncome - credit a paid-lease event
func (lessor *Lessor) AccrueIncome(amount uint64) {
	lessor.AccumulatedIncome += amount
}

// TransferAccumulatedIncome - debit a withdrawal
//
// the amount was validated by the caller; the only guarantee here is
// that the balance never wraps below zero
func (lessor *Lessor) TransferAccumulatedIncome(amount uint64) {
	if amount > lessor.AccumulatedIncome {
		amount = lessor.AccumulatedIncome
	}
	lessor.AccumulatedIncome -= amount
}

// Pack - pack a lessor record to its byte form
func (lessor *Lessor) Pack() PackedLessor {
	buffer := appendString(nil, lessor.Account.String())
	buffer = append(buffer, util.ToVarint64(lessor.AccumulatedIncome)...)
	buffer = append(buffer, util.ToVarint64(uint64(len(lessor.OwnedAssetIds)))...)
	for _, id := range lessor.OwnedAssetIds {
		buffer = appendString(buffer, id)
	}
	return buffer
}

// Unpack - unpack a lessor record, rejecting corrupt data
func (packed PackedLessor) Unpack() (*Lessor, error) {

	buffer := []byte(packed)
	n := 0

	name, used, ok := nextString(buffer)
	if !ok {
		return nil, fault.NotLessorRecord
	}
	owner, err := account.New(name)
	if nil != err {
		return nil, fault.NotLessorRecord
	}
	n += used

	income, used, ok := nextUint64(buffer[n:])
	if !ok {
		return nil, fault.NotLessorRecord
	}
	n += used

	count, used, ok := nextUint64(buffer[n:])
	if !ok {
		return nil, fault.NotLessorRecord
	}
	n += used

	ids := make([]string, 0, count)
	for i := uint64(0); i < count; i += 1 {
		id, used, ok := nextString(buffer[n:])
		if !ok || "" == id {
			return nil, fault.NotLessorRecord
		}
		ids = setAdd(ids, id)
		n += used
	}

	if n != len(buffer) {
		return nil, fault.NotLessorRecord
	}

	return &Lessor{
		Account:           owner,
		AccumulatedIncome: income,
		OwnedAssetIds:     ids,
	}, nil
}
