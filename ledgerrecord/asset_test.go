// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/ledgerrecord"
)

func makeAccount(t *testing.T, name string) *account.Account {
	a, err := account.New(name)
	assert.Nil(t, err, "cannot create account: %q", name)
	return a
}

func TestAssetPackedForm(t *testing.T) {
	asset, err := ledgerrecord.NewAsset("a1", 100, 10, 10, 60)
	assert.Nil(t, err, "unexpected error")

	expected := []byte{
		0x02, 'a', '1', // id
		0x64, // price
		0x0a, // lease price
		0x0a, // periodic income
		0x3c, // deposit amount
		0x00, // unowned
		0x00, // not leased
	}
	assert.Equal(t, expected, []byte(asset.Pack()), "wrong packed form")
}

func TestAssetPackUnpack(t *testing.T) {
	asset, err := ledgerrecord.NewAsset("flat-17", 250000, 1200, 1200, 3600)
	assert.Nil(t, err, "unexpected error")

	asset.Buy(makeAccount(t, "lessor-one"))
	asset.Lease(makeAccount(t, "renter-one"))

	unpacked, err := asset.Pack().Unpack()
	assert.Nil(t, err, "unpack failed")
	assert.Equal(t, asset, unpacked, "record changed in round trip")
	assert.True(t, unpacked.IsOwned(), "owner reference lost")
	assert.True(t, unpacked.IsLeased(), "renter reference lost")

	asset.Sell()
	asset.Release()
	unpacked, err = asset.Pack().Unpack()
	assert.Nil(t, err, "unpack failed")
	assert.False(t, unpacked.IsOwned(), "owner reference not cleared")
	assert.False(t, unpacked.IsLeased(), "renter reference not cleared")
	assert.Nil(t, unpacked.OwnedBy, "owner reference not cleared")
	assert.Nil(t, unpacked.LeasedBy, "renter reference not cleared")
}

func TestAssetUnpackCorrupt(t *testing.T) {
	asset, _ := ledgerrecord.NewAsset("a1", 100, 10, 10, 60)
	packed := []byte(asset.Pack())

	corruptBuffers := [][]byte{
		{},                            // empty
		packed[:len(packed)-1],        // truncated
		append(packed[:0:0], append(packed, 0x00)...), // trailing byte
		{0x02, 'a'},                   // id longer than buffer
		{0x00, 0x64, 0x0a, 0x0a, 0x3c, 0x00, 0x00}, // empty id
	}

	for i, buffer := range corruptBuffers {
		_, err := ledgerrecord.PackedAsset(buffer).Unpack()
		assert.Equal(t, fault.NotAssetRecord, err, "corrupt buffer %d accepted", i)
	}
}

func TestAssetIdLength(t *testing.T) {
	_, err := ledgerrecord.NewAsset("", 1, 1, 1, 1)
	assert.Equal(t, fault.AssetIdLength, err, "empty id accepted")

	tooLong := make([]byte, 65)
	for i := range tooLong {
		tooLong[i] = 'x'
	}
	_, err = ledgerrecord.NewAsset(string(tooLong), 1, 1, 1, 1)
	assert.Equal(t, fault.AssetIdLength, err, "oversize id accepted")
}
