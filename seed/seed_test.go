// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/chain"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/ledger"
	"github.com/bitmark-inc/leasifyd/marketplace"
	"github.com/bitmark-inc/leasifyd/mode"
	"github.com/bitmark-inc/leasifyd/payment"
	"github.com/bitmark-inc/leasifyd/seed"
	"github.com/bitmark-inc/leasifyd/storage"
)

const (
	testingDirName = "testing"
)

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)

	err := storage.Initialise(filepath.Join(testingDirName, "test"), storage.ReadWrite)
	if nil != err {
		logger.Panicf("storage initialise error: %s", err)
	}

	err = payment.Initialise(storage.Pool.Settlements)
	if nil != err {
		logger.Panicf("payment initialise error: %s", err)
	}

	ledger.Initialise(storage.Pool.Assets, storage.Pool.Lessors, storage.Pool.Lessees)

	err = marketplace.Initialise(ledger.Get(), payment.Get())
	if nil != err {
		logger.Panicf("marketplace initialise error: %s", err)
	}

	rc := m.Run()

	_ = marketplace.Finalise()
	_ = payment.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

func TestGenerateRefusedOnProduction(t *testing.T) {
	err := mode.Initialise(chain.Production)
	assert.Nil(t, err, "mode initialise failed")

	err = seed.Generate()
	assert.Equal(t, fault.SeedingNotAllowed, err, "seeding allowed on production chain")

	err = mode.Finalise()
	assert.Nil(t, err, "mode finalise failed")
}

func TestGenerate(t *testing.T) {
	err := mode.Initialise(chain.Local)
	assert.Nil(t, err, "mode initialise failed")
	defer mode.Finalise()

	err = seed.Generate()
	assert.Nil(t, err, "seeding failed")

	asset, err := ledger.Get().Asset(nil, "sample-asset-01")
	assert.Nil(t, err, "sample asset missing")
	assert.Equal(t, uint64(100), asset.Price, "wrong sample price")
	assert.Equal(t, uint64(10), asset.LeasePrice, "wrong sample lease price")
	assert.False(t, asset.IsOwned(), "sample asset already owned")

	sampleOwner, err := account.New("sample-owner")
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, uint64(100000), payment.Balance(sampleOwner), "sample party not funded")

	// a second run must not duplicate anything
	err = seed.Generate()
	assert.Nil(t, err, "repeat seeding failed")
	assert.Equal(t, uint64(100000), payment.Balance(sampleOwner), "repeat seeding re-funded the party")

	buyable, err := marketplace.Get().BuyableAssets()
	assert.Nil(t, err, "listing failed")
	assert.Equal(t, 10, len(buyable), "wrong number of sample assets")
}
