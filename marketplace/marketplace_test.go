// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/ledger"
	"github.com/bitmark-inc/leasifyd/ledgerrecord"
	"github.com/bitmark-inc/leasifyd/marketplace"
	"github.com/bitmark-inc/leasifyd/payment"
	"github.com/bitmark-inc/leasifyd/payment/mocks"
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

func makeAccount(t *testing.T, name string) *account.Account {
	a, err := account.New(name)
	assert.Nil(t, err, "cannot create account: %q", name)
	return a
}

func containsId(assets []*ledgerrecord.Asset, assetId string) bool {
	for _, asset := range assets {
		if assetId == asset.Id {
			return true
		}
	}
	return false
}

// back-reference consistency: every forward reference held by an
// account record must be matched by the asset record it names
func assertReferencesConsistent(t *testing.T, owner *account.Account, renter *account.Account) {
	l := ledger.Get()

	lessor, err := l.Lessor(nil, owner)
	if nil == err {
		for _, id := range lessor.OwnedAssetIds {
			asset, err := l.Asset(nil, id)
			assert.Nil(t, err, "dangling owned asset id: %q", id)
			assert.True(t, owner.Equal(asset.OwnedBy), "asset %q back-reference mismatch", id)
		}
	}

	lessee, err := l.Lessee(nil, renter)
	if nil == err {
		total := uint64(0)
		for _, id := range lessee.LeasedAssetIds {
			asset, err := l.Asset(nil, id)
			assert.Nil(t, err, "dangling leased asset id: %q", id)
			assert.True(t, renter.Equal(asset.LeasedBy), "asset %q back-reference mismatch", id)
			total += asset.DepositAmount
		}
		assert.Equal(t, total, lessee.DepositBalance, "deposit balance out of step with leases")
	}
}

func TestFullLifecycle(t *testing.T) {
	m := marketplace.Get()

	owner := makeAccount(t, "owner-o")
	renter := makeAccount(t, "renter-r")

	err := m.Fund(owner, 1000)
	assert.Nil(t, err, "funding failed")
	err = m.Fund(renter, 1000)
	assert.Nil(t, err, "funding failed")

	err = m.CreateAsset("a1", 100, 10, 10, 60)
	assert.Nil(t, err, "create failed")

	buyable, err := m.BuyableAssets()
	assert.Nil(t, err, "listing failed")
	assert.True(t, containsId(buyable, "a1"), "new asset not buyable")

	leasable, err := m.LeasableAssets()
	assert.Nil(t, err, "listing failed")
	assert.True(t, containsId(leasable, "a1"), "new asset not leasable")

	// buy
	err = m.Buy(owner, "a1")
	assert.Nil(t, err, "buy failed")
	assert.Equal(t, uint64(900), payment.Balance(owner), "wrong owner balance after buy")
	assert.Equal(t, uint64(100), payment.CustodyBalance(), "wrong custody after buy")

	owned, err := m.OwnedAssets(owner)
	assert.Nil(t, err, "listing failed")
	assert.True(t, containsId(owned, "a1"), "bought asset not in owned set")

	buyable, err = m.BuyableAssets()
	assert.Nil(t, err, "listing failed")
	assert.False(t, containsId(buyable, "a1"), "owned asset still buyable")

	// lease
	err = m.Lease(renter, "a1")
	assert.Nil(t, err, "lease failed")
	assert.Equal(t, uint64(940), payment.Balance(renter), "wrong renter balance after lease")
	assert.Equal(t, uint64(160), payment.CustodyBalance(), "wrong custody after lease")

	deposit, err := m.DepositBalance(renter)
	assert.Nil(t, err, "deposit read failed")
	assert.Equal(t, uint64(60), deposit, "wrong deposit balance")

	leased, err := m.LeasedAssets(renter)
	assert.Nil(t, err, "listing failed")
	assert.True(t, containsId(leased, "a1"), "leased asset not in leased set")

	leasable, err = m.LeasableAssets()
	assert.Nil(t, err, "listing failed")
	assert.False(t, containsId(leasable, "a1"), "leased asset still leasable")

	assertReferencesConsistent(t, owner, renter)

	// pay two instalments, pacing is up to the renter
	err = m.PayLease(renter, "a1")
	assert.Nil(t, err, "pay lease failed")
	err = m.PayLease(renter, "a1")
	assert.Nil(t, err, "pay lease failed")
	assert.Equal(t, uint64(920), payment.Balance(renter), "wrong renter balance after instalments")

	income, err := m.AccumulatedIncome(owner)
	assert.Nil(t, err, "income read failed")
	assert.Equal(t, uint64(20), income, "wrong accumulated income")

	// withdraw part of the income
	err = m.WithdrawIncome(owner, 15)
	assert.Nil(t, err, "withdraw failed")
	assert.Equal(t, uint64(915), payment.Balance(owner), "wrong owner balance after withdraw")

	income, err = m.AccumulatedIncome(owner)
	assert.Nil(t, err, "income read failed")
	assert.Equal(t, uint64(5), income, "wrong remaining income")

	// release refunds the deposit
	err = m.Release(renter, "a1")
	assert.Nil(t, err, "release failed")
	assert.Equal(t, uint64(980), payment.Balance(renter), "wrong renter balance after release")

	deposit, err = m.DepositBalance(renter)
	assert.Nil(t, err, "deposit read failed")
	assert.Equal(t, uint64(0), deposit, "deposit not refunded")

	asset, err := ledger.Get().Asset(nil, "a1")
	assert.Nil(t, err, "asset read failed")
	assert.False(t, asset.IsLeased(), "lease reference not cleared")

	// sell refunds the price
	err = m.Sell(owner, "a1")
	assert.Nil(t, err, "sell failed")
	assert.Equal(t, uint64(1015), payment.Balance(owner), "wrong owner balance after sell")

	owned, err = m.OwnedAssets(owner)
	assert.Nil(t, err, "listing failed")
	assert.False(t, containsId(owned, "a1"), "sold asset still in owned set")

	asset, err = ledger.Get().Asset(nil, "a1")
	assert.Nil(t, err, "asset read failed")
	assert.False(t, asset.IsOwned(), "owner reference not cleared")

	// custody holds exactly the unwithdrawn income
	assert.Equal(t, uint64(5), payment.CustodyBalance(), "wrong final custody")
	assertReferencesConsistent(t, owner, renter)
}

func TestBuyPreconditions(t *testing.T) {
	m := marketplace.Get()

	owner := makeAccount(t, "owner-o")
	pauper := makeAccount(t, "owner-pauper")

	err := m.Buy(owner, "no-such-asset")
	assert.Equal(t, fault.AssetNotFound, err, "missing asset bought")

	err = m.CreateAsset("a2", 100, 10, 10, 60)
	assert.Nil(t, err, "create failed")

	// insufficient funds leaves no trace
	err = m.Buy(pauper, "a2")
	assert.Equal(t, fault.InsufficientFunds, err, "unfunded buy accepted")

	asset, err := ledger.Get().Asset(nil, "a2")
	assert.Nil(t, err, "asset read failed")
	assert.False(t, asset.IsOwned(), "failed buy left an owner reference")
	_, err = ledger.Get().Lessor(nil, pauper)
	assert.Equal(t, fault.LessorNotFound, err, "failed buy created a lessor record")

	// a second buyer cannot take an owned asset
	err = m.Buy(owner, "a2")
	assert.Nil(t, err, "buy failed")
	err = m.Fund(pauper, 1000)
	assert.Nil(t, err, "funding failed")
	err = m.Buy(pauper, "a2")
	assert.Equal(t, fault.AssetAlreadyOwned, err, "owned asset bought again")
}

func TestSellPreconditions(t *testing.T) {
	m := marketplace.Get()

	stranger := makeAccount(t, "owner-pauper")

	err := m.Sell(stranger, "no-such-asset")
	assert.Equal(t, fault.AssetNotFound, err, "missing asset sold")

	// a2 is owned by owner-o from the previous test
	err = m.Sell(stranger, "a2")
	assert.Equal(t, fault.AssetNotOwnedByCaller, err, "non-owner allowed to sell")

	asset, err := ledger.Get().Asset(nil, "a2")
	assert.Nil(t, err, "asset read failed")
	assert.True(t, asset.IsOwned(), "failed sell cleared the owner reference")
}

func TestLeasePreconditions(t *testing.T) {
	m := marketplace.Get()

	renter := makeAccount(t, "renter-r")
	other := makeAccount(t, "renter-other")

	err := m.Fund(other, 1000)
	assert.Nil(t, err, "funding failed")

	err = m.CreateAsset("a3", 100, 10, 10, 60)
	assert.Nil(t, err, "create failed")

	// an unowned asset can still be leased
	err = m.Lease(renter, "a3")
	assert.Nil(t, err, "lease of unowned asset failed")

	// but not leased twice
	err = m.Lease(other, "a3")
	assert.Equal(t, fault.AssetAlreadyLeased, err, "leased asset leased again")
	_, err = ledger.Get().Lessee(nil, other)
	assert.Equal(t, fault.LesseeNotFound, err, "failed lease created a lessee record")

	// only the current renter can release or pay
	err = m.Release(other, "a3")
	assert.Equal(t, fault.AssetNotLeasedByCaller, err, "non-renter allowed to release")
	err = m.PayLease(other, "a3")
	assert.Equal(t, fault.AssetNotLeasedByCaller, err, "non-renter allowed to pay")

	// paying on an unowned asset moves funds but accrues to nobody
	before := payment.Balance(renter)
	err = m.PayLease(renter, "a3")
	assert.Nil(t, err, "pay lease on unowned asset failed")
	assert.Equal(t, before-10, payment.Balance(renter), "wrong renter balance")

	err = m.Release(renter, "a3")
	assert.Nil(t, err, "release failed")

	// a released asset cannot be released or paid again
	err = m.Release(renter, "a3")
	assert.Equal(t, fault.AssetNotLeased, err, "released asset released again")
	err = m.PayLease(renter, "a3")
	assert.Equal(t, fault.AssetNotLeased, err, "released asset paid again")
}

func TestWithdrawPreconditions(t *testing.T) {
	m := marketplace.Get()

	owner := makeAccount(t, "owner-o")
	unknown := makeAccount(t, "owner-unknown")

	err := m.WithdrawIncome(unknown, 10)
	assert.Equal(t, fault.LessorNotFound, err, "unknown account allowed to withdraw")

	err = m.WithdrawIncome(owner, 0)
	assert.Equal(t, fault.InvalidWithdrawAmount, err, "zero withdrawal accepted")

	// owner-o holds 5 of unwithdrawn income from the lifecycle test
	income, err := m.AccumulatedIncome(owner)
	assert.Nil(t, err, "income read failed")
	err = m.WithdrawIncome(owner, income+100)
	assert.Equal(t, fault.InvalidWithdrawAmount, err, "over-limit withdrawal accepted")

	after, err := m.AccumulatedIncome(owner)
	assert.Nil(t, err, "income read failed")
	assert.Equal(t, income, after, "failed withdrawal changed the balance")

	// owner-pauper bought an asset but never accrued income
	err = m.WithdrawIncome(makeAccount(t, "owner-pauper"), 10)
	assert.Equal(t, fault.NoAccumulatedIncome, err, "withdrawal with no income accepted")
}

func TestListingsUnknownAccount(t *testing.T) {
	m := marketplace.Get()

	stranger := makeAccount(t, "owner-stranger")

	owned, err := m.OwnedAssets(stranger)
	assert.Equal(t, fault.LessorNotFound, err, "listing for account that never bought")
	assert.Nil(t, owned, "unexpected assets for account that never bought")

	leased, err := m.LeasedAssets(stranger)
	assert.Equal(t, fault.LesseeNotFound, err, "listing for account that never leased")
	assert.Nil(t, leased, "unexpected assets for account that never leased")
}

func TestCreateAssetPreconditions(t *testing.T) {
	m := marketplace.Get()

	err := m.CreateAsset("a1", 1, 1, 1, 1)
	assert.Equal(t, fault.AssetAlreadyExists, err, "duplicate asset created")

	err = m.CreateAsset("", 1, 1, 1, 1)
	assert.Equal(t, fault.AssetIdLength, err, "empty asset id accepted")
}

func TestTransferFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renter := makeAccount(t, "renter-r")

	// swap in a provider that fails after the preconditions pass
	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().
		FromAccount(gomock.Any(), renter, uint64(60)).
		Return(fault.TransferFailed).
		Times(1)

	err := marketplace.Finalise()
	assert.Nil(t, err, "finalise failed")
	err = marketplace.Initialise(ledger.Get(), provider)
	assert.Nil(t, err, "initialise failed")

	defer func() {
		_ = marketplace.Finalise()
		_ = marketplace.Initialise(ledger.Get(), payment.Get())
	}()

	m := marketplace.Get()

	err = m.CreateAsset("a4", 100, 10, 10, 60)
	assert.Nil(t, err, "create failed")

	err = m.Lease(renter, "a4")
	assert.Equal(t, fault.TransferFailed, err, "failed transfer not propagated")

	// nothing of the failed lease is visible
	asset, err := ledger.Get().Asset(nil, "a4")
	assert.Nil(t, err, "asset read failed")
	assert.False(t, asset.IsLeased(), "failed lease left a renter reference")

	lessee, err := ledger.Get().Lessee(nil, renter)
	assert.Nil(t, err, "lessee read failed")
	assert.False(t, lessee.Leases("a4"), "failed lease entered the leased set")
}
