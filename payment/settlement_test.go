// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/payment"
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

	rc := m.Run()

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

func beginTransaction(t *testing.T) storage.Transaction {
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "cannot begin transaction")
	return trx
}

func TestTransferConservation(t *testing.T) {
	provider := payment.Get()

	payer := makeAccount(t, "payer-one")
	payee := makeAccount(t, "payee-one")

	trx := beginTransaction(t)
	err := payment.Deposit(trx, payer, 1000)
	assert.Nil(t, err, "deposit failed")
	err = trx.Commit()
	assert.Nil(t, err, "commit failed")
	assert.Equal(t, uint64(1000), payment.Balance(payer), "wrong funded balance")

	trx = beginTransaction(t)
	err = provider.FromAccount(trx, payer, 400)
	assert.Nil(t, err, "debit failed")
	err = provider.ToAccount(trx, payee, 150)
	assert.Nil(t, err, "credit failed")
	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	assert.Equal(t, uint64(600), payment.Balance(payer), "wrong payer balance")
	assert.Equal(t, uint64(150), payment.Balance(payee), "wrong payee balance")
	assert.Equal(t, uint64(250), payment.CustodyBalance(), "wrong custody balance")

	total := payment.Balance(payer) + payment.Balance(payee) + payment.CustodyBalance()
	assert.Equal(t, uint64(1000), total, "funds not conserved")
}

func TestInsufficientFunds(t *testing.T) {
	provider := payment.Get()

	pauper := makeAccount(t, "payer-two")

	trx := beginTransaction(t)
	err := provider.FromAccount(trx, pauper, 1)
	assert.Equal(t, fault.InsufficientFunds, err, "uncovered debit accepted")
	trx.Abort()

	assert.Equal(t, uint64(0), payment.Balance(pauper), "balance appeared from nowhere")
}

func TestCustodyShort(t *testing.T) {
	provider := payment.Get()

	payee := makeAccount(t, "payee-two")

	held := payment.CustodyBalance()
	trx := beginTransaction(t)
	err := provider.ToAccount(trx, payee, held+1)
	assert.Equal(t, fault.TransferFailed, err, "uncovered pay-out accepted")
	trx.Abort()
}

func TestAbortDiscardsTransfer(t *testing.T) {
	provider := payment.Get()

	payer := makeAccount(t, "payer-three")

	trx := beginTransaction(t)
	err := payment.Deposit(trx, payer, 500)
	assert.Nil(t, err, "deposit failed")
	err = trx.Commit()
	assert.Nil(t, err, "commit failed")

	trx = beginTransaction(t)
	err = provider.FromAccount(trx, payer, 500)
	assert.Nil(t, err, "debit failed")
	trx.Abort()

	assert.Equal(t, uint64(500), payment.Balance(payer), "aborted debit became visible")
}
