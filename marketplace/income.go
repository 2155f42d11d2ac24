// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/payment"
	"github.com/bitmark-inc/leasifyd/storage"
)

// WithdrawIncome - move accumulated lease income out to the owner
func (m *marketData) WithdrawIncome(caller *account.Account, amount uint64) error {
	if nil == caller {
		return fault.MissingParameters
	}

	m.Lock()
	defer m.Unlock()

	if !m.initialised {
		return fault.NotInitialised
	}

	if 0 == amount {
		return fault.InvalidWithdrawAmount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	lessor, err := m.ledger.Lessor(trx, caller)
	if nil != err {
		trx.Abort()
		return err
	}
	if 0 == lessor.AccumulatedIncome {
		trx.Abort()
		return fault.NoAccumulatedIncome
	}
	if amount > lessor.AccumulatedIncome {
		trx.Abort()
		return fault.InvalidWithdrawAmount
	}

	err = m.provider.ToAccount(trx, caller, amount)
	if nil != err {
		trx.Abort()
		return err
	}

	lessor.TransferAccumulatedIncome(amount)
	m.ledger.StoreLessor(trx, lessor)

	m.log.Infof("withdraw income: %s  amount: %d", caller, amount)
	return trx.Commit()
}

// Fund - add settlement funds to a party
func (m *marketData) Fund(to *account.Account, amount uint64) error {
	if nil == to {
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

	err = payment.Deposit(trx, to, amount)
	if nil != err {
		trx.Abort()
		return err
	}

	return trx.Commit()
}

// AccumulatedIncome - lease income accrued and not yet withdrawn
func (m *marketData) AccumulatedIncome(owner *account.Account) (uint64, error) {
	if nil == owner {
		return 0, fault.MissingParameters
	}

	m.Lock()
	defer m.Unlock()

	if !m.initialised {
		return 0, fault.NotInitialised
	}

	lessor, err := m.ledger.Lessor(nil, owner)
	if nil != err {
		return 0, err
	}
	return lessor.AccumulatedIncome, nil
}

// DepositBalance - total deposits held for a renter's active leases
func (m *marketData) DepositBalance(renter *account.Account) (uint64, error) {
	if nil == renter {
		return 0, fault.MissingParameters
	}

	m.Lock()
	defer m.Unlock()

	if !m.initialised {
		return 0, fault.NotInitialised
	}

	lessee, err := m.ledger.Lessee(nil, renter)
	if nil != err {
		return 0, err
	}
	return lessee.DepositBalance, nil
}
