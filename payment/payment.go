// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - movement of settlement funds
//
// the marketplace only ever moves value through the Provider
// interface; the storage-backed provider keeps per-account balances
// in the settlements pool so transfers commit or abort together with
// the ledger records they pay for
//
// every transfer has two legs through an internal custody balance:
// FromAccount debits a party into custody, ToAccount pays a party out
// of custody, so the sum over all balances is constant; funds held
// for active leases simply rest in custody until the matching pay-out
package payment

import (
	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/storage"
)

// Provider - interface for moving settlement funds
type Provider interface {
	FromAccount(trx storage.Transaction, from *account.Account, amount uint64) error
	ToAccount(trx storage.Transaction, to *account.Account, amount uint64) error
}
