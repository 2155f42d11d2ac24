// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/ledgerrecord"
	"github.com/bitmark-inc/leasifyd/storage"
)

// Lessor - fetch a lessor record for an account
func (l *ledgerData) Lessor(trx storage.Transaction, owner *account.Account) (*ledgerrecord.Lessor, error) {
	packed := fetch(trx, l.poolLessors, owner.Bytes())
	if nil == packed {
		return nil, fault.LessorNotFound
	}
	lessor, err := ledgerrecord.PackedLessor(packed).Unpack()
	if nil != err {
		return nil, err
	}
	// a record stored under a key must carry the same account
	if !lessor.Account.Equal(owner) {
		return nil, fault.WrongLessorAccount
	}
	return lessor, nil
}

// LessorOrCreate - fetch a lessor record, or an empty one if none is stored
//
// the new record is not persisted; the caller stores it after mutation
func (l *ledgerData) LessorOrCreate(trx storage.Transaction, owner *account.Account) (*ledgerrecord.Lessor, error) {
	lessor, err := l.Lessor(trx, owner)
	if fault.LessorNotFound == err {
		return ledgerrecord.NewLessor(owner), nil
	}
	return lessor, err
}

// StoreLessor - write a lessor record into the transaction
func (l *ledgerData) StoreLessor(trx storage.Transaction, lessor *ledgerrecord.Lessor) {
	trx.Put(l.poolLessors, lessor.Account.Bytes(), lessor.Pack())
}

// Lessee - fetch a lessee record for an account
func (l *ledgerData) Lessee(trx storage.Transaction, renter *account.Account) (*ledgerrecord.Lessee, error) {
	packed := fetch(trx, l.poolLessees, renter.Bytes())
	if nil == packed {
		return nil, fault.LesseeNotFound
	}
	lessee, err := ledgerrecord.PackedLessee(packed).Unpack()
	if nil != err {
		return nil, err
	}
	if !lessee.Account.Equal(renter) {
		return nil, fault.WrongLesseeAccount
	}
	return lessee, nil
}

// LesseeOrCreate - fetch a lessee record, or an empty one if none is stored
func (l *ledgerData) LesseeOrCreate(trx storage.Transaction, renter *account.Account) (*ledgerrecord.Lessee, error) {
	lessee, err := l.Lessee(trx, renter)
	if fault.LesseeNotFound == err {
		return ledgerrecord.NewLessee(renter), nil
	}
	return lessee, err
}

// StoreLessee - write a lessee record into the transaction
func (l *ledgerData) StoreLessee(trx storage.Transaction, lessee *ledgerrecord.Lessee) {
	trx.Put(l.poolLessees, lessee.Account.Bytes(), lessee.Pack())
}
