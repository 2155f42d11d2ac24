// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/leasifyd/fault"
)

// name length limits
const (
	minimumNameLength = 2
	maximumNameLength = 64
)

// Account - the identity of a marketplace party
//
// the execution host resolves the caller to one of these; the ledger
// never sees an unvalidated name
type Account struct {
	name string
}

// New - create an account from a raw name
//
// a name is 2…64 characters of lower case letters and digits,
// separated by single '-', '_' or '.' characters
func New(name string) (*Account, error) {
	if len(name) < minimumNameLength || len(name) > maximumNameLength {
		return nil, fault.AccountNameLength
	}

	lastWasSeparator := true // a leading separator is also invalid
	for i := 0; i < len(name); i += 1 {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			lastWasSeparator = false
		case c == '-', c == '_', c == '.':
			if lastWasSeparator {
				return nil, fault.InvalidAccountName
			}
			lastWasSeparator = true
		default:
			return nil, fault.InvalidAccountName
		}
	}
	if lastWasSeparator {
		return nil, fault.InvalidAccountName
	}

	return &Account{name: name}, nil
}

// AccountFromBytes - reconstruct an account from its stored key bytes
func AccountFromBytes(buffer []byte) (*Account, error) {
	return New(string(buffer))
}

// Bytes - byte form for storage keys
func (account *Account) Bytes() []byte {
	return []byte(account.name)
}

// String - the account name
func (account *Account) String() string {
	return account.name
}

// Equal - compare two accounts, either may be nil
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return account.name == other.name
}

// MarshalText - the name as text
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.name), nil
}

// UnmarshalText - validate and assign a name from text
func (account *Account) UnmarshalText(s []byte) error {
	a, err := New(string(s))
	if nil != err {
		return err
	}
	account.name = a.name
	return nil
}
