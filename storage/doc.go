// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. asset id = utf-8 string (unique, immutable)
// 4. account  = utf-8 account name (see account package for rules)
// 5. amount   = native value as big endian uint64 (8 bytes)
//
// Assets:
//
//   A ++ asset id   - confirmed asset record
//                     data: packed asset data (see ledgerrecord)
//
// Accounts:
//
//   L ++ account    - lessor (owner) record
//                     data: packed lessor data: accumulated income ++ owned asset ids
//   E ++ account    - lessee (renter) record
//                     data: packed lessee data: deposit balance ++ leased asset ids
//
// Settlement:
//
//   S ++ account    - native value balance held for an account
//                     data: amount
//   S ++ 0x00       - native value held in marketplace custody
//                     data: amount
//
// Testing:
//
//   Z ++ key        - testing data
package storage
