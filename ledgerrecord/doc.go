// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledgerrecord - the packed record types held in the ledger pools
//
// three record kinds exist:
// a. asset  - a leasable/purchasable unit with its fixed prices and
//             its current owner and renter references
// b. lessor - a party that has purchased assets and accrues rental
//             income on them
// c. lessee - a party that leases assets and holds a refundable
//             deposit balance
//
// records are stored in a packed binary form:
//   strings are prefixed by a varint64 length
//   amounts are plain varint64 values
//   optional account references pack as a zero length when absent
//
// unpacking verifies that the whole buffer is consumed; a short or
// oversize buffer is rejected as a corrupt record
package ledgerrecord
