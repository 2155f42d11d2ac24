// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord

import (
	"sort"

	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/util"
)

// append a varint64 prefixed string
func appendString(buffer []byte, s string) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

// append an optional account, zero length marks absent
func appendAccount(buffer []byte, a *account.Account) []byte {
	if nil == a {
		return append(buffer, 0x00)
	}
	return appendString(buffer, a.String())
}

// decode a varint64, returning the bytes consumed
// ok is false on truncation
func nextUint64(buffer []byte) (value uint64, used int, ok bool) {
	value, used = util.FromVarint64(buffer)
	if 0 == used {
		return 0, 0, false
	}
	return value, used, true
}

// decode a varint64 prefixed string
func nextString(buffer []byte) (s string, used int, ok bool) {
	length, n, ok := nextUint64(buffer)
	if !ok {
		return "", 0, false
	}
	if uint64(len(buffer)-n) < length {
		return "", 0, false
	}
	used = n + int(length)
	return string(buffer[n:used]), used, true
}

// decode an optional account
func nextAccount(buffer []byte) (a *account.Account, used int, ok bool) {
	name, used, ok := nextString(buffer)
	if !ok {
		return nil, 0, false
	}
	if "" == name {
		return nil, used, true
	}
	a, err := account.New(name)
	if nil != err {
		return nil, 0, false
	}
	return a, used, true
}

// sorted string set helpers, used for the asset id sets

func setAdd(set []string, id string) []string {
	i := sort.SearchStrings(set, id)
	if i < len(set) && set[i] == id {
		return set // already present
	}
	set = append(set, "")
	copy(set[i+1:], set[i:])
	set[i] = id
	return set
}

func setRemove(set []string, id string) []string {
	i := sort.SearchStrings(set, id)
	if i >= len(set) || set[i] != id {
		return set
	}
	return append(set[:i], set[i+1:]...)
}

func setContains(set []string, id string) bool {
	i := sort.SearchStrings(set, id)
	return i < len(set) && set[i] == id
}
