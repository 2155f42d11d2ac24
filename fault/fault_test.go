// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/leasifyd/fault"
)

// test the classification of some representative errors
func TestClassification(t *testing.T) {

	errorList := []struct {
		err           error
		authorization bool
		exists        bool
		invalid       bool
		notFound      bool
		process       bool
	}{
		{fault.AssetNotFound, false, false, false, true, false},
		{fault.AssetAlreadyExists, false, true, false, false, false},
		{fault.AssetAlreadyLeased, false, false, true, false, false},
		{fault.AssetNotOwnedByCaller, true, false, false, false, false},
		{fault.InsufficientDeposit, false, false, true, false, false},
		{fault.InsufficientFunds, false, false, false, false, true},
		{fault.LessorNotFound, false, false, false, true, false},
		{fault.TransferFailed, false, false, false, false, true},
		{fault.WrongLesseeAccount, true, false, false, false, false},
	}

	for i, item := range errorList {
		if fault.IsErrAuthorization(item.err) != item.authorization {
			t.Errorf("%d: wrong authorization classification for: %v", i, item.err)
		}
		if fault.IsErrExists(item.err) != item.exists {
			t.Errorf("%d: wrong exists classification for: %v", i, item.err)
		}
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: wrong invalid classification for: %v", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: wrong not found classification for: %v", i, item.err)
		}
		if fault.IsErrProcess(item.err) != item.process {
			t.Errorf("%d: wrong process classification for: %v", i, item.err)
		}
	}
}
