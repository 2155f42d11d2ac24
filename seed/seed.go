// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package seed - sample marketplace data for test chains
package seed

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/marketplace"
	"github.com/bitmark-inc/leasifyd/mode"
	"github.com/bitmark-inc/leasifyd/payment"
)

// number of generated sample assets
const sampleAssetCount = 10

// funding for each generated sample party
const sampleFunding = 100000

// Generate - populate the marketplace with sample data
//
// refused outright on the production chain; assets that already exist
// from an earlier run are skipped so a restart is harmless
func Generate() error {
	if !mode.IsTesting() {
		return fault.SeedingNotAllowed
	}

	log := logger.New("seed")
	m := marketplace.Get()

	for i := 1; i <= sampleAssetCount; i += 1 {
		assetId := fmt.Sprintf("sample-asset-%02d", i)
		price := uint64(100 * i)
		leasePrice := price / 10

		err := m.CreateAsset(assetId, price, leasePrice, leasePrice, 6*leasePrice)
		if fault.AssetAlreadyExists == err {
			continue
		} else if nil != err {
			return err
		}
		log.Infof("created: %q  price: %d", assetId, price)
	}

	for _, name := range []string{"sample-owner", "sample-renter"} {
		party, err := account.New(name)
		if nil != err {
			return err
		}
		if payment.Balance(party) > 0 {
			continue
		}
		err = m.Fund(party, sampleFunding)
		if nil != err {
			return err
		}
		log.Infof("funded: %s  amount: %d", party, sampleFunding)
	}

	return nil
}
