// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/ledgerrecord"
	"github.com/bitmark-inc/leasifyd/marketplace"
	"github.com/bitmark-inc/leasifyd/mode"
	"github.com/bitmark-inc/leasifyd/rpc/ratelimit"
)

// Assets - type for the RPC
type Assets struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Marketplace    marketplace.Marketplace
}

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool, isTestingChain func() bool, m marketplace.Marketplace) *Assets {
	return &Assets{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Marketplace:    m,
	}
}

// ---

// ListArguments - empty arguments for the listing requests
type ListArguments struct{}

// ListReply - results from a listing request
type ListReply struct {
	Assets []*ledgerrecord.Asset `json:"assets"`
}

// Buyable - list the assets without a current owner
func (assets *Assets) Buyable(_ *ListArguments, reply *ListReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}
	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	list, err := assets.Marketplace.BuyableAssets()
	if nil != err {
		return err
	}
	reply.Assets = list
	return nil
}

// Leasable - list the assets without a current lease
func (assets *Assets) Leasable(_ *ListArguments, reply *ListReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}
	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	list, err := assets.Marketplace.LeasableAssets()
	if nil != err {
		return err
	}
	reply.Assets = list
	return nil
}

// ---

// CreateArguments - arguments for asset registration
type CreateArguments struct {
	AssetId        string `json:"assetId"`
	Price          uint64 `json:"price"`
	LeasePrice     uint64 `json:"leasePrice"`
	PeriodicIncome uint64 `json:"periodicIncome"`
	DepositAmount  uint64 `json:"depositAmount"`
}

// CreateReply - results from asset registration
type CreateReply struct {
	AssetId string `json:"assetId"`
}

// Create - register a new asset
//
// registration over RPC is only for test chains; production assets
// are created by the operator at bootstrap
func (assets *Assets) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}
	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}
	if !assets.IsTestingChain() {
		return fault.WrongNetworkForPublic
	}

	assets.Log.Infof("Assets.Create: %+v", arguments)

	err := assets.Marketplace.CreateAsset(
		arguments.AssetId,
		arguments.Price,
		arguments.LeasePrice,
		arguments.PeriodicIncome,
		arguments.DepositAmount,
	)
	if nil != err {
		return err
	}
	reply.AssetId = arguments.AssetId
	return nil
}
