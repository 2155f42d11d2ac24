// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lessee

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/ledgerrecord"
	"github.com/bitmark-inc/leasifyd/marketplace"
	"github.com/bitmark-inc/leasifyd/mode"
	"github.com/bitmark-inc/leasifyd/payment"
	"github.com/bitmark-inc/leasifyd/rpc/ratelimit"
)

// Lessee - type for the RPC
type Lessee struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Marketplace  marketplace.Marketplace
}

const (
	rateLimitLessee = 200
	rateBurstLessee = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool, m marketplace.Marketplace) *Lessee {
	return &Lessee{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitLessee, rateBurstLessee),
		IsNormalMode: isNormalMode,
		Marketplace:  m,
	}
}

// ---

// LeaseArguments - arguments for the lease lifecycle requests
type LeaseArguments struct {
	Account string `json:"account"`
	AssetId string `json:"assetId"`
}

// LeaseReply - results from the lease lifecycle requests
type LeaseReply struct {
	Balance uint64 `json:"balance"`
}

// Lease - take a lease on an asset
func (lessee *Lessee) Lease(arguments *LeaseArguments, reply *LeaseReply) error {

	if err := ratelimit.Limit(lessee.Limiter); nil != err {
		return err
	}
	if !lessee.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	caller, err := account.New(arguments.Account)
	if nil != err {
		return err
	}

	lessee.Log.Infof("Lessee.Lease: %+v", arguments)

	err = lessee.Marketplace.Lease(caller, arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Balance = payment.Balance(caller)
	return nil
}

// Release - end a lease and recover the deposit
func (lessee *Lessee) Release(arguments *LeaseArguments, reply *LeaseReply) error {

	if err := ratelimit.Limit(lessee.Limiter); nil != err {
		return err
	}
	if !lessee.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	caller, err := account.New(arguments.Account)
	if nil != err {
		return err
	}

	lessee.Log.Infof("Lessee.Release: %+v", arguments)

	err = lessee.Marketplace.Release(caller, arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Balance = payment.Balance(caller)
	return nil
}

// Pay - pay one lease instalment
func (lessee *Lessee) Pay(arguments *LeaseArguments, reply *LeaseReply) error {

	if err := ratelimit.Limit(lessee.Limiter); nil != err {
		return err
	}
	if !lessee.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	caller, err := account.New(arguments.Account)
	if nil != err {
		return err
	}

	lessee.Log.Infof("Lessee.Pay: %+v", arguments)

	err = lessee.Marketplace.PayLease(caller, arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Balance = payment.Balance(caller)
	return nil
}

// ---

// AccountArguments - arguments for the read-only requests
type AccountArguments struct {
	Account string `json:"account"`
}

// LeasedReply - results from a leased assets request
type LeasedReply struct {
	Assets []*ledgerrecord.Asset `json:"assets"`
}

// Leased - list the assets leased by the caller
func (lessee *Lessee) Leased(arguments *AccountArguments, reply *LeasedReply) error {

	if err := ratelimit.Limit(lessee.Limiter); nil != err {
		return err
	}

	caller, err := account.New(arguments.Account)
	if nil != err {
		return err
	}

	assets, err := lessee.Marketplace.LeasedAssets(caller)
	if nil != err {
		return err
	}
	reply.Assets = assets
	return nil
}

// DepositReply - results from a deposit request
type DepositReply struct {
	Deposit uint64 `json:"deposit"`
}

// Deposit - total deposits held for the caller's active leases
func (lessee *Lessee) Deposit(arguments *AccountArguments, reply *DepositReply) error {

	if err := ratelimit.Limit(lessee.Limiter); nil != err {
		return err
	}

	caller, err := account.New(arguments.Account)
	if nil != err {
		return err
	}

	deposit, err := lessee.Marketplace.DepositBalance(caller)
	if nil != err {
		return err
	}
	reply.Deposit = deposit
	return nil
}
