// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lessor

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

// Lessor - type for the RPC
type Lessor struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Marketplace  marketplace.Marketplace
}

const (
	rateLimitLessor = 200
	rateBurstLessor = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool, m marketplace.Marketplace) *Lessor {
	return &Lessor{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitLessor, rateBurstLessor),
		IsNormalMode: isNormalMode,
		Marketplace:  m,
	}
}

// ---

// TradeArguments - arguments for buy and sell requests
type TradeArguments struct {
	Account string `json:"account"`
	AssetId string `json:"assetId"`
}

// TradeReply - results from buy and sell requests
type TradeReply struct {
	Balance uint64 `json:"balance"`
}

// Buy - purchase an unowned asset
func (lessor *Lessor) Buy(arguments *TradeArguments, reply *TradeReply) error {

	if err := ratelimit.Limit(lessor.Limiter); nil != err {
		return err
	}
	if !lessor.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	caller, err := account.New(arguments.Account)
	if nil != err {
		return err
	}

	lessor.Log.Infof("Lessor.Buy: %+v", arguments)

	err = lessor.Marketplace.Buy(caller, arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Balance = payment.Balance(caller)
	return nil
}

// Sell - return an owned asset to the marketplace
func (lessor *Lessor) Sell(arguments *TradeArguments, reply *TradeReply) error {

	if err := ratelimit.Limit(lessor.Limiter); nil != err {
		return err
	}
	if !lessor.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	caller, err := account.New(arguments.Account)
	if nil != err {
		return err
	}

	lessor.Log.Infof("Lessor.Sell: %+v", arguments)

	err = lessor.Marketplace.Sell(caller, arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Balance = payment.Balance(caller)
	return nil
}

// ---

// WithdrawArguments - arguments for an income withdrawal
type WithdrawArguments struct {
	Account string `json:"account"`
	Amount  uint64 `json:"amount"`
}

// WithdrawReply - results from an income withdrawal
type WithdrawReply struct {
	Remaining uint64 `json:"remaining"`
	Balance   uint64 `json:"balance"`
}

// Withdraw - move accumulated lease income to the settlement balance
func (lessor *Lessor) Withdraw(arguments *WithdrawArguments, reply *WithdrawReply) error {

	if err := ratelimit.Limit(lessor.Limiter); nil != err {
		return err
	}
	if !lessor.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	caller, err := account.New(arguments.Account)
	if nil != err {
		return err
	}

	lessor.Log.Infof("Lessor.Withdraw: %+v", arguments)

	err = lessor.Marketplace.WithdrawIncome(caller, arguments.Amount)
	if nil != err {
		return err
	}

	remaining, err := lessor.Marketplace.AccumulatedIncome(caller)
	if nil != err {
		return err
	}
	reply.Remaining = remaining
	reply.Balance = payment.Balance(caller)
	return nil
}

// ---

// AccountArguments - arguments for the read-only requests
type AccountArguments struct {
	Account string `json:"account"`
}

// OwnedReply - results from an owned assets request
type OwnedReply struct {
	Assets []*ledgerrecord.Asset `json:"assets"`
}

// Owned - list the assets owned by the caller
func (lessor *Lessor) Owned(arguments *AccountArguments, reply *OwnedReply) error {

	if err := ratelimit.Limit(lessor.Limiter); nil != err {
		return err
	}

	caller, err := account.New(arguments.Account)
	if nil != err {
		return err
	}

	assets, err := lessor.Marketplace.OwnedAssets(caller)
	if nil != err {
		return err
	}
	reply.Assets = assets
	return nil
}

// IncomeReply - results from an income request
type IncomeReply struct {
	Income uint64 `json:"income"`
}

// Income - accumulated income not yet withdrawn
func (lessor *Lessor) Income(arguments *AccountArguments, reply *IncomeReply) error {

	if err := ratelimit.Limit(lessor.Limiter); nil != err {
		return err
	}

	caller, err := account.New(arguments.Account)
	if nil != err {
		return err
	}

	income, err := lessor.Marketplace.AccumulatedIncome(caller)
	if nil != err {
		return err
	}
	reply.Income = income
	return nil
}
