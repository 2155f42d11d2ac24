// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/leasifyd/account"
	"github.com/bitmark-inc/leasifyd/counter"
	"github.com/bitmark-inc/leasifyd/fault"
	"github.com/bitmark-inc/leasifyd/marketplace"
	"github.com/bitmark-inc/leasifyd/mode"
	"github.com/bitmark-inc/leasifyd/payment"
	"github.com/bitmark-inc/leasifyd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for the RPC
type Node struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	Start          time.Time
	Version        string
	IsTestingChain func() bool
	Marketplace    marketplace.Marketplace
	counter        *counter.Counter
}

func New(log *logger.L, start time.Time, version string, rpcCount *counter.Counter, isTestingChain func() bool, m marketplace.Marketplace) *Node {
	return &Node{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:          start,
		Version:        version,
		IsTestingChain: isTestingChain,
		Marketplace:    m,
		counter:        rpcCount,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string `json:"chain"`
	Mode    string `json:"mode"`
	Custody uint64 `json:"custody"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Custody = payment.CustodyBalance()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// ---

// FundArguments - arguments for a faucet request
type FundArguments struct {
	Account string `json:"account"`
	Amount  uint64 `json:"amount"`
}

// FundReply - results from a faucet request
type FundReply struct {
	Balance uint64 `json:"balance"`
}

// Fund - add settlement funds to a party
//
// only available on test chains; production funding arrives through
// the operator's settlement process
func (node *Node) Fund(arguments *FundArguments, reply *FundReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}
	if !node.IsTestingChain() {
		return fault.WrongNetworkForPublic
	}

	to, err := account.New(arguments.Account)
	if nil != err {
		return err
	}

	node.Log.Infof("Node.Fund: %+v", arguments)

	err = node.Marketplace.Fund(to, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Balance = payment.Balance(to)
	return nil
}
