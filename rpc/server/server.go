// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/leasifyd/counter"
	"github.com/bitmark-inc/leasifyd/marketplace"
	"github.com/bitmark-inc/leasifyd/mode"
	"github.com/bitmark-inc/leasifyd/rpc/asset"
	"github.com/bitmark-inc/leasifyd/rpc/lessee"
	"github.com/bitmark-inc/leasifyd/rpc/lessor"
	"github.com/bitmark-inc/leasifyd/rpc/node"
)

// Create - make an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()
	m := marketplace.Get()

	server := rpc.NewServer()

	_ = server.Register(asset.New(log, mode.Is, mode.IsTesting, m))
	_ = server.Register(lessor.New(log, mode.Is, m))
	_ = server.Register(lessee.New(log, mode.Is, m))
	_ = server.Register(node.New(log, start, version, rpcCount, mode.IsTesting, m))

	return server
}
