// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/Not-Sarthak/vault-anchor/actions"
	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/vm"
)

//go:generate go run go.uber.org/mock/mockgen@v0.4.0 -package=rpc -destination=mock_vm_test.go . VM

type VM interface {
	NetworkName() string
	ChainID() ids.ID
	Registry() *chain.Registry
	Tracer() trace.Tracer
	Logger() logging.Logger

	Submit(ctx context.Context, txs ...*chain.Transaction) ([]*chain.Result, error)
	Balance(ctx context.Context, addr codec.Address) (uint64, error)
	Derive(user codec.Address) (*actions.Addresses, error)
	VaultState(ctx context.Context, user codec.Address) (*vm.VaultInfo, error)
}
