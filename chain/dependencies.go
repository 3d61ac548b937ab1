// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/state"
)

type Rules interface {
	GetChainID() ids.ID

	// How far in the future (ms) a transaction may expire.
	GetValidityWindow() int64

	// Lamports an account with [space] bytes of data must hold to be
	// exempt from storage rent.
	GetMinimumBalance(space uint64) uint64
}

type Action interface {
	codec.Typed

	// StateKeys is the full set of keys [Execute] may touch, with the
	// permission each needs. Transactions with overlapping keys run one
	// after another, in submission order.
	StateKeys(actor codec.Address) state.Keys

	// Execute runs the action against [inv]. If it returns an error every
	// change it made is discarded.
	Execute(
		ctx context.Context,
		r Rules,
		inv *Invocation,
		actor codec.Address,
	) (codec.Typed, error)

	Marshal(p *codec.Packer)
	Size() int
}
