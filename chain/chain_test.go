// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/consts"
	"github.com/Not-Sarthak/vault-anchor/crypto/ed25519"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/storage"
	"github.com/Not-Sarthak/vault-anchor/system"
)

const transferID uint8 = 7

var (
	testProgram = codec.Address{0xaa}

	errAlwaysFails = errors.New("always fails")
)

// transfer moves value from the actor and optionally fails after doing so.
type transfer struct {
	To    codec.Address
	Value uint64
	Fail  bool
}

type transferResult struct {
	From uint64
	To   uint64
}

func (*transferResult) GetTypeID() uint8 { return transferID }

func (*transfer) GetTypeID() uint8 { return transferID }

func (t *transfer) StateKeys(actor codec.Address) state.Keys {
	return system.TransferKeys(actor, t.To)
}

func (t *transfer) Execute(ctx context.Context, _ chain.Rules, inv *chain.Invocation, actor codec.Address) (codec.Typed, error) {
	from, to, err := inv.Transfer(ctx, actor, t.To, t.Value)
	if err != nil {
		return nil, err
	}
	if t.Fail {
		return nil, errAlwaysFails
	}
	return &transferResult{From: from, To: to}, nil
}

func (t *transfer) Marshal(p *codec.Packer) {
	p.PackAddress(t.To)
	p.PackLong(t.Value)
	if t.Fail {
		p.PackByte(1)
	} else {
		p.PackByte(0)
	}
}

func (*transfer) Size() int {
	return codec.AddressLen + consts.Uint64Len + consts.ByteLen
}

func unmarshalTransfer(p *codec.Packer) (chain.Action, error) {
	var t transfer
	p.UnpackAddress(&t.To)
	t.Value = p.UnpackLong(false)
	t.Fail = p.UnpackByte() == 1
	return &t, p.Err()
}

func newRegistry(t *testing.T) *chain.Registry {
	r := chain.NewRegistry()
	require.NoError(t, r.Register(testProgram, &transfer{}, unmarshalTransfer))
	return r
}

func newKey(t *testing.T) ed25519.PrivateKey {
	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(t, err)
	return priv
}

func fund(t *testing.T, db state.Database, addr codec.Address, bal uint64) {
	mu := state.NewSimpleMutable(db)
	require.NoError(t, storage.SetBalance(context.Background(), mu, addr, bal))
	require.NoError(t, mu.Commit(context.Background()))
}
