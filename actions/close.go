// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/storage"
)

var _ chain.Action = (*Close)(nil)

// Close sweeps the whole vault to the actor and deletes the state record,
// refunding its rent to the actor.
type Close struct {
	VaultState codec.Address `json:"vaultState"`
	Vault      codec.Address `json:"vault"`
}

func (*Close) GetTypeID() uint8 {
	return CloseID
}

func (c *Close) StateKeys(actor codec.Address) state.Keys {
	keys := make(state.Keys, 6)
	accountKeys(keys, actor, state.All, state.Read)
	accountKeys(keys, c.VaultState, state.Write, state.Write)
	accountKeys(keys, c.Vault, state.Write, state.Read)
	return keys
}

func (c *Close) Execute(
	ctx context.Context,
	_ chain.Rules,
	inv *chain.Invocation,
	actor codec.Address,
) (codec.Typed, error) {
	record, err := loadVault(ctx, inv, actor, c.VaultState, c.Vault)
	if err != nil {
		return nil, err
	}
	swept, err := storage.GetBalance(ctx, inv.State(), c.Vault)
	if err != nil {
		return nil, err
	}
	if swept > 0 {
		if _, _, err := inv.TransferSigned(ctx, c.Vault, actor, swept, vaultSigner(c.VaultState, record)); err != nil {
			return nil, err
		}
	}
	refunded, err := inv.CloseAccount(ctx, c.VaultState, actor)
	if err != nil {
		return nil, err
	}
	userBalance, err := storage.GetBalance(ctx, inv.State(), actor)
	if err != nil {
		return nil, err
	}
	return &CloseResult{
		Swept:       swept,
		Refunded:    refunded,
		UserBalance: userBalance,
	}, nil
}

func (*Close) Size() int {
	return codec.AddressLen * 2
}

func (c *Close) Marshal(p *codec.Packer) {
	p.PackAddress(c.VaultState)
	p.PackAddress(c.Vault)
}

func UnmarshalClose(p *codec.Packer) (chain.Action, error) {
	var closeAction Close
	p.UnpackAddress(&closeAction.VaultState)
	p.UnpackAddress(&closeAction.Vault)
	return &closeAction, p.Err()
}

var _ codec.Typed = (*CloseResult)(nil)

type CloseResult struct {
	// Vault balance moved to the user.
	Swept uint64 `json:"swept"`
	// Rent returned from the deleted state record.
	Refunded    uint64 `json:"refunded"`
	UserBalance uint64 `json:"userBalance"`
}

func (*CloseResult) GetTypeID() uint8 {
	return CloseID
}
