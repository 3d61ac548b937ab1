// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/storage"
	"github.com/Not-Sarthak/vault-anchor/system"
)

var _ chain.Action = (*Initialize)(nil)

// Initialize creates the actor's state record, paid for by the actor.
type Initialize struct {
	VaultState codec.Address `json:"vaultState"`

	// Vault is only checked against its derivation. It holds nothing until
	// the first deposit.
	Vault codec.Address `json:"vault"`
}

func (*Initialize) GetTypeID() uint8 {
	return InitializeID
}

func (i *Initialize) StateKeys(actor codec.Address) state.Keys {
	keys := make(state.Keys, 4)
	accountKeys(keys, actor, state.Write, state.Read)
	accountKeys(keys, i.VaultState, state.All, state.All)
	return keys
}

func (i *Initialize) Execute(
	ctx context.Context,
	r chain.Rules,
	inv *chain.Invocation,
	actor codec.Address,
) (codec.Typed, error) {
	vaultState, stateBump, err := findVaultState(inv.Program(), actor)
	if err != nil {
		return nil, err
	}
	if vaultState != i.VaultState {
		return nil, fmt.Errorf("%w: vault state %s, derived %s", ErrDerivationMismatch, i.VaultState, vaultState)
	}
	vault, vaultBump, err := findVault(inv.Program(), vaultState)
	if err != nil {
		return nil, err
	}
	if vault != i.Vault {
		return nil, fmt.Errorf("%w: vault %s, derived %s", ErrDerivationMismatch, i.Vault, vault)
	}

	if _, ok, err := storage.GetAccount(ctx, inv.State(), vaultState); err != nil {
		return nil, err
	} else if ok {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, vaultState)
	}

	rent := r.GetMinimumBalance(VaultStateSpace)
	err = inv.CreateAccountSigned(ctx, actor, vaultState, rent, VaultStateSpace, stateSeeds(actor).WithBump(stateBump))
	if errors.Is(err, system.ErrAccountInUse) {
		return nil, fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}
	if err != nil {
		return nil, err
	}
	record := &VaultState{VaultBump: vaultBump, StateBump: stateBump}
	data, err := record.Marshal()
	if err != nil {
		return nil, err
	}
	if err := inv.WriteData(ctx, vaultState, data); err != nil {
		return nil, err
	}
	return &InitializeResult{
		StateBump: stateBump,
		VaultBump: vaultBump,
		Rent:      rent,
	}, nil
}

func (*Initialize) Size() int {
	return codec.AddressLen * 2
}

func (i *Initialize) Marshal(p *codec.Packer) {
	p.PackAddress(i.VaultState)
	p.PackAddress(i.Vault)
}

func UnmarshalInitialize(p *codec.Packer) (chain.Action, error) {
	var init Initialize
	p.UnpackAddress(&init.VaultState)
	p.UnpackAddress(&init.Vault)
	return &init, p.Err()
}

var _ codec.Typed = (*InitializeResult)(nil)

type InitializeResult struct {
	StateBump uint8  `json:"stateBump"`
	VaultBump uint8  `json:"vaultBump"`
	Rent      uint64 `json:"rent"`
}

func (*InitializeResult) GetTypeID() uint8 {
	return InitializeID
}
