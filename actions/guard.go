// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/pda"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/storage"
)

// accountKeys adds the balance and data keys of [addr].
func accountKeys(keys state.Keys, addr codec.Address, balance, data state.Permissions) {
	balanceKey, dataKey := storage.AccountKeys(addr)
	keys.Add(balanceKey, balance)
	keys.Add(dataKey, data)
}

// vaultKeys are the keys of an action that uses an existing vault. The vault
// and the user can both be credited and debited, and the user's balance may
// be created.
func vaultKeys(actor, vaultState, vault codec.Address) state.Keys {
	keys := make(state.Keys, 6)
	accountKeys(keys, actor, state.All, state.Read)
	accountKeys(keys, vaultState, state.Read, state.Read)
	accountKeys(keys, vault, state.All, state.Read)
	return keys
}

// loadVault reads the record at [vaultState] and checks that its bumps
// re-derive both passed addresses from [actor]. Nothing is written before
// these checks pass. A record that belongs to another user fails the same
// way as a forged address, with [ErrDerivationMismatch].
func loadVault(
	ctx context.Context,
	inv *chain.Invocation,
	actor codec.Address,
	vaultState codec.Address,
	vault codec.Address,
) (*VaultState, error) {
	record, err := getVaultState(ctx, inv.State(), inv.Program(), vaultState)
	if err != nil {
		return nil, err
	}
	derivedState, err := deriveVaultState(inv.Program(), actor, record.StateBump)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivationMismatch, err)
	}
	if derivedState != vaultState {
		return nil, fmt.Errorf("%w: vault state %s, derived %s", ErrDerivationMismatch, vaultState, derivedState)
	}
	derivedVault, err := deriveVault(inv.Program(), vaultState, record.VaultBump)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivationMismatch, err)
	}
	if derivedVault != vault {
		return nil, fmt.Errorf("%w: vault %s, derived %s", ErrDerivationMismatch, vault, derivedVault)
	}
	return record, nil
}

// vaultSigner are the seeds the program signs for the vault with.
func vaultSigner(vaultState codec.Address, record *VaultState) pda.Seeds {
	return vaultSeeds(vaultState).WithBump(record.VaultBump)
}
