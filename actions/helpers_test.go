// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/stretchr/testify/require"

	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/chain/chaintest"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/genesis"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/storage"
)

var (
	rules = genesis.NewDefaultRules()
	rent  = rules.GetMinimumBalance(VaultStateSpace)

	alice = codec.Address{0xa1}
	bob   = codec.Address{0xb0}
)

func derive(t *testing.T, user codec.Address) *Addresses {
	addrs, err := Derive(user)
	require.NoError(t, err)
	return addrs
}

func newStore(t *testing.T, balances map[codec.Address]uint64) *chaintest.InMemoryStore {
	store := chaintest.NewInMemoryStore()
	for addr, bal := range balances {
		require.NoError(t, storage.SetBalance(context.Background(), store, addr, bal))
	}
	return store
}

// initialize runs Initialize for [user] directly against [store].
func initialize(t *testing.T, store state.Mutable, user codec.Address) *Addresses {
	addrs := derive(t, user)
	inv := chain.NewInvocation(ProgramID, set.Of(user), store)
	_, err := (&Initialize{VaultState: addrs.VaultState, Vault: addrs.Vault}).Execute(context.Background(), rules, inv, user)
	require.NoError(t, err)
	return addrs
}

func balanceOf(t *testing.T, im state.Immutable, addr codec.Address) uint64 {
	bal, err := storage.GetBalance(context.Background(), im, addr)
	require.NoError(t, err)
	return bal
}

// offCurveBump returns the closest bump below [bump] that [derive] accepts.
// It derives a valid address that is not the canonical one.
func offCurveBump(t *testing.T, bump uint8, derive func(uint8) (codec.Address, error)) uint8 {
	for b := int(bump) - 1; b >= 0; b-- {
		if _, err := derive(uint8(b)); err == nil {
			return uint8(b)
		}
	}
	require.FailNow(t, "no off-curve bump", "below %d", bump)
	return 0
}

type tamperedRecord struct {
	name   string
	record *VaultState
}

// tamperedRecords are records for [addrs] whose bumps derive other valid
// addresses.
func tamperedRecords(t *testing.T, addrs *Addresses) []tamperedRecord {
	vaultBump := offCurveBump(t, addrs.VaultBump, func(b uint8) (codec.Address, error) {
		return deriveVault(ProgramID, addrs.VaultState, b)
	})
	stateBump := offCurveBump(t, addrs.StateBump, func(b uint8) (codec.Address, error) {
		return deriveVaultState(ProgramID, addrs.User, b)
	})
	return []tamperedRecord{
		{name: "tampered vault bump", record: &VaultState{VaultBump: vaultBump, StateBump: addrs.StateBump}},
		{name: "tampered state bump", record: &VaultState{VaultBump: addrs.VaultBump, StateBump: stateBump}},
	}
}
