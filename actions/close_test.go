// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Not-Sarthak/vault-anchor/chain/chaintest"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/storage"
)

func TestClose(t *testing.T) {
	addrs := derive(t, alice)
	bobAddrs := derive(t, bob)

	withVault := func(vaultBalance uint64) *chaintest.InMemoryStore {
		store := newStore(t, map[codec.Address]uint64{alice: rent + 5, bob: rent})
		initialize(t, store, alice)
		initialize(t, store, bob)
		if vaultBalance > 0 {
			require.NoError(t, storage.SetBalance(context.Background(), store, addrs.Vault, vaultBalance))
		}
		return store
	}
	deleted := func(ctx context.Context, t *testing.T, mu state.Mutable) {
		require := require.New(t)
		_, err := GetVaultState(ctx, mu, addrs.VaultState)
		require.ErrorIs(err, ErrAccountNotFound)
		require.Zero(balanceOf(t, mu, addrs.VaultState))
		require.Zero(balanceOf(t, mu, addrs.Vault))
	}

	tests := []chaintest.ActionTest{
		{
			Name:    "sweeps vault and refunds rent",
			Actor:   alice,
			Program: ProgramID,
			Rules:   rules,
			Action:  &Close{VaultState: addrs.VaultState, Vault: addrs.Vault},
			State:   withVault(700),
			ExpectedOutput: &CloseResult{
				Swept:       700,
				Refunded:    rent,
				UserBalance: 5 + 700 + rent,
			},
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				deleted(ctx, t, mu)
				require.Equal(t, 5+700+rent, balanceOf(t, mu, alice))
			},
		},
		{
			Name:    "empty vault",
			Actor:   alice,
			Program: ProgramID,
			Rules:   rules,
			Action:  &Close{VaultState: addrs.VaultState, Vault: addrs.Vault},
			State:   withVault(0),
			ExpectedOutput: &CloseResult{
				Refunded:    rent,
				UserBalance: 5 + rent,
			},
			Assertion: deleted,
		},
		{
			Name:        "another user's vault",
			Actor:       alice,
			Program:     ProgramID,
			Rules:       rules,
			Action:      &Close{VaultState: bobAddrs.VaultState, Vault: bobAddrs.Vault},
			State:       withVault(700),
			ExpectedErr: ErrDerivationMismatch,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				_, err := GetVaultState(ctx, mu, bobAddrs.VaultState)
				require.NoError(t, err)
			},
		},
		{
			Name:        "not initialized",
			Actor:       alice,
			Program:     ProgramID,
			Rules:       rules,
			Action:      &Close{VaultState: addrs.VaultState, Vault: addrs.Vault},
			State:       newStore(t, map[codec.Address]uint64{alice: 1}),
			ExpectedErr: ErrAccountNotFound,
		},
	}

	for _, tr := range tamperedRecords(t, addrs) {
		store := withVault(700)
		withRecord(t, store, addrs, tr.record)
		tests = append(tests, chaintest.ActionTest{
			Name:        tr.name,
			Actor:       alice,
			Program:     ProgramID,
			Rules:       rules,
			Action:      &Close{VaultState: addrs.VaultState, Vault: addrs.Vault},
			State:       store,
			ExpectedErr: ErrDerivationMismatch,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				require.Equal(uint64(5), balanceOf(t, mu, alice))
				require.Equal(uint64(700), balanceOf(t, mu, addrs.Vault))
				require.Equal(rent, balanceOf(t, mu, addrs.VaultState))
				_, err := GetVaultState(ctx, mu, addrs.VaultState)
				require.NoError(err)
			},
		})
	}

	ctx := context.Background()
	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}

func TestCloseThenReinitialize(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	addrs := derive(t, alice)
	store := newStore(t, map[codec.Address]uint64{alice: rent})
	initialize(t, store, alice)

	closeTest := chaintest.ActionTest{
		Name:           "close",
		Actor:          alice,
		Program:        ProgramID,
		Rules:          rules,
		Action:         &Close{VaultState: addrs.VaultState, Vault: addrs.Vault},
		State:          store,
		ExpectedOutput: &CloseResult{Refunded: rent, UserBalance: rent},
	}
	closeTest.Run(ctx, t)

	withdrawTest := chaintest.ActionTest{
		Name:        "withdraw after close",
		Actor:       alice,
		Program:     ProgramID,
		Rules:       rules,
		Action:      &Withdraw{VaultState: addrs.VaultState, Vault: addrs.Vault, Amount: 1},
		State:       store,
		ExpectedErr: ErrAccountNotFound,
	}
	withdrawTest.Run(ctx, t)

	// A fresh record lands at the same addresses with the same bumps.
	again := initialize(t, store, alice)
	require.Equal(addrs, again)
	record, err := GetVaultState(ctx, store, addrs.VaultState)
	require.NoError(err)
	require.Equal(&VaultState{VaultBump: addrs.VaultBump, StateBump: addrs.StateBump}, record)
}

func TestActionMarshal(t *testing.T) {
	require := require.New(t)
	registry, err := NewRegistry()
	require.NoError(err)
	addrs := derive(t, alice)

	for _, action := range []interface {
		GetTypeID() uint8
		Size() int
		Marshal(*codec.Packer)
	}{
		&Initialize{VaultState: addrs.VaultState, Vault: addrs.Vault},
		&Deposit{VaultState: addrs.VaultState, Vault: addrs.Vault, Amount: 5},
		&Withdraw{VaultState: addrs.VaultState, Vault: addrs.Vault, Amount: 6},
		&Close{VaultState: addrs.VaultState, Vault: addrs.Vault},
	} {
		p := codec.NewWriter(action.Size()+1, 1024)
		p.PackByte(action.GetTypeID())
		action.Marshal(p)
		require.NoError(p.Err())
		require.Len(p.Bytes(), action.Size()+1)

		parsed, err := registry.UnmarshalAction(codec.NewReader(p.Bytes(), 1024))
		require.NoError(err)
		require.Equal(action, parsed)

		program, err := registry.Program(parsed)
		require.NoError(err)
		require.Equal(ProgramID, program)
	}
}
