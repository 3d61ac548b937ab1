// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/near/borsh-go"

	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/pda"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/storage"
)

const (
	DiscriminatorLen = 8

	// VaultStateSpace is the size of a stored record: the discriminator and
	// two bumps.
	VaultStateSpace = DiscriminatorLen + 1 + 1
)

var vaultStateDiscriminator = func() []byte {
	h := sha256.Sum256([]byte("account:VaultState"))
	return h[:DiscriminatorLen]
}()

// VaultState binds a user to their vault. Both bumps are fixed when the
// record is created and never rewritten.
type VaultState struct {
	VaultBump uint8 `json:"vaultBump"`
	StateBump uint8 `json:"stateBump"`
}

func (v *VaultState) Marshal() ([]byte, error) {
	body, err := borsh.Serialize(*v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, VaultStateSpace)
	out = append(out, vaultStateDiscriminator...)
	return append(out, body...), nil
}

func UnmarshalVaultState(b []byte) (*VaultState, error) {
	if len(b) != VaultStateSpace {
		return nil, fmt.Errorf("%w: expected %d bytes but got %d", ErrInvalidAccountData, VaultStateSpace, len(b))
	}
	if !bytes.Equal(b[:DiscriminatorLen], vaultStateDiscriminator) {
		return nil, fmt.Errorf("%w: wrong discriminator", ErrInvalidAccountData)
	}
	var v VaultState
	if err := borsh.Deserialize(&v, b[DiscriminatorLen:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAccountData, err)
	}
	return &v, nil
}

func stateSeeds(user codec.Address) pda.Seeds {
	return pda.NewSeeds(StateSeed, user[:])
}

func vaultSeeds(vaultState codec.Address) pda.Seeds {
	return pda.NewSeeds(VaultSeed, vaultState[:])
}

// FindVaultState returns the canonical state record address of [user].
func FindVaultState(user codec.Address) (codec.Address, uint8, error) {
	return findVaultState(ProgramID, user)
}

// FindVault returns the canonical vault address of the record at
// [vaultState].
func FindVault(vaultState codec.Address) (codec.Address, uint8, error) {
	return findVault(ProgramID, vaultState)
}

func findVaultState(program, user codec.Address) (codec.Address, uint8, error) {
	return pda.FindAddress(stateSeeds(user), program)
}

func findVault(program, vaultState codec.Address) (codec.Address, uint8, error) {
	return pda.FindAddress(vaultSeeds(vaultState), program)
}

func deriveVaultState(program, user codec.Address, bump uint8) (codec.Address, error) {
	return pda.CreateAddress(stateSeeds(user).WithBump(bump), program)
}

func deriveVault(program, vaultState codec.Address, bump uint8) (codec.Address, error) {
	return pda.CreateAddress(vaultSeeds(vaultState).WithBump(bump), program)
}

// Addresses are both derived addresses of a user and the bumps that
// produce them.
type Addresses struct {
	User       codec.Address `json:"user"`
	VaultState codec.Address `json:"vaultState"`
	StateBump  uint8         `json:"stateBump"`
	Vault      codec.Address `json:"vault"`
	VaultBump  uint8         `json:"vaultBump"`
}

// Derive finds the state record and vault addresses of [user]. It needs no
// ledger access, so clients and the program always agree on them.
func Derive(user codec.Address) (*Addresses, error) {
	vaultState, stateBump, err := FindVaultState(user)
	if err != nil {
		return nil, err
	}
	vault, vaultBump, err := FindVault(vaultState)
	if err != nil {
		return nil, err
	}
	return &Addresses{
		User:       user,
		VaultState: vaultState,
		StateBump:  stateBump,
		Vault:      vault,
		VaultBump:  vaultBump,
	}, nil
}

// GetVaultState reads the record stored at [addr].
func GetVaultState(ctx context.Context, im state.Immutable, addr codec.Address) (*VaultState, error) {
	return getVaultState(ctx, im, ProgramID, addr)
}

func getVaultState(
	ctx context.Context,
	im state.Immutable,
	program codec.Address,
	addr codec.Address,
) (*VaultState, error) {
	acct, ok, err := storage.GetAccount(ctx, im, addr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, addr)
	}
	if acct.Owner != program {
		return nil, fmt.Errorf("%w: %s owned by %s", ErrInvalidAccountOwner, addr, acct.Owner)
	}
	return UnmarshalVaultState(acct.Data)
}
