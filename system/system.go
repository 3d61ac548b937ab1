// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package system is the host's native value facility. Every movement of
// native value goes through it, and it is the only place that decides
// whether a debit is authorized.
package system

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/storage"
)

// ProgramID owns every account that holds value but no data.
var ProgramID = codec.EmptyAddress

// Transfer moves [amount] from [from] to [to]. [from] must be in [signers]
// and must not carry data.
func Transfer(
	ctx context.Context,
	mu state.Mutable,
	signers set.Set[codec.Address],
	from codec.Address,
	to codec.Address,
	amount uint64,
) (uint64, uint64, error) {
	if !signers.Contains(from) {
		return 0, 0, fmt.Errorf("%w: %s", ErrMissingSignature, from)
	}
	if _, ok, err := storage.GetAccount(ctx, mu, from); err != nil {
		return 0, 0, err
	} else if ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrFromHasData, from)
	}
	fromBal, err := storage.SubBalance(ctx, mu, from, amount)
	if err != nil {
		return 0, 0, err
	}
	toBal, err := storage.AddBalance(ctx, mu, to, amount)
	if err != nil {
		return 0, 0, err
	}
	return fromBal, toBal, nil
}

// TransferKeys are the keys [Transfer] touches.
func TransferKeys(from, to codec.Address) state.Keys {
	keys := make(state.Keys, 3)
	keys.Add(string(storage.BalanceKey(from)), state.Write)
	keys.Add(string(storage.AccountKey(from)), state.Read)
	keys.Add(string(storage.BalanceKey(to)), state.All)
	return keys
}

// CreateAccount funds [addr] with [lamports] taken from [payer] and
// allocates [space] zeroed bytes owned by [owner]. Both [payer] and [addr]
// must sign.
func CreateAccount(
	ctx context.Context,
	mu state.Mutable,
	signers set.Set[codec.Address],
	payer codec.Address,
	addr codec.Address,
	lamports uint64,
	space uint64,
	owner codec.Address,
) error {
	if !signers.Contains(addr) {
		return fmt.Errorf("%w: %s", ErrMissingSignature, addr)
	}
	if _, ok, err := storage.GetAccount(ctx, mu, addr); err != nil {
		return err
	} else if ok {
		return fmt.Errorf("%w: %s has data", ErrAccountInUse, addr)
	}
	bal, err := storage.GetBalance(ctx, mu, addr)
	if err != nil {
		return err
	}
	if bal > 0 {
		return fmt.Errorf("%w: %s has balance %d", ErrAccountInUse, addr, bal)
	}
	if _, _, err := Transfer(ctx, mu, signers, payer, addr, lamports); err != nil {
		return err
	}
	return storage.SetAccount(ctx, mu, addr, owner, make([]byte, space))
}

// WriteData replaces the data of [addr]. Only the owning [program] may
// write, and the account's space is fixed at creation.
func WriteData(
	ctx context.Context,
	mu state.Mutable,
	program codec.Address,
	addr codec.Address,
	data []byte,
) error {
	acct, ok, err := storage.GetAccount(ctx, mu, addr)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, addr)
	}
	if acct.Owner != program {
		return fmt.Errorf("%w: %s owned by %s", ErrIllegalOwner, addr, acct.Owner)
	}
	if len(data) != len(acct.Data) {
		return fmt.Errorf("%w: got %d want %d", ErrInvalidDataLength, len(data), len(acct.Data))
	}
	return storage.SetAccount(ctx, mu, addr, program, data)
}

// CloseAccount deletes the data account at [addr] and moves its whole
// balance to [dest]. Only the owning [program] may close it. The refunded
// amount is returned.
func CloseAccount(
	ctx context.Context,
	mu state.Mutable,
	program codec.Address,
	addr codec.Address,
	dest codec.Address,
) (uint64, error) {
	acct, ok, err := storage.GetAccount(ctx, mu, addr)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAccountNotFound, addr)
	}
	if acct.Owner != program {
		return 0, fmt.Errorf("%w: %s owned by %s", ErrIllegalOwner, addr, acct.Owner)
	}
	bal, err := storage.GetBalance(ctx, mu, addr)
	if err != nil {
		return 0, err
	}
	if err := storage.SetBalance(ctx, mu, addr, 0); err != nil {
		return 0, err
	}
	if _, err := storage.AddBalance(ctx, mu, dest, bal); err != nil {
		return 0, err
	}
	if err := storage.DeleteAccount(ctx, mu, addr); err != nil {
		return 0, err
	}
	return bal, nil
}
