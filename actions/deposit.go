// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/consts"
	"github.com/Not-Sarthak/vault-anchor/state"
)

var _ chain.Action = (*Deposit)(nil)

// Deposit moves [Amount] from the actor into their vault.
type Deposit struct {
	VaultState codec.Address `json:"vaultState"`
	Vault      codec.Address `json:"vault"`
	Amount     uint64        `json:"amount"`
}

func (*Deposit) GetTypeID() uint8 {
	return DepositID
}

func (d *Deposit) StateKeys(actor codec.Address) state.Keys {
	return vaultKeys(actor, d.VaultState, d.Vault)
}

func (d *Deposit) Execute(
	ctx context.Context,
	_ chain.Rules,
	inv *chain.Invocation,
	actor codec.Address,
) (codec.Typed, error) {
	if d.Amount == 0 {
		return nil, ErrZeroAmount
	}
	if _, err := loadVault(ctx, inv, actor, d.VaultState, d.Vault); err != nil {
		return nil, err
	}
	userBalance, vaultBalance, err := inv.Transfer(ctx, actor, d.Vault, d.Amount)
	if err != nil {
		return nil, err
	}
	return &DepositResult{
		UserBalance:  userBalance,
		VaultBalance: vaultBalance,
	}, nil
}

func (*Deposit) Size() int {
	return codec.AddressLen*2 + consts.Uint64Len
}

func (d *Deposit) Marshal(p *codec.Packer) {
	p.PackAddress(d.VaultState)
	p.PackAddress(d.Vault)
	p.PackLong(d.Amount)
}

func UnmarshalDeposit(p *codec.Packer) (chain.Action, error) {
	var deposit Deposit
	p.UnpackAddress(&deposit.VaultState)
	p.UnpackAddress(&deposit.Vault)
	deposit.Amount = p.UnpackLong(false)
	return &deposit, p.Err()
}

var _ codec.Typed = (*DepositResult)(nil)

// DepositResult holds both balances after the transfer.
type DepositResult struct {
	UserBalance  uint64 `json:"userBalance"`
	VaultBalance uint64 `json:"vaultBalance"`
}

func (*DepositResult) GetTypeID() uint8 {
	return DepositID
}
