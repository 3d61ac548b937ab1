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

var _ chain.Action = (*Withdraw)(nil)

// Withdraw moves [Amount] from the actor's vault back to the actor. The
// program signs for the vault with the bump stored in the state record.
type Withdraw struct {
	VaultState codec.Address `json:"vaultState"`
	Vault      codec.Address `json:"vault"`
	Amount     uint64        `json:"amount"`
}

func (*Withdraw) GetTypeID() uint8 {
	return WithdrawID
}

func (w *Withdraw) StateKeys(actor codec.Address) state.Keys {
	return vaultKeys(actor, w.VaultState, w.Vault)
}

func (w *Withdraw) Execute(
	ctx context.Context,
	_ chain.Rules,
	inv *chain.Invocation,
	actor codec.Address,
) (codec.Typed, error) {
	if w.Amount == 0 {
		return nil, ErrZeroAmount
	}
	record, err := loadVault(ctx, inv, actor, w.VaultState, w.Vault)
	if err != nil {
		return nil, err
	}
	// An overdraft is rejected by the transfer itself.
	vaultBalance, userBalance, err := inv.TransferSigned(
		ctx,
		w.Vault,
		actor,
		w.Amount,
		vaultSigner(w.VaultState, record),
	)
	if err != nil {
		return nil, err
	}
	return &WithdrawResult{
		UserBalance:  userBalance,
		VaultBalance: vaultBalance,
	}, nil
}

func (*Withdraw) Size() int {
	return codec.AddressLen*2 + consts.Uint64Len
}

func (w *Withdraw) Marshal(p *codec.Packer) {
	p.PackAddress(w.VaultState)
	p.PackAddress(w.Vault)
	p.PackLong(w.Amount)
}

func UnmarshalWithdraw(p *codec.Packer) (chain.Action, error) {
	var withdraw Withdraw
	p.UnpackAddress(&withdraw.VaultState)
	p.UnpackAddress(&withdraw.Vault)
	withdraw.Amount = p.UnpackLong(false)
	return &withdraw, p.Err()
}

var _ codec.Typed = (*WithdrawResult)(nil)

type WithdrawResult struct {
	UserBalance  uint64 `json:"userBalance"`
	VaultBalance uint64 `json:"vaultBalance"`
}

func (*WithdrawResult) GetTypeID() uint8 {
	return WithdrawID
}
