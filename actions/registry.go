// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
)

// NewRegistry returns a registry holding the vault program's actions, all
// bound to [ProgramID].
func NewRegistry() (*chain.Registry, error) {
	r := chain.NewRegistry()
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(ProgramID, &Initialize{}, UnmarshalInitialize),
		r.Register(ProgramID, &Deposit{}, UnmarshalDeposit),
		r.Register(ProgramID, &Withdraw{}, UnmarshalWithdraw),
		r.Register(ProgramID, &Close{}, UnmarshalClose),
	)
	return r, errs.Err
}

// NewOutput returns an empty output for actions of [typeID], for decoding
// results received over the wire.
func NewOutput(typeID uint8) (codec.Typed, bool) {
	switch typeID {
	case InitializeID:
		return &InitializeResult{}, true
	case DepositID:
		return &DepositResult{}, true
	case WithdrawID:
		return &WithdrawResult{}, true
	case CloseID:
		return &CloseResult{}, true
	default:
		return nil, false
	}
}
