// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "github.com/Not-Sarthak/vault-anchor/codec"

const (
	InitializeID uint8 = 0
	DepositID    uint8 = 1
	WithdrawID   uint8 = 2
	CloseID      uint8 = 3
)

// ProgramID is the address the vault program executes as. Every state
// record and vault address is derived from it.
var ProgramID = codec.MustParseAddress("6zqYkSP3apLHzqrZshzcry61Cz9i89DebuBMcNJxBQEi")

// Seed tags. Changing either, or the order seeds are concatenated in,
// moves every existing vault.
var (
	StateSeed = []byte("state")
	VaultSeed = []byte("vault")
)
