// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	ErrDerivationMismatch  = errors.New("account does not match derived address")
	ErrAlreadyExists       = errors.New("vault state already exists")
	ErrZeroAmount          = errors.New("amount is zero")
	ErrAccountNotFound     = errors.New("vault state not found")
	ErrInvalidAccountOwner = errors.New("vault state not owned by program")
	ErrInvalidAccountData  = errors.New("invalid vault state data")
)
