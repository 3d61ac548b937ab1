// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package system

import "errors"

var (
	ErrMissingSignature  = errors.New("missing required signature")
	ErrFromHasData       = errors.New("transfer source carries data")
	ErrAccountInUse      = errors.New("account already in use")
	ErrAccountNotFound   = errors.New("account not found")
	ErrIllegalOwner      = errors.New("account is not owned by the calling program")
	ErrInvalidDataLength = errors.New("data length does not match account space")
)
