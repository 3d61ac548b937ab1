// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrTooManyItems   = errors.New("too many items")
	ErrDuplicateItem  = errors.New("duplicate item")
	ErrUnknownType    = errors.New("unknown type")
)
