// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "errors"

var (
	ErrNoTxs          = errors.New("no transactions")
	ErrUnknownOutput  = errors.New("unknown output type")
	ErrResultMismatch = errors.New("result count does not match tx count")
)
