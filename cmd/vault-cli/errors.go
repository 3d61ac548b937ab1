// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import "errors"

var (
	ErrInvalidArgs  = errors.New("invalid args")
	ErrAborted      = errors.New("aborted")
	ErrTxFailed     = errors.New("transaction failed")
	ErrInvalidInput = errors.New("invalid input")
)
