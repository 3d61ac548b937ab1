// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/Not-Sarthak/vault-anchor/codec"
)

// Result is the outcome of one transaction. A failed transaction has no
// effect on state.
type Result struct {
	TxID    ids.ID      `json:"txId"`
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Output  codec.Typed `json:"output,omitempty"`

	err error
}

// NewFailure is the result of a transaction that failed with [err].
func NewFailure(txID ids.ID, err error) *Result {
	return &Result{
		TxID:  txID,
		Error: err.Error(),
		err:   err,
	}
}

// Err returns the error the transaction failed with, so callers in the same
// process can match it with errors.Is.
func (r *Result) Err() error {
	return r.err
}
