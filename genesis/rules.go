// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/consts"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var _ chain.Rules = (*Rules)(nil)

type Rules struct {
	// In milliseconds.
	ValidityWindow int64 `json:"validityWindow"`

	// Bytes of bookkeeping charged to every account on top of its data.
	AccountStorageOverhead  uint64 `json:"accountStorageOverhead"`
	LamportsPerByteYear     uint64 `json:"lamportsPerByteYear"`
	ExemptionThresholdYears uint64 `json:"exemptionThresholdYears"`

	chainID ids.ID
}

func NewDefaultRules() *Rules {
	return &Rules{
		ValidityWindow:          60 * consts.MillisecondsPerSecond,
		AccountStorageOverhead:  128,
		LamportsPerByteYear:     3_480,
		ExemptionThresholdYears: 2,
	}
}

func (r *Rules) GetChainID() ids.ID {
	return r.chainID
}

func (r *Rules) GetValidityWindow() int64 {
	return r.ValidityWindow
}

// GetMinimumBalance saturates at the maximum uint64, which no account can
// afford.
func (r *Rules) GetMinimumBalance(space uint64) uint64 {
	bytes, err := smath.Add64(r.AccountStorageOverhead, space)
	if err != nil {
		return consts.MaxUint64
	}
	perYear, err := smath.Mul64(bytes, r.LamportsPerByteYear)
	if err != nil {
		return consts.MaxUint64
	}
	total, err := smath.Mul64(perYear, r.ExemptionThresholdYears)
	if err != nil {
		return consts.MaxUint64
	}
	return total
}
