// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/consts"
)

// BaseSize is the encoded size of [Base]: an int64 expiry and a chain id.
const BaseSize = consts.Int64Len + consts.IDLen

// Base is the part of every vault transaction that binds it to one ledger
// and one validity window. The signature covers it along with the action.
type Base struct {
	// Timestamp is when the transaction expires, in milliseconds and on a
	// whole second. It is also how long the host remembers the tx ID.
	Timestamp int64 `json:"timestamp"`

	// ChainID is the ledger the transaction was signed for.
	ChainID ids.ID `json:"chainId"`
}

// Verify rejects a transaction the host at time [now] must not run: one
// that has expired, one too far in the future, or one signed for another
// ledger.
func (b *Base) Verify(chainID ids.ID, r Rules, now int64) error {
	switch {
	case b.Timestamp%consts.MillisecondsPerSecond != 0:
		return fmt.Errorf("%w: timestamp=%d", ErrMisalignedTime, b.Timestamp)
	case b.Timestamp < now:
		return fmt.Errorf("%w: expired at %d, now %d", ErrTimestampTooLate, b.Timestamp, now)
	case b.Timestamp > now+r.GetValidityWindow():
		return fmt.Errorf("%w: expires at %d, window ends %d", ErrTimestampTooEarly, b.Timestamp, now+r.GetValidityWindow())
	case b.ChainID != chainID:
		return fmt.Errorf("%w: signed for %s", ErrInvalidChainID, b.ChainID)
	default:
		return nil
	}
}

func (*Base) Size() int {
	return BaseSize
}

func (b *Base) Marshal(p *codec.Packer) {
	p.PackInt64(b.Timestamp)
	p.PackID(b.ChainID)
}

// UnmarshalBase reads a [Base], rejecting misaligned expiries before the
// rest of the transaction is parsed.
func UnmarshalBase(p *codec.Packer) (*Base, error) {
	base := &Base{Timestamp: p.UnpackInt64()}
	if base.Timestamp%consts.MillisecondsPerSecond != 0 {
		return nil, fmt.Errorf("%w: timestamp=%d", ErrMisalignedTime, base.Timestamp)
	}
	p.UnpackID(&base.ChainID)
	return base, p.Err()
}
