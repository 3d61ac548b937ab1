// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const AddressLen = 32

// Address is the 32 byte identity of any account on the ledger. User
// addresses are ed25519 public keys, program addresses are derived.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// ToAddress copies [b] into an [Address]. [b] must be exactly [AddressLen]
// bytes.
func ToAddress(b []byte) (Address, error) {
	if len(b) != AddressLen {
		return EmptyAddress, fmt.Errorf("%w: expected %d bytes but got %d", ErrInvalidAddress, AddressLen, len(b))
	}
	return Address(b), nil
}

// ParseAddress decodes the base58 form of an address.
func ParseAddress(s string) (Address, error) {
	b := base58.Decode(s)
	if len(b) == 0 {
		return EmptyAddress, fmt.Errorf("%w: %q is not base58", ErrInvalidAddress, s)
	}
	return ToAddress(b)
}

// MustParseAddress is like [ParseAddress] but panics on malformed input. It
// is only meant for constants.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return base58.Encode(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) Equal(o Address) bool {
	return bytes.Equal(a[:], o[:])
}

// MarshalText returns the base58 representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a base58-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
