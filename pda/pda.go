// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pda derives program addresses: addresses computed from a list of
// seeds and a program id that are guaranteed not to be valid ed25519 public
// keys, so no private key can ever sign for them. Only the program whose id
// went into the hash can authorize spending from such an address, by asking
// the host to re-derive it from the same seeds.
package pda

import (
	"crypto/sha256"
	"fmt"

	"github.com/oasisprotocol/curve25519-voi/curve"

	"github.com/Not-Sarthak/vault-anchor/codec"
)

const (
	MaxSeeds      = 16
	MaxSeedLength = 32

	// MaxBump is the first bump tried by [FindAddress].
	MaxBump = ^uint8(0)
)

// onCurve is swapped in tests.
var onCurve = OnCurve

// marker is appended to every derivation so that derived addresses live in a
// domain separate from any other sha256 use of the same inputs.
var marker = []byte("ProgramDerivedAddress")

// Seeds is an ordered list of derivation inputs. The namespace tag is
// conventionally the first seed.
type Seeds [][]byte

// NewSeeds copies [parts] into a [Seeds] value.
func NewSeeds(parts ...[]byte) Seeds {
	s := make(Seeds, len(parts))
	for i, p := range parts {
		s[i] = append([]byte(nil), p...)
	}
	return s
}

// WithBump returns a copy of s with [bump] appended as the final seed. The
// result is what a program presents to the host when it signs as the derived
// address.
func (s Seeds) WithBump(bump uint8) Seeds {
	out := make(Seeds, 0, len(s)+1)
	out = append(out, s...)
	return append(out, []byte{bump})
}

// CreateAddress hashes [seeds] and [program] into an address. It fails with
// [ErrOnCurve] if the hash is a valid curve point, since such an address
// could have a private key.
func CreateAddress(seeds Seeds, program codec.Address) (codec.Address, error) {
	if len(seeds) > MaxSeeds {
		return codec.EmptyAddress, fmt.Errorf("%w: %d > %d", ErrTooManySeeds, len(seeds), MaxSeeds)
	}
	h := sha256.New()
	for i, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return codec.EmptyAddress, fmt.Errorf("%w: seed %d has %d bytes", ErrMaxSeedLengthExceeded, i, len(seed))
		}
		_, _ = h.Write(seed)
	}
	_, _ = h.Write(program[:])
	_, _ = h.Write(marker)

	var addr codec.Address
	copy(addr[:], h.Sum(nil))
	if onCurve(addr) {
		return codec.EmptyAddress, ErrOnCurve
	}
	return addr, nil
}

// FindAddress searches bumps from [MaxBump] down to 1 and returns the first
// address that [CreateAddress] accepts along with the bump that produced it.
func FindAddress(seeds Seeds, program codec.Address) (codec.Address, uint8, error) {
	for bump := MaxBump; bump > 0; bump-- {
		addr, err := CreateAddress(seeds.WithBump(bump), program)
		switch err {
		case nil:
			return addr, bump, nil
		case ErrOnCurve:
			continue
		default:
			return codec.EmptyAddress, 0, err
		}
	}
	return codec.EmptyAddress, 0, ErrDerivationExhausted
}

// OnCurve reports whether [addr] decompresses to an ed25519 point.
func OnCurve(addr codec.Address) bool {
	var compressed curve.CompressedEdwardsY
	if _, err := compressed.SetBytes(addr[:]); err != nil {
		return false
	}
	var p curve.EdwardsPoint
	_, err := p.SetCompressedY(&compressed)
	return err == nil
}
