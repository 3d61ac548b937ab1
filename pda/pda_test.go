// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pda

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/crypto/ed25519"
)

var testProgram = codec.Address{1, 2, 3}

func TestFindAddressDeterministic(t *testing.T) {
	require := require.New(t)
	user := codec.Address{9, 9, 9}
	seeds := NewSeeds([]byte("state"), user[:])

	a1, b1, err := FindAddress(seeds, testProgram)
	require.NoError(err)
	a2, b2, err := FindAddress(seeds, testProgram)
	require.NoError(err)
	require.Equal(a1, a2)
	require.Equal(b1, b2)
	require.False(OnCurve(a1))

	// Presenting the bump re-derives the same address.
	a3, err := CreateAddress(seeds.WithBump(b1), testProgram)
	require.NoError(err)
	require.Equal(a1, a3)
}

func TestFindAddressCanonicalBump(t *testing.T) {
	require := require.New(t)
	seeds := NewSeeds([]byte("vault"), []byte("some-state"))

	addr, bump, err := FindAddress(seeds, testProgram)
	require.NoError(err)

	// Every bump above the canonical one must land on the curve.
	for b := int(MaxBump); b > int(bump); b-- {
		_, err := CreateAddress(seeds.WithBump(uint8(b)), testProgram)
		require.ErrorIs(err, ErrOnCurve)
	}
	got, err := CreateAddress(seeds.WithBump(bump), testProgram)
	require.NoError(err)
	require.Equal(addr, got)
}

func TestNamespacesAndProgramsSeparate(t *testing.T) {
	require := require.New(t)
	id := []byte("identity")

	state, _, err := FindAddress(NewSeeds([]byte("state"), id), testProgram)
	require.NoError(err)
	vault, _, err := FindAddress(NewSeeds([]byte("vault"), id), testProgram)
	require.NoError(err)
	require.NotEqual(state, vault)

	other, _, err := FindAddress(NewSeeds([]byte("state"), id), codec.Address{4})
	require.NoError(err)
	require.NotEqual(state, other)
}

func TestSeedOrderMatters(t *testing.T) {
	require := require.New(t)

	a, _, err := FindAddress(NewSeeds([]byte("ab"), []byte("c")), testProgram)
	require.NoError(err)
	b, _, err := FindAddress(NewSeeds([]byte("a"), []byte("bc")), testProgram)
	require.NoError(err)
	// Seeds are concatenated without separators.
	require.Equal(a, b)

	c, _, err := FindAddress(NewSeeds([]byte("c"), []byte("ab")), testProgram)
	require.NoError(err)
	require.NotEqual(a, c)
}

func TestPublicKeysAreOnCurve(t *testing.T) {
	require := require.New(t)
	for i := 0; i < 8; i++ {
		priv, err := ed25519.GeneratePrivateKey()
		require.NoError(err)
		require.True(OnCurve(priv.PublicKey().Address()))
	}
}

func TestCreateAddressLimits(t *testing.T) {
	require := require.New(t)

	_, err := CreateAddress(NewSeeds(bytes.Repeat([]byte{1}, MaxSeedLength+1)), testProgram)
	require.ErrorIs(err, ErrMaxSeedLengthExceeded)

	seeds := make(Seeds, MaxSeeds+1)
	for i := range seeds {
		seeds[i] = []byte{byte(i)}
	}
	_, err = CreateAddress(seeds, testProgram)
	require.ErrorIs(err, ErrTooManySeeds)

	// The bump is a seed too, so FindAddress accepts at most MaxSeeds-1 inputs.
	_, _, err = FindAddress(seeds[:MaxSeeds], testProgram)
	require.ErrorIs(err, ErrTooManySeeds)
}

func TestFindAddressExhausted(t *testing.T) {
	require := require.New(t)
	onCurve = func(codec.Address) bool { return true }
	defer func() { onCurve = OnCurve }()

	_, _, err := FindAddress(NewSeeds([]byte("state")), testProgram)
	require.ErrorIs(err, ErrDerivationExhausted)
}

func TestWithBumpDoesNotAlias(t *testing.T) {
	require := require.New(t)
	seeds := make(Seeds, 1, 4)
	seeds[0] = []byte("vault")

	a := seeds.WithBump(1)
	b := seeds.WithBump(2)
	require.Equal([]byte{1}, a[1])
	require.Equal([]byte{2}, b[1])
	require.Len(seeds, 1)
}
