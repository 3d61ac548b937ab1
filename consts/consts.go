// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen   = 1
	BoolLen   = 1
	Uint8Len  = 1
	IntLen    = 4
	Uint16Len = 2
	Uint64Len = 8
	Int64Len  = 8
	IDLen     = 32

	MaxUint8  = ^uint8(0)
	MaxUint16 = ^uint16(0)
	MaxUint64 = ^uint64(0)

	// NetworkSizeLimit bounds any encoded transaction accepted over rpc.
	NetworkSizeLimit = 2_044_723

	MillisecondsPerSecond = 1000
)
