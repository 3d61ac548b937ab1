// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// Typed is implemented by every value that is encoded behind a type prefix
// (actions and their results).
type Typed interface {
	GetTypeID() uint8
}
