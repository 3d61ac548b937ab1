// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package emap

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

type testTx struct {
	id ids.ID
	t  int64
}

func (tx *testTx) ID() ids.ID    { return tx.id }
func (tx *testTx) Expiry() int64 { return tx.t }

func TestEMapAddContains(t *testing.T) {
	require := require.New(t)
	e := NewEMap[*testTx]()
	a := &testTx{id: ids.GenerateTestID(), t: 10}
	b := &testTx{id: ids.GenerateTestID(), t: 10}
	c := &testTx{id: ids.GenerateTestID(), t: 20}

	e.Add([]*testTx{a, c, a})
	require.Equal([]bool{true, false, true}, e.Contains([]*testTx{a, b, c}))
	require.Equal(2, e.Len())

	e.Add([]*testTx{b})
	require.Equal(3, e.Len())
}

func TestEMapSetMin(t *testing.T) {
	require := require.New(t)
	e := NewEMap[*testTx]()
	txs := []*testTx{
		{id: ids.GenerateTestID(), t: 30},
		{id: ids.GenerateTestID(), t: 10},
		{id: ids.GenerateTestID(), t: 20},
		{id: ids.GenerateTestID(), t: 10},
	}
	e.Add(txs)

	require.Empty(e.SetMin(10))
	evicted := e.SetMin(21)
	require.ElementsMatch([]ids.ID{txs[1].id, txs[2].id, txs[3].id}, evicted)
	require.Equal([]bool{true, false, false, false}, e.Contains(txs))

	// Evicted items can be recorded again.
	e.Add(txs[1:2])
	require.True(e.Contains(txs[1:2])[0])
	require.Len(e.SetMin(100), 2)
	require.Zero(e.Len())
}
