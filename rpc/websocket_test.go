// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Not-Sarthak/vault-anchor/actions"
	"github.com/Not-Sarthak/vault-anchor/chain"
)

func TestWebSocketResults(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	uri, priv, ws := newTestServerWithStream(t)

	stream, err := NewWebSocketClient(ctx, uri, DefaultHandshakeTimeout)
	require.NoError(err)
	defer stream.Close()
	require.Eventually(func() bool {
		return ws.Connections() == 1
	}, 5*time.Second, 10*time.Millisecond)

	cli, err := NewJSONRPCClient(uri)
	require.NoError(err)
	addrs, err := actions.Derive(priv.PublicKey().Address())
	require.NoError(err)
	factory := chain.NewAuthFactory(priv)
	initTx, err := cli.GenerateTx(ctx, &actions.Initialize{VaultState: addrs.VaultState, Vault: addrs.Vault}, factory)
	require.NoError(err)
	withdrawTx, err := cli.GenerateTx(ctx, &actions.Withdraw{VaultState: addrs.VaultState, Vault: addrs.Vault, Amount: 1}, factory)
	require.NoError(err)
	_, err = cli.SubmitTx(ctx, initTx, withdrawTx)
	require.NoError(err)

	r, err := stream.ListenResult()
	require.NoError(err)
	require.Equal(initTx.ID(), r.TxID)
	require.True(r.Success)
	_, ok := r.Output.(*actions.InitializeResult)
	require.True(ok)

	// The empty vault cannot pay out.
	r, err = stream.ListenResult()
	require.NoError(err)
	require.Equal(withdrawTx.ID(), r.TxID)
	require.False(r.Success)
	require.Nil(r.Output)

	require.NoError(stream.Close())
	require.Eventually(func() bool {
		return ws.Connections() == 0
	}, 5*time.Second, 10*time.Millisecond)
}
