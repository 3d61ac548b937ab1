// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Not-Sarthak/vault-anchor/actions"
	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/crypto/ed25519"
	"github.com/Not-Sarthak/vault-anchor/server"
	"github.com/Not-Sarthak/vault-anchor/trace"
	"github.com/Not-Sarthak/vault-anchor/vm"
)

var errStorage = errors.New("storage unavailable")

// newMockServer serves [v] and stubs the accessors every handler touches.
func newMockServer(t *testing.T, ctrl *gomock.Controller) (*MockVM, *JSONRPCClient) {
	require := require.New(t)

	registry, err := actions.NewRegistry()
	require.NoError(err)
	v := NewMockVM(ctrl)
	v.EXPECT().Tracer().Return(trace.Noop("test")).AnyTimes()
	v.EXPECT().Logger().Return(logging.NoLog{}).AnyTimes()
	v.EXPECT().Registry().Return(registry).AnyTimes()
	v.EXPECT().NetworkName().Return("mock").AnyTimes()
	v.EXPECT().ChainID().Return(ids.GenerateTestID()).AnyTimes()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(err)
	s := server.New(logging.NoLog{}, listener, server.NewDefaultHTTPConfig(), nil, false)
	require.NoError(Register(s, v, nil, prometheus.NewRegistry()))

	done := make(chan error, 1)
	go func() {
		done <- s.Dispatch()
	}()
	t.Cleanup(func() {
		require.NoError(s.Shutdown())
		require.NoError(<-done)
	})

	cli, err := NewJSONRPCClient("http://" + listener.Addr().String())
	require.NoError(err)
	return v, cli
}

func TestSubmitTxVMError(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	v, cli := newMockServer(t, ctrl)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	addrs, err := actions.Derive(priv.PublicKey().Address())
	require.NoError(err)
	tx, err := cli.GenerateTx(
		ctx,
		&actions.Initialize{VaultState: addrs.VaultState, Vault: addrs.Vault},
		chain.NewAuthFactory(priv),
	)
	require.NoError(err)

	var submitted []*chain.Transaction
	v.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txs ...*chain.Transaction) ([]*chain.Result, error) {
			submitted = txs
			return nil, vm.ErrClosed
		},
	)
	_, err = cli.SubmitTx(ctx, tx)
	require.ErrorContains(err, vm.ErrClosed.Error())
	require.Len(submitted, 1)
	require.Equal(tx.ID(), submitted[0].ID())
}

func TestSubmitTxResultCount(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	v, cli := newMockServer(t, ctrl)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	addrs, err := actions.Derive(priv.PublicKey().Address())
	require.NoError(err)
	tx, err := cli.GenerateTx(
		ctx,
		&actions.Deposit{VaultState: addrs.VaultState, Vault: addrs.Vault, Amount: 1},
		chain.NewAuthFactory(priv),
	)
	require.NoError(err)

	v.EXPECT().Submit(gomock.Any(), gomock.Any()).Return([]*chain.Result{}, nil)
	_, err = cli.SubmitTx(ctx, tx)
	require.ErrorIs(err, ErrResultMismatch)
}

func TestQueryErrors(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	v, cli := newMockServer(t, ctrl)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	user := priv.PublicKey().Address()

	v.EXPECT().Balance(gomock.Any(), user).Return(uint64(0), errStorage)
	_, err = cli.Balance(ctx, user)
	require.ErrorContains(err, errStorage.Error())

	v.EXPECT().VaultState(gomock.Any(), user).Return(nil, errStorage)
	_, err = cli.VaultState(ctx, user)
	require.ErrorContains(err, errStorage.Error())

	addrs, err := actions.Derive(user)
	require.NoError(err)
	v.EXPECT().Derive(user).Return(addrs, nil)
	got, err := cli.DeriveVault(ctx, user)
	require.NoError(err)
	require.Equal(addrs, got)
}
