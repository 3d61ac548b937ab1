// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"

	"github.com/Not-Sarthak/vault-anchor/actions"
	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/consts"
	"github.com/Not-Sarthak/vault-anchor/vm"
)

// DefaultExpiry is how far ahead of now [JSONRPCClient.GenerateTx] sets a
// transaction's expiry.
const DefaultExpiry = 30 * time.Second

type JSONRPCClient struct {
	requester rpc.EndpointRequester
	registry  *chain.Registry

	networkName string
	chainID     ids.ID
}

func NewJSONRPCClient(uri string) (*JSONRPCClient, error) {
	registry, err := actions.NewRegistry()
	if err != nil {
		return nil, err
	}
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	return &JSONRPCClient{
		requester: rpc.NewEndpointRequester(uri),
		registry:  registry,
	}, nil
}

func method(name string) string {
	return Name + "." + name
}

func (cli *JSONRPCClient) Ping(ctx context.Context) (bool, error) {
	resp := new(PingReply)
	err := cli.requester.SendRequest(ctx,
		method("ping"),
		struct{}{},
		resp,
	)
	return resp.Success, err
}

// Network returns the network name and chain id. Both are cached after the
// first call.
func (cli *JSONRPCClient) Network(ctx context.Context) (string, ids.ID, error) {
	if cli.chainID != ids.Empty {
		return cli.networkName, cli.chainID, nil
	}

	resp := new(NetworkReply)
	err := cli.requester.SendRequest(
		ctx,
		method("network"),
		struct{}{},
		resp,
	)
	if err != nil {
		return "", ids.Empty, err
	}
	cli.networkName = resp.NetworkName
	cli.chainID = resp.ChainID
	return resp.NetworkName, resp.ChainID, nil
}

// SubmitTx sends [txs] as one batch and decodes each result's output.
func (cli *JSONRPCClient) SubmitTx(ctx context.Context, txs ...*chain.Transaction) ([]*chain.Result, error) {
	if len(txs) == 0 {
		return nil, ErrNoTxs
	}
	args := &SubmitTxArgs{Txs: make([][]byte, len(txs))}
	for i, tx := range txs {
		args.Txs[i] = tx.Bytes()
	}
	resp := new(SubmitTxReply)
	if err := cli.requester.SendRequest(
		ctx,
		method("submitTx"),
		args,
		resp,
	); err != nil {
		return nil, err
	}
	if len(resp.Results) != len(txs) {
		return nil, fmt.Errorf("%w: %d != %d", ErrResultMismatch, len(resp.Results), len(txs))
	}

	results := make([]*chain.Result, len(resp.Results))
	for i, r := range resp.Results {
		result, err := r.Result()
		if err != nil {
			return nil, err
		}
		results[i] = result
	}
	return results, nil
}

func (cli *JSONRPCClient) Balance(ctx context.Context, addr codec.Address) (uint64, error) {
	resp := new(BalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		method("balance"),
		&BalanceArgs{Address: addr},
		resp,
	)
	return resp.Amount, err
}

func (cli *JSONRPCClient) VaultState(ctx context.Context, user codec.Address) (*vm.VaultInfo, error) {
	resp := new(VaultStateReply)
	err := cli.requester.SendRequest(
		ctx,
		method("vaultState"),
		&UserArgs{User: user},
		resp,
	)
	return resp.Info, err
}

func (cli *JSONRPCClient) DeriveVault(ctx context.Context, user codec.Address) (*actions.Addresses, error) {
	resp := new(DeriveVaultReply)
	err := cli.requester.SendRequest(
		ctx,
		method("deriveVault"),
		&UserArgs{User: user},
		resp,
	)
	return resp.Addresses, err
}

// GenerateTx signs [action] with [factory] for this client's chain. The
// expiry is [DefaultExpiry] from now, rounded down to a whole second.
func (cli *JSONRPCClient) GenerateTx(
	ctx context.Context,
	action chain.Action,
	factory *chain.AuthFactory,
) (*chain.Transaction, error) {
	_, chainID, err := cli.Network(ctx)
	if err != nil {
		return nil, err
	}
	expiry := time.Now().Add(DefaultExpiry).UnixMilli()
	expiry -= expiry % consts.MillisecondsPerSecond
	return chain.NewTx(
		&chain.Base{Timestamp: expiry, ChainID: chainID},
		action,
	).Sign(factory, cli.registry)
}
