// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"go.uber.org/zap"

	"github.com/Not-Sarthak/vault-anchor/actions"
	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/vm"
)

type JSONRPCServer struct {
	vm VM
}

func NewJSONRPCServer(vm VM) *JSONRPCServer {
	return &JSONRPCServer{vm}
}

type PingReply struct {
	Success bool `json:"success"`
}

func (j *JSONRPCServer) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	j.vm.Logger().Info("ping")
	reply.Success = true
	return nil
}

type NetworkReply struct {
	NetworkName string        `json:"networkName"`
	ChainID     ids.ID        `json:"chainId"`
	ProgramID   codec.Address `json:"programId"`
}

func (j *JSONRPCServer) Network(_ *http.Request, _ *struct{}, reply *NetworkReply) (err error) {
	reply.NetworkName = j.vm.NetworkName()
	reply.ChainID = j.vm.ChainID()
	reply.ProgramID = actions.ProgramID
	return nil
}

type SubmitTxArgs struct {
	Txs [][]byte `json:"txs"`
}

// TxResult is a [chain.Result] with its output left encoded, to be decoded
// by the action's type.
type TxResult struct {
	TxID       ids.ID          `json:"txId"`
	Success    bool            `json:"success"`
	Error      string          `json:"error,omitempty"`
	OutputType uint8           `json:"outputType"`
	Output     json.RawMessage `json:"output,omitempty"`
}

func newTxResult(r *chain.Result) (*TxResult, error) {
	out := &TxResult{
		TxID:    r.TxID,
		Success: r.Success,
		Error:   r.Error,
	}
	if r.Output != nil {
		b, err := json.Marshal(r.Output)
		if err != nil {
			return nil, err
		}
		out.OutputType = r.Output.GetTypeID()
		out.Output = b
	}
	return out, nil
}

// Result decodes the output of r with the vault program's output types.
func (r *TxResult) Result() (*chain.Result, error) {
	result := &chain.Result{
		TxID:    r.TxID,
		Success: r.Success,
		Error:   r.Error,
	}
	if len(r.Output) == 0 {
		return result, nil
	}
	output, ok := actions.NewOutput(r.OutputType)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOutput, r.OutputType)
	}
	if err := json.Unmarshal(r.Output, output); err != nil {
		return nil, err
	}
	result.Output = output
	return result, nil
}

type SubmitTxReply struct {
	Results []*TxResult `json:"results"`
}

// SubmitTx executes the signed transactions in [args] as one batch. Parse
// errors reject the whole request. Execution failures are reported per
// transaction.
func (j *JSONRPCServer) SubmitTx(
	req *http.Request,
	args *SubmitTxArgs,
	reply *SubmitTxReply,
) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "JSONRPCServer.SubmitTx")
	defer span.End()

	if len(args.Txs) == 0 {
		return ErrNoTxs
	}
	txs := make([]*chain.Transaction, len(args.Txs))
	for i, b := range args.Txs {
		tx, err := chain.ParseTx(b, j.vm.Registry())
		if err != nil {
			return fmt.Errorf("%w: unable to parse tx %d", err, i)
		}
		txs[i] = tx
	}
	results, err := j.vm.Submit(ctx, txs...)
	if err != nil {
		return err
	}

	reply.Results = make([]*TxResult, len(results))
	for i, r := range results {
		out, err := newTxResult(r)
		if err != nil {
			return err
		}
		reply.Results[i] = out
	}
	j.vm.Logger().Debug("submitted txs",
		zap.Int("count", len(txs)),
	)
	return nil
}

type BalanceArgs struct {
	Address codec.Address `json:"address"`
}

type BalanceReply struct {
	Amount uint64 `json:"amount"`
}

func (j *JSONRPCServer) Balance(req *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "JSONRPCServer.Balance")
	defer span.End()

	balance, err := j.vm.Balance(ctx, args.Address)
	if err != nil {
		return err
	}
	reply.Amount = balance
	return nil
}

type UserArgs struct {
	User codec.Address `json:"user"`
}

type VaultStateReply struct {
	Info *vm.VaultInfo `json:"info"`
}

func (j *JSONRPCServer) VaultState(req *http.Request, args *UserArgs, reply *VaultStateReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "JSONRPCServer.VaultState")
	defer span.End()

	info, err := j.vm.VaultState(ctx, args.User)
	if err != nil {
		return err
	}
	reply.Info = info
	return nil
}

type DeriveVaultReply struct {
	Addresses *actions.Addresses `json:"addresses"`
}

// DeriveVault computes a user's addresses without reading the ledger.
func (j *JSONRPCServer) DeriveVault(_ *http.Request, args *UserArgs, reply *DeriveVaultReply) error {
	addrs, err := j.vm.Derive(args.User)
	if err != nil {
		return err
	}
	reply.Addresses = addrs
	return nil
}
