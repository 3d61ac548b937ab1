// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain_test

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/crypto/ed25519"
	"github.com/Not-Sarthak/vault-anchor/genesis"
	"github.com/Not-Sarthak/vault-anchor/pda"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/storage"
	"github.com/Not-Sarthak/vault-anchor/system"
	"github.com/Not-Sarthak/vault-anchor/trace"
)

const now = int64(1_000_000)

type processorEnv struct {
	processor *chain.Processor
	rules     chain.Rules
	db        *state.MemoryDB
}

func newProcessorEnv(t *testing.T) *processorEnv {
	g, err := genesis.Load(nil)
	require.NoError(t, err)
	p, err := chain.NewProcessor(trace.Noop("test"), logging.NoLog{}, newRegistry(t), 4, prometheus.NewRegistry())
	require.NoError(t, err)
	return &processorEnv{
		processor: p,
		rules:     g.GetRules(),
		db:        state.NewMemoryDB(),
	}
}

func (e *processorEnv) sign(t *testing.T, priv ed25519.PrivateKey, action chain.Action) *chain.Transaction {
	tx, err := chain.NewTx(
		&chain.Base{Timestamp: now + 10_000, ChainID: e.rules.GetChainID()},
		action,
	).Sign(chain.NewAuthFactory(priv), e.processor.Registry())
	require.NoError(t, err)
	return tx
}

func (e *processorEnv) execute(t *testing.T, txs ...*chain.Transaction) []*chain.Result {
	ctx := context.Background()
	results, ts, err := e.processor.Execute(ctx, e.rules, e.db, now, txs)
	require.NoError(t, err)
	require.NoError(t, e.db.Apply(ctx, ts.ChangedKeys()))
	return results
}

func (e *processorEnv) balance(t *testing.T, addr codec.Address) uint64 {
	bal, err := storage.GetBalance(context.Background(), e.db, addr)
	require.NoError(t, err)
	return bal
}

func TestProcessorSequencesConflicts(t *testing.T) {
	require := require.New(t)
	env := newProcessorEnv(t)
	alice, bob := newKey(t), newKey(t)
	aliceAddr, bobAddr := alice.PublicKey().Address(), bob.PublicKey().Address()
	fund(t, env.db, aliceAddr, 100)

	// alice -> bob -> alice, the second only succeeds after the first.
	results := env.execute(t,
		env.sign(t, alice, &transfer{To: bobAddr, Value: 60}),
		env.sign(t, bob, &transfer{To: aliceAddr, Value: 50}),
		env.sign(t, alice, &transfer{To: bobAddr, Value: 100}),
	)
	require.True(results[0].Success)
	require.Equal(&transferResult{From: 40, To: 60}, results[0].Output)
	require.True(results[1].Success)
	require.False(results[2].Success)
	require.ErrorIs(results[2].Err(), storage.ErrInsufficientFunds)

	require.Equal(uint64(90), env.balance(t, aliceAddr))
	require.Equal(uint64(10), env.balance(t, bobAddr))
}

func TestProcessorFailureHasNoEffect(t *testing.T) {
	require := require.New(t)
	env := newProcessorEnv(t)
	alice := newKey(t)
	aliceAddr := alice.PublicKey().Address()
	fund(t, env.db, aliceAddr, 100)

	results := env.execute(t, env.sign(t, alice, &transfer{To: codec.Address{5}, Value: 30, Fail: true}))
	require.False(results[0].Success)
	require.ErrorIs(results[0].Err(), errAlwaysFails)
	require.Equal(errAlwaysFails.Error(), results[0].Error)

	require.Equal(uint64(100), env.balance(t, aliceAddr))
	require.Zero(env.balance(t, codec.Address{5}))
}

func TestProcessorRejectsInvalid(t *testing.T) {
	require := require.New(t)
	env := newProcessorEnv(t)
	keys := make([]ed25519.PrivateKey, 5)
	txs := make([]*chain.Transaction, 5)
	for i := range keys {
		keys[i] = newKey(t)
		fund(t, env.db, keys[i].PublicKey().Address(), 10)
		txs[i] = env.sign(t, keys[i], &transfer{To: codec.Address{byte(i + 1)}, Value: 1})
	}

	// Swap in a signature from another key.
	forged, err := chain.ParseTx(txs[1].Bytes(), env.processor.Registry())
	require.NoError(err)
	forged.Auth.Signature = txs[0].Auth.Signature
	txs[1] = forged

	expired, err := chain.NewTx(
		&chain.Base{Timestamp: now - 1_000, ChainID: env.rules.GetChainID()},
		&transfer{To: codec.Address{9}, Value: 1},
	).Sign(chain.NewAuthFactory(keys[2]), env.processor.Registry())
	require.NoError(err)
	txs[2] = expired

	results := env.execute(t, txs...)
	require.True(results[0].Success)
	require.ErrorIs(results[1].Err(), chain.ErrInvalidSignature)
	require.ErrorIs(results[2].Err(), chain.ErrTimestampTooLate)
	require.True(results[3].Success)
	require.True(results[4].Success)
	require.Equal(uint64(10), env.balance(t, keys[1].PublicKey().Address()))
	require.Equal(uint64(10), env.balance(t, keys[2].PublicKey().Address()))
}

func TestProcessorEmptyBatch(t *testing.T) {
	env := newProcessorEnv(t)
	_, _, err := env.processor.Execute(context.Background(), env.rules, env.db, now, nil)
	require.ErrorIs(t, err, chain.ErrEmptyBatch)
}

func TestInvocationTransferSigned(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := state.NewMemoryDB()
	mu := state.NewSimpleMutable(db)
	user := codec.Address{1}

	seeds := pda.NewSeeds([]byte("escrow"), user[:])
	escrow, bump, err := pda.FindAddress(seeds, testProgram)
	require.NoError(err)
	require.NoError(storage.SetBalance(ctx, mu, escrow, 50))

	inv := chain.NewInvocation(testProgram, set.Of(user), mu)
	require.False(inv.Signed(escrow))

	// Without the seeds nobody signs for the escrow.
	_, _, err = inv.Transfer(ctx, escrow, user, 10)
	require.ErrorIs(err, system.ErrMissingSignature)

	// Another program deriving from the same seeds gets a different address.
	other := chain.NewInvocation(codec.Address{0xbb}, set.Of(user), mu)
	_, _, err = other.TransferSigned(ctx, escrow, user, 10, seeds.WithBump(bump))
	require.ErrorIs(err, system.ErrMissingSignature)

	escrowBal, userBal, err := inv.TransferSigned(ctx, escrow, user, 10, seeds.WithBump(bump))
	require.NoError(err)
	require.Equal(uint64(40), escrowBal)
	require.Equal(uint64(10), userBal)

	// The extra signer only lives for the one call.
	require.False(inv.Signed(escrow))
}
