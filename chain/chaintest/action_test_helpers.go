// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/stretchr/testify/require"

	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/tstate"
)

// ActionTest is a single parameterized test. It calls Execute on the action
// with the passed parameters and checks that all assertions pass.
type ActionTest struct {
	Name string

	Action chain.Action

	Rules   chain.Rules
	State   state.Mutable
	Program codec.Address
	Actor   codec.Address

	ExpectedOutput codec.Typed
	ExpectedErr    error

	Assertion func(context.Context, *testing.T, state.Mutable)
}

// Run executes the [ActionTest] in a view scoped to the action's declared
// keys, so touching an undeclared key fails the test. On error the view is
// discarded, as the processor would.
func (test *ActionTest) Run(ctx context.Context, t *testing.T) {
	t.Run(test.Name, func(t *testing.T) {
		require := require.New(t)

		scope := test.Action.StateKeys(test.Actor)
		storage := make(map[string][]byte, len(scope))
		for k := range scope {
			if v, err := test.State.GetValue(ctx, []byte(k)); err == nil {
				storage[k] = v
			}
		}
		ts := tstate.New(len(scope))
		tsv := ts.NewView(scope, storage)
		inv := chain.NewInvocation(test.Program, set.Of(test.Actor), tsv)

		output, err := test.Action.Execute(ctx, test.Rules, inv, test.Actor)
		require.ErrorIs(err, test.ExpectedErr)
		if test.ExpectedErr == nil {
			require.Equal(test.ExpectedOutput, output)
			tsv.Commit()
			for k, v := range ts.ChangedKeys() {
				if v.IsNothing() {
					require.NoError(test.State.Remove(ctx, []byte(k)))
					continue
				}
				require.NoError(test.State.Insert(ctx, []byte(k), v.Value()))
			}
		}

		if test.Assertion != nil {
			test.Assertion(ctx, t, test.State)
		}
	})
}

// ActionBenchmark runs an action b.N times, each against a fresh state from
// [CreateState].
type ActionBenchmark struct {
	Name   string
	Action chain.Action

	Rules       chain.Rules
	CreateState func() state.Mutable
	Program     codec.Address
	Actor       codec.Address

	ExpectedOutput codec.Typed
}

func (test *ActionBenchmark) Run(ctx context.Context, b *testing.B) {
	require := require.New(b)

	states := make([]state.Mutable, b.N)
	for i := 0; i < b.N; i++ {
		states[i] = test.CreateState()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv := chain.NewInvocation(test.Program, set.Of(test.Actor), states[i])
		output, err := test.Action.Execute(ctx, test.Rules, inv, test.Actor)
		require.NoError(err)
		require.Equal(test.ExpectedOutput, output)
	}
}
