// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"

	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/storage"
	"github.com/Not-Sarthak/vault-anchor/utils"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

const DefaultNetworkName = "vault-local"

var ErrInvalidGenesis = errors.New("invalid genesis")

type CustomAllocation struct {
	Address codec.Address `json:"address"`
	Balance uint64        `json:"balance"`
}

type Genesis struct {
	// The chain id is derived from the network name, so ledgers with
	// different names never accept each other's transactions.
	NetworkName      string              `json:"networkName"`
	CustomAllocation []*CustomAllocation `json:"customAllocation"`
	Rules            *Rules              `json:"initialRules"`
}

func NewDefaultGenesis(customAllocations []*CustomAllocation) *Genesis {
	return &Genesis{
		NetworkName:      DefaultNetworkName,
		CustomAllocation: customAllocations,
		Rules:            NewDefaultRules(),
	}
}

// Load parses [b] over the default genesis. Empty input yields the default.
func Load(b []byte) (*Genesis, error) {
	g := NewDefaultGenesis(nil)
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidGenesis, err)
		}
	}
	if g.NetworkName == "" {
		return nil, fmt.Errorf("%w: network name is empty", ErrInvalidGenesis)
	}
	if g.Rules == nil {
		g.Rules = NewDefaultRules()
	}
	g.Rules.chainID = g.ChainID()
	return g, nil
}

func (g *Genesis) ChainID() ids.ID {
	return utils.ToID([]byte(g.NetworkName))
}

// GetRules returns the rules bound to this genesis's chain id.
func (g *Genesis) GetRules() *Rules {
	r := *g.Rules
	r.chainID = g.ChainID()
	return &r
}

// InitializeState credits every allocation and records the chain id under
// the genesis marker.
func (g *Genesis) InitializeState(ctx context.Context, tracer trace.Tracer, mu state.Mutable) error {
	ctx, span := tracer.Start(ctx, "Genesis.InitializeState")
	defer span.End()

	supply := uint64(0)
	for _, alloc := range g.CustomAllocation {
		var err error
		supply, err = smath.Add64(supply, alloc.Balance)
		if err != nil {
			return fmt.Errorf("%w: supply overflows", ErrInvalidGenesis)
		}
		if _, err := storage.AddBalance(ctx, mu, alloc.Address, alloc.Balance); err != nil {
			return fmt.Errorf("%w: addr=%s, bal=%d", err, alloc.Address, alloc.Balance)
		}
	}
	chainID := g.ChainID()
	return mu.Insert(ctx, storage.GenesisKey(), chainID[:])
}

// Keys are the keys [InitializeState] writes.
func (g *Genesis) Keys() state.Keys {
	keys := make(state.Keys, len(g.CustomAllocation)+1)
	for _, alloc := range g.CustomAllocation {
		keys.Add(string(storage.BalanceKey(alloc.Address)), state.All)
	}
	keys.Add(string(storage.GenesisKey()), state.All)
	return keys
}
