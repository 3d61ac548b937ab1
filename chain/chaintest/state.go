// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"context"

	"github.com/ava-labs/avalanchego/database"

	"github.com/Not-Sarthak/vault-anchor/state"
)

var _ state.Mutable = (*InMemoryStore)(nil)

// InMemoryStore is an unscoped [state.Mutable] for action tests.
type InMemoryStore struct {
	Storage map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		Storage: make(map[string][]byte),
	}
}

func (i *InMemoryStore) GetValue(_ context.Context, key []byte) ([]byte, error) {
	val, ok := i.Storage[string(key)]
	if !ok {
		return nil, database.ErrNotFound
	}
	return val, nil
}

func (i *InMemoryStore) Insert(_ context.Context, key []byte, value []byte) error {
	i.Storage[string(key)] = value
	return nil
}

func (i *InMemoryStore) Remove(_ context.Context, key []byte) error {
	delete(i.Storage, string(key))
	return nil
}

// Snapshot copies the store, for asserting that a failed action left it
// untouched.
func (i *InMemoryStore) Snapshot() map[string][]byte {
	out := make(map[string][]byte, len(i.Storage))
	for k, v := range i.Storage {
		out[k] = v
	}
	return out
}
