// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/maybe"
)

var _ Database = (*MemoryDB)(nil)

// MemoryDB is a [Database] held entirely in memory.
type MemoryDB struct {
	l       sync.RWMutex
	storage map[string][]byte
	closed  bool
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{storage: make(map[string][]byte)}
}

func (m *MemoryDB) GetValue(_ context.Context, key []byte) ([]byte, error) {
	m.l.RLock()
	defer m.l.RUnlock()

	if m.closed {
		return nil, database.ErrClosed
	}
	v, ok := m.storage[string(key)]
	if !ok {
		return nil, database.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryDB) Apply(_ context.Context, changes map[string]maybe.Maybe[[]byte]) error {
	m.l.Lock()
	defer m.l.Unlock()

	if m.closed {
		return database.ErrClosed
	}
	for k, v := range changes {
		if v.IsNothing() {
			delete(m.storage, k)
			continue
		}
		m.storage[k] = append([]byte(nil), v.Value()...)
	}
	return nil
}

func (m *MemoryDB) Len() int {
	m.l.RLock()
	defer m.l.RUnlock()

	return len(m.storage)
}

func (m *MemoryDB) Close() error {
	m.l.Lock()
	defer m.l.Unlock()

	m.closed = true
	return nil
}
