// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lockmap

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/Not-Sarthak/vault-anchor/state"
)

type holderLock struct {
	holders int
	mu      sync.RWMutex
}

// Lockmap hands out per-key read/write locks. Entries are created on first
// use and dropped once nobody holds or waits on them.
type Lockmap struct {
	l sync.Mutex
	m map[string]*holderLock
}

func New(initSize int) *Lockmap {
	return &Lockmap{
		m: make(map[string]*holderLock, initSize),
	}
}

func (l *Lockmap) Lock(key string) {
	l.lock(key, true)
}

func (l *Lockmap) Unlock(key string) {
	l.unlock(key, true)
}

func (l *Lockmap) RLock(key string) {
	l.lock(key, false)
}

func (l *Lockmap) RUnlock(key string) {
	l.unlock(key, false)
}

// LockKeys acquires a lock for every key in [keys]: a read lock for keys
// that are only read, a write lock otherwise. Keys are locked in sorted
// order so that concurrent callers cannot deadlock. The returned func
// releases all of them.
func (l *Lockmap) LockKeys(keys state.Keys) func() {
	names := maps.Keys(keys)
	slices.Sort(names)
	for _, k := range names {
		l.lock(k, keys[k] != state.Read)
	}
	return func() {
		for i := len(names) - 1; i >= 0; i-- {
			k := names[i]
			l.unlock(k, keys[k] != state.Read)
		}
	}
}

func (l *Lockmap) lock(key string, write bool) {
	l.l.Lock()
	hl, ok := l.m[key]
	if !ok {
		hl = &holderLock{}
		l.m[key] = hl
	}
	hl.holders++
	l.l.Unlock()

	if write {
		hl.mu.Lock()
	} else {
		hl.mu.RLock()
	}
}

func (l *Lockmap) unlock(key string, write bool) {
	l.l.Lock()
	defer l.l.Unlock()

	hl := l.m[key]
	hl.holders--
	if hl.holders == 0 {
		delete(l.m, key)
	}
	if write {
		hl.mu.Unlock()
	} else {
		hl.mu.RUnlock()
	}
}

// Locks returns the number of keys currently held or waited on.
func (l *Lockmap) Locks() int {
	l.l.Lock()
	defer l.l.Unlock()

	return len(l.m)
}
