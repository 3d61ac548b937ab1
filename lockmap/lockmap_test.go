// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lockmap

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Not-Sarthak/vault-anchor/state"
)

func TestLockUnlock(t *testing.T) {
	require := require.New(t)
	l := New(4)

	l.Lock("a")
	l.RLock("b")
	l.RLock("b")
	require.Equal(2, l.Locks())

	l.Unlock("a")
	l.RUnlock("b")
	require.Equal(1, l.Locks())
	l.RUnlock("b")
	require.Zero(l.Locks())
}

func TestLockKeysExcludes(t *testing.T) {
	require := require.New(t)
	l := New(4)
	keys := state.Keys{"user": state.Write, "vault": state.Write, "record": state.Read}

	release := l.LockKeys(keys)
	acquired := make(chan struct{})
	go func() {
		r := l.LockKeys(state.Keys{"vault": state.Write})
		close(acquired)
		r()
	}()

	select {
	case <-acquired:
		require.FailNow("write lock acquired while held")
	case <-time.After(20 * time.Millisecond):
	}
	release()
	<-acquired
}

func TestLockKeysSharedReads(t *testing.T) {
	require := require.New(t)
	l := New(4)

	release := l.LockKeys(state.Keys{"record": state.Read})
	done := make(chan struct{})
	go func() {
		r := l.LockKeys(state.Keys{"record": state.Read})
		r()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow("read lock blocked by another reader")
	}
	release()
	require.Zero(l.Locks())
}

func TestLockKeysNoDeadlock(t *testing.T) {
	l := New(4)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.LockKeys(state.Keys{"a": state.Write, "b": state.Write})()
		}()
		go func() {
			defer wg.Done()
			l.LockKeys(state.Keys{"b": state.Write, "a": state.Write})()
		}()
	}
	wg.Wait()
	require.Zero(t, l.Locks())
}
