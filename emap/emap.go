// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package emap

import (
	"container/heap"
	"sync"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/set"
)

// Item is anything identified by an id that stops mattering after its
// expiry.
type Item interface {
	ID() ids.ID
	Expiry() int64
}

type bucket struct {
	t     int64
	items []ids.ID
}

// buckets is a min-heap of buckets by expiry.
type buckets []*bucket

func (b buckets) Len() int           { return len(b) }
func (b buckets) Less(i, j int) bool { return b[i].t < b[j].t }
func (b buckets) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
func (b *buckets) Push(x any)        { *b = append(*b, x.(*bucket)) }
func (b *buckets) Pop() any {
	old := *b
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*b = old[:n-1]
	return x
}

// EMap remembers the ids of items until their expiry passes. It is used to
// reject replayed transactions for as long as they would still be valid.
type EMap[T Item] struct {
	mu sync.RWMutex

	bh    buckets
	seen  set.Set[ids.ID]
	times map[int64]*bucket
}

func NewEMap[T Item]() *EMap[T] {
	return &EMap[T]{
		seen:  set.Set[ids.ID]{},
		times: make(map[int64]*bucket),
	}
}

// Add records [items]. Items already present are ignored.
func (e *EMap[T]) Add(items []T) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, item := range items {
		e.add(item.ID(), item.Expiry())
	}
}

func (e *EMap[T]) add(id ids.ID, t int64) {
	if e.seen.Contains(id) {
		return
	}
	e.seen.Add(id)

	if b, ok := e.times[t]; ok {
		b.items = append(b.items, id)
		return
	}
	b := &bucket{t: t, items: []ids.ID{id}}
	e.times[t] = b
	heap.Push(&e.bh, b)
}

// SetMin forgets every item that expired before [t] and returns their ids.
func (e *EMap[T]) SetMin(t int64) []ids.ID {
	e.mu.Lock()
	defer e.mu.Unlock()

	evicted := []ids.ID{}
	for len(e.bh) > 0 && e.bh[0].t < t {
		b := heap.Pop(&e.bh).(*bucket)
		for _, id := range b.items {
			e.seen.Remove(id)
			evicted = append(evicted, id)
		}
		delete(e.times, b.t)
	}
	return evicted
}

// Contains reports, per item, whether it has been recorded.
func (e *EMap[T]) Contains(items []T) []bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]bool, len(items))
	for i, item := range items {
		out[i] = e.seen.Contains(item.ID())
	}
	return out
}

func (e *EMap[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.seen.Len()
}
