// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Not-Sarthak/vault-anchor/chain"
)

type Option func(*VM)

// WithClock replaces the time used to check transaction expiry.
func WithClock(now func() time.Time) Option {
	return func(vm *VM) {
		vm.now = now
	}
}

func WithLogger(log logging.Logger) Option {
	return func(vm *VM) {
		vm.log = log
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(vm *VM) {
		vm.tracer = tracer
	}
}

// WithRegisterer registers the vm's metrics with [reg] instead of a private
// registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(vm *VM) {
		vm.reg = reg
	}
}

// WithResultListener calls [f] with the results of every batch after it is
// committed. [f] must not block.
func WithResultListener(f func([]*chain.Result)) Option {
	return func(vm *VM) {
		vm.listeners = append(vm.listeners, f)
	}
}
