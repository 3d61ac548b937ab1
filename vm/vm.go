// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/cache"
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Not-Sarthak/vault-anchor/actions"
	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/emap"
	"github.com/Not-Sarthak/vault-anchor/genesis"
	"github.com/Not-Sarthak/vault-anchor/lockmap"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/storage"
	"github.com/Not-Sarthak/vault-anchor/tstate"

	vtrace "github.com/Not-Sarthak/vault-anchor/trace"
)

type Config struct {
	ExecutionConcurrency int `json:"executionConcurrency"`
	MaxBatchSize         int `json:"maxBatchSize"`

	// Number of users whose derived addresses are remembered.
	DerivationCacheSize int `json:"derivationCacheSize"`
}

func NewDefaultConfig() Config {
	return Config{
		ExecutionConcurrency: 4,
		MaxBatchSize:         256,
		DerivationCacheSize:  4_096,
	}
}

// VM is the ledger host. It owns the database, runs submitted transactions
// through the vault program and commits each batch atomically.
//
// Batches may be submitted concurrently. A batch holds the locks of every
// account it declares from execution until commit, so batches touching the
// same accounts apply one after another.
type VM struct {
	cfg Config

	log    logging.Logger
	tracer trace.Tracer
	reg    prometheus.Registerer
	now    func() time.Time

	listeners []func([]*chain.Result)

	db        state.Database
	genesis   *genesis.Genesis
	rules     *genesis.Rules
	registry  *chain.Registry
	processor *chain.Processor

	locks       *lockmap.Lockmap
	seen        *emap.EMap[*chain.Transaction]
	derivations *cache.LRU[codec.Address, *actions.Addresses]

	metrics *metrics

	closeOnce sync.Once
	closed    chan struct{}
}

// New returns a VM on top of [db], initializing it with [g] if it is empty.
func New(
	ctx context.Context,
	cfg Config,
	db state.Database,
	g *genesis.Genesis,
	opts ...Option,
) (*VM, error) {
	vm := &VM{
		cfg:     cfg,
		log:     logging.NoLog{},
		tracer:  vtrace.Noop("vm"),
		now:     time.Now,
		db:      db,
		genesis: g,
		rules:   g.GetRules(),
		locks:   lockmap.New(cfg.MaxBatchSize * 8),
		seen:    emap.NewEMap[*chain.Transaction](),
		closed:  make(chan struct{}),

		derivations: &cache.LRU[codec.Address, *actions.Addresses]{Size: cfg.DerivationCacheSize},
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.reg == nil {
		vm.reg = prometheus.NewRegistry()
	}

	registry, err := actions.NewRegistry()
	if err != nil {
		return nil, err
	}
	vm.registry = registry
	vm.processor, err = chain.NewProcessor(vm.tracer, vm.log, registry, cfg.ExecutionConcurrency, vm.reg)
	if err != nil {
		return nil, err
	}
	vm.metrics, err = newMetrics(vm.reg)
	if err != nil {
		return nil, err
	}
	if err := vm.initializeGenesis(ctx); err != nil {
		return nil, err
	}
	vm.log.Info("vm initialized",
		zap.Stringer("chainID", vm.rules.GetChainID()),
		zap.Stringer("program", actions.ProgramID),
	)
	return vm, nil
}

func (vm *VM) initializeGenesis(ctx context.Context) error {
	chainID := vm.genesis.ChainID()
	marker, err := vm.db.GetValue(ctx, storage.GenesisKey())
	switch {
	case err == nil:
		if !bytes.Equal(marker, chainID[:]) {
			return fmt.Errorf("%w: want chain %s", ErrGenesisMismatch, chainID)
		}
		return nil
	case !errors.Is(err, database.ErrNotFound):
		return err
	}

	ts := tstate.New(len(vm.genesis.CustomAllocation) + 1)
	tsv := ts.NewView(vm.genesis.Keys(), map[string][]byte{})
	if err := vm.genesis.InitializeState(ctx, vm.tracer, tsv); err != nil {
		return err
	}
	tsv.Commit()
	if err := vm.db.Apply(ctx, ts.ChangedKeys()); err != nil {
		return err
	}
	vm.log.Info("applied genesis",
		zap.Int("allocations", len(vm.genesis.CustomAllocation)),
	)
	return nil
}

// Submit executes [txs] as one batch and returns a result per tx, in order.
// Replays of transactions that already succeeded fail with
// [chain.ErrDuplicateTx] until they expire.
func (vm *VM) Submit(ctx context.Context, txs ...*chain.Transaction) ([]*chain.Result, error) {
	ctx, span := vm.tracer.Start(ctx, "VM.Submit")
	defer span.End()

	select {
	case <-vm.closed:
		return nil, ErrClosed
	default:
	}
	switch {
	case len(txs) == 0:
		return nil, chain.ErrEmptyBatch
	case len(txs) > vm.cfg.MaxBatchSize:
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(txs), vm.cfg.MaxBatchSize)
	}

	keys := make(state.Keys)
	for _, tx := range txs {
		keys.Merge(tx.StateKeys())
	}
	start := time.Now()
	unlock := vm.locks.LockKeys(keys)
	defer unlock()
	vm.metrics.waitLocks.Observe(float64(time.Since(start)))

	now := vm.now().UnixMilli()
	vm.metrics.seenTxs.Set(float64(vm.seen.Len()))
	vm.seen.SetMin(now)

	results := make([]*chain.Result, len(txs))
	seen := vm.seen.Contains(txs)
	batchIDs := set.NewSet[ids.ID](len(txs))
	fresh := make([]*chain.Transaction, 0, len(txs))
	index := make([]int, 0, len(txs))
	for i, tx := range txs {
		if seen[i] || batchIDs.Contains(tx.ID()) {
			results[i] = chain.NewFailure(tx.ID(), chain.ErrDuplicateTx)
			vm.metrics.duplicateTxs.Inc()
			continue
		}
		batchIDs.Add(tx.ID())
		fresh = append(fresh, tx)
		index = append(index, i)
	}
	if len(fresh) == 0 {
		return results, nil
	}

	executed, ts, err := vm.processor.Execute(ctx, vm.rules, vm.db, now, fresh)
	if err != nil {
		return nil, err
	}
	start = time.Now()
	if err := vm.db.Apply(ctx, ts.ChangedKeys()); err != nil {
		return nil, err
	}
	vm.metrics.commit.Observe(float64(time.Since(start)))

	succeeded := make([]*chain.Transaction, 0, len(fresh))
	for j, r := range executed {
		results[index[j]] = r
		if r.Success {
			succeeded = append(succeeded, fresh[j])
		}
	}
	vm.seen.Add(succeeded)
	vm.metrics.batches.Inc()
	for _, f := range vm.listeners {
		f(executed)
	}
	vm.log.Debug("executed batch",
		zap.Int("txs", len(txs)),
		zap.Int("succeeded", len(succeeded)),
		zap.Int("changes", ts.PendingChanges()),
	)
	return results, nil
}

func (vm *VM) Balance(ctx context.Context, addr codec.Address) (uint64, error) {
	return storage.GetBalance(ctx, vm.db, addr)
}

func (vm *VM) Account(ctx context.Context, addr codec.Address) (*storage.Account, bool, error) {
	return storage.GetAccount(ctx, vm.db, addr)
}

// VaultInfo describes the vault of a user.
type VaultInfo struct {
	*actions.Addresses

	// Nil until the user initializes.
	Record       *actions.VaultState `json:"record"`
	VaultBalance uint64              `json:"vaultBalance"`
	StateBalance uint64              `json:"stateBalance"`
}

// Derive returns the vault addresses of [user]. Results are cached, so
// callers must not modify them.
func (vm *VM) Derive(user codec.Address) (*actions.Addresses, error) {
	if addrs, ok := vm.derivations.Get(user); ok {
		return addrs, nil
	}
	addrs, err := actions.Derive(user)
	if err != nil {
		return nil, err
	}
	vm.derivations.Put(user, addrs)
	return addrs, nil
}

// VaultState derives the addresses of [user]'s vault and reads their
// current contents.
func (vm *VM) VaultState(ctx context.Context, user codec.Address) (*VaultInfo, error) {
	addrs, err := vm.Derive(user)
	if err != nil {
		return nil, err
	}
	info := &VaultInfo{Addresses: addrs}
	record, err := actions.GetVaultState(ctx, vm.db, addrs.VaultState)
	switch {
	case err == nil:
		info.Record = record
	case !errors.Is(err, actions.ErrAccountNotFound):
		return nil, err
	}
	if info.VaultBalance, err = vm.Balance(ctx, addrs.Vault); err != nil {
		return nil, err
	}
	if info.StateBalance, err = vm.Balance(ctx, addrs.VaultState); err != nil {
		return nil, err
	}
	return info, nil
}

func (vm *VM) ChainID() ids.ID {
	return vm.rules.GetChainID()
}

func (vm *VM) Rules() chain.Rules {
	return vm.rules
}

func (vm *VM) Registry() *chain.Registry {
	return vm.registry
}

func (vm *VM) NetworkName() string {
	return vm.genesis.NetworkName
}

// Close stops accepting batches. The database is owned by the caller.
func (vm *VM) Close() {
	vm.closeOnce.Do(func() {
		close(vm.closed)
		vm.log.Info("vm closed")
	})
}

func (vm *VM) Tracer() trace.Tracer {
	return vm.tracer
}

func (vm *VM) Logger() logging.Logger {
	return vm.log
}
