// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/Not-Sarthak/vault-anchor/crypto/ed25519"
	"github.com/Not-Sarthak/vault-anchor/executor"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/tstate"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// Processor executes batches of transactions. Transactions that touch
// disjoint keys run in parallel, the rest run in the order given.
type Processor struct {
	tracer      trace.Tracer
	log         logging.Logger
	registry    *Registry
	concurrency int
	metrics     *chainMetrics
}

func NewProcessor(
	tracer trace.Tracer,
	log logging.Logger,
	registry *Registry,
	concurrency int,
	reg prometheus.Registerer,
) (*Processor, error) {
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &Processor{
		tracer:      tracer,
		log:         log,
		registry:    registry,
		concurrency: concurrency,
		metrics:     m,
	}, nil
}

func (p *Processor) Registry() *Registry {
	return p.registry
}

// Verify checks everything about [txs] that does not depend on state. The
// returned slice holds the reason each tx is invalid, or nil.
func (p *Processor) Verify(ctx context.Context, r Rules, now int64, txs []*Transaction) []error {
	_, span := p.tracer.Start(ctx, "Processor.Verify",
		oteltrace.WithAttributes(attribute.Int("txs", len(txs))),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		p.metrics.waitSignatures.Observe(float64(time.Since(start)))
	}()

	errs := make([]error, len(txs))
	for i, tx := range txs {
		errs[i] = tx.Base.Verify(r.GetChainID(), r, now)
	}

	// Batch verification only says whether every signature is valid, so on
	// failure fall back to checking each one.
	if len(txs) >= ed25519.MinBatchSize {
		batch := ed25519.NewBatch(len(txs))
		for i, tx := range txs {
			if errs[i] == nil {
				batch.Add(tx.digest, tx.Auth.Signer, tx.Auth.Signature)
			}
		}
		if batch.Verify() {
			return errs
		}
	}
	for i, tx := range txs {
		if errs[i] == nil {
			errs[i] = tx.Verify()
		}
	}
	return errs
}

// Execute runs [txs] on top of [im]. Invalid transactions and transactions
// whose action fails get a failed [Result] and leave no trace in the
// returned [tstate.TState]. The error is only set when the batch itself
// could not be processed.
func (p *Processor) Execute(
	ctx context.Context,
	r Rules,
	im state.Immutable,
	now int64,
	txs []*Transaction,
) ([]*Result, *tstate.TState, error) {
	ctx, span := p.tracer.Start(ctx, "Processor.Execute",
		oteltrace.WithAttributes(attribute.Int("txs", len(txs))),
	)
	defer span.End()

	if len(txs) == 0 {
		return nil, nil, ErrEmptyBatch
	}
	start := time.Now()
	defer func() {
		p.metrics.execution.Observe(float64(time.Since(start)))
	}()

	results := make([]*Result, len(txs))
	verifyErrs := p.Verify(ctx, r, now, txs)
	scope := make(state.Keys)
	for i, tx := range txs {
		if verifyErrs[i] != nil {
			results[i] = NewFailure(tx.ID(), verifyErrs[i])
			p.metrics.txsInvalid.Inc()
			continue
		}
		scope.Merge(tx.StateKeys())
	}

	storage, err := p.prefetch(ctx, im, scope)
	if err != nil {
		return nil, nil, err
	}

	ts := tstate.New(len(scope))
	e := executor.New(len(txs), p.concurrency, p.metrics)
	for i, tx := range txs {
		if results[i] != nil {
			continue
		}
		i, tx := i, tx
		e.Run(tx.StateKeys(), func() error {
			results[i] = p.executeTx(ctx, r, ts, storage, tx)
			return nil
		})
	}
	if err := e.Wait(); err != nil {
		return nil, nil, err
	}

	p.metrics.txsProcessed.Add(float64(len(txs)))
	p.metrics.stateChanges.Add(float64(ts.PendingChanges()))
	return results, ts, nil
}

// prefetch reads every key in [scope] that exists.
func (p *Processor) prefetch(ctx context.Context, im state.Immutable, scope state.Keys) (map[string][]byte, error) {
	_, span := p.tracer.Start(ctx, "Processor.prefetch")
	defer span.End()

	storage := make(map[string][]byte, len(scope))
	for k := range scope {
		v, err := im.GetValue(ctx, []byte(k))
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		storage[k] = v
	}
	return storage, nil
}

func (p *Processor) executeTx(
	ctx context.Context,
	r Rules,
	ts *tstate.TState,
	storage map[string][]byte,
	tx *Transaction,
) *Result {
	typeID := strconv.Itoa(int(tx.Action.GetTypeID()))
	program, err := p.registry.Program(tx.Action)
	if err != nil {
		p.metrics.txsFailed.Inc()
		return NewFailure(tx.ID(), err)
	}

	actor := tx.Actor()
	tsv := ts.NewView(tx.StateKeys(), storage)
	inv := NewInvocation(program, set.Of(actor), tsv)
	output, err := tx.Action.Execute(ctx, r, inv, actor)
	if err != nil {
		tsv.Rollback(ctx, 0)
		p.metrics.txsFailed.Inc()
		p.metrics.actions.WithLabelValues(typeID, "false").Inc()
		p.log.Debug("transaction failed",
			zap.Stringer("txID", tx.ID()),
			zap.Stringer("actor", actor),
			zap.Uint8("action", tx.Action.GetTypeID()),
			zap.Error(err),
		)
		return NewFailure(tx.ID(), err)
	}
	tsv.Commit()
	p.metrics.txsSucceeded.Inc()
	p.metrics.actions.WithLabelValues(typeID, "true").Inc()
	return &Result{
		TxID:    tx.ID(),
		Success: true,
		Output:  output,
	}
}
