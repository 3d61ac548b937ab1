// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type chainMetrics struct {
	txsProcessed prometheus.Counter
	txsSucceeded prometheus.Counter
	txsFailed    prometheus.Counter
	txsInvalid   prometheus.Counter

	actions *prometheus.CounterVec

	stateChanges prometheus.Counter

	executorBlocked    prometheus.Counter
	executorExecutable prometheus.Counter

	waitSignatures metric.Averager
	execution      metric.Averager
}

func (m *chainMetrics) RecordBlocked() {
	m.executorBlocked.Inc()
}

func (m *chainMetrics) RecordExecutable() {
	m.executorExecutable.Inc()
}

func newMetrics(r prometheus.Registerer) (*chainMetrics, error) {
	waitSignatures, err := metric.NewAverager(
		"",
		"chain_wait_signatures",
		"time spent verifying signatures of a batch",
		r,
	)
	if err != nil {
		return nil, err
	}
	execution, err := metric.NewAverager(
		"",
		"chain_execution",
		"time spent executing a batch",
		r,
	)
	if err != nil {
		return nil, err
	}

	m := &chainMetrics{
		txsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "txs_processed",
			Help:      "number of txs processed",
		}),
		txsSucceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "txs_succeeded",
			Help:      "number of txs whose action succeeded",
		}),
		txsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "txs_failed",
			Help:      "number of txs whose action failed",
		}),
		txsInvalid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "txs_invalid",
			Help:      "number of txs rejected before execution",
		}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "actions",
			Help:      "number of actions executed by type and outcome",
		}, []string{"type", "success"}),
		stateChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "state_changes",
			Help:      "number of keys changed by successful txs",
		}),
		executorBlocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "executor_blocked",
			Help:      "executor tasks that waited on a conflicting tx",
		}),
		executorExecutable: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "executor_executable",
			Help:      "executor tasks that could run immediately",
		}),
		waitSignatures: waitSignatures,
		execution:      execution,
	}

	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.txsProcessed),
		r.Register(m.txsSucceeded),
		r.Register(m.txsFailed),
		r.Register(m.txsInvalid),
		r.Register(m.actions),
		r.Register(m.stateChanges),
		r.Register(m.executorBlocked),
		r.Register(m.executorExecutable),
	)
	return m, errs.Err
}
