// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	batches      prometheus.Counter
	duplicateTxs prometheus.Counter
	seenTxs      prometheus.Gauge

	waitLocks metric.Averager
	commit    metric.Averager
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	waitLocks, err := metric.NewAverager(
		"",
		"vm_wait_locks",
		"time spent waiting for account locks",
		r,
	)
	if err != nil {
		return nil, err
	}
	commit, err := metric.NewAverager(
		"",
		"vm_commit",
		"time spent writing a batch to the database",
		r,
	)
	if err != nil {
		return nil, err
	}

	m := &metrics{
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vm",
			Name:      "batches",
			Help:      "number of batches executed",
		}),
		duplicateTxs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vm",
			Name:      "duplicate_txs",
			Help:      "number of txs rejected as replays",
		}),
		seenTxs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vm",
			Name:      "seen_txs",
			Help:      "number of unexpired txs remembered for replay protection",
		}),
		waitLocks: waitLocks,
		commit:    commit,
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.batches),
		r.Register(m.duplicateTxs),
		r.Register(m.seenTxs),
	)
	return m, errs.Err
}
