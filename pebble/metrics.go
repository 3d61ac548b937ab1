// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace       = "pebble"
	metricsInterval = 10 * time.Second
)

type metrics struct {
	delayStart time.Time
	writeStall metric.Averager

	getLatency   metric.Averager
	applyLatency metric.Averager

	keysSet     prometheus.Counter
	keysDeleted prometheus.Counter

	l0Compactions     prometheus.Counter
	otherCompactions  prometheus.Counter
	activeCompactions prometheus.Gauge

	tombstoneCount  prometheus.Gauge
	obsoleteWALSize prometheus.Gauge
}

func counter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
}

func gauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	m := &metrics{
		keysSet:           counter("keys_set", "number of keys written by applied batches"),
		keysDeleted:       counter("keys_deleted", "number of keys deleted by applied batches"),
		l0Compactions:     counter("l0_compactions", "number of l0 compactions"),
		otherCompactions:  counter("other_compactions", "number of l1+ compactions"),
		activeCompactions: gauge("active_compactions", "number of active compactions"),
		tombstoneCount:    gauge("tombstone_count", "approximate count of internal tombstones"),
		obsoleteWALSize:   gauge("obsolete_wal_size", "bytes of WAL no longer needed"),
	}

	var err error
	errs := wrappers.Errs{}
	m.writeStall, err = metric.NewAverager("", namespace+"_write_stall", "time spent waiting for disk write", r)
	errs.Add(err)
	m.getLatency, err = metric.NewAverager("", namespace+"_read_latency", "time spent waiting for db get", r)
	errs.Add(err)
	m.applyLatency, err = metric.NewAverager("", namespace+"_apply_latency", "time spent committing a change set", r)
	errs.Add(err)
	errs.Add(
		r.Register(m.keysSet),
		r.Register(m.keysDeleted),
		r.Register(m.l0Compactions),
		r.Register(m.otherCompactions),
		r.Register(m.activeCompactions),
		r.Register(m.tombstoneCount),
		r.Register(m.obsoleteWALSize),
	)
	return r, m, errs.Err
}

func (d *Database) onCompactionBegin(info pebble.CompactionInfo) {
	d.metrics.activeCompactions.Inc()
	l0 := info.Input[0]
	if l0.Level == 0 {
		d.metrics.l0Compactions.Inc()
	} else {
		d.metrics.otherCompactions.Inc()
	}
}

func (d *Database) onCompactionEnd(pebble.CompactionInfo) {
	d.metrics.activeCompactions.Dec()
}

func (d *Database) onWriteStallBegin(pebble.WriteStallBeginInfo) {
	d.metrics.delayStart = time.Now()
}

func (d *Database) onWriteStallEnd() {
	d.metrics.writeStall.Observe(float64(time.Since(d.metrics.delayStart)))
}

func (d *Database) collectMetrics() {
	t := time.NewTicker(metricsInterval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			current := d.db.Metrics()
			d.metrics.tombstoneCount.Set(float64(current.Keys.TombstoneCount))
			d.metrics.obsoleteWALSize.Set(float64(current.WAL.ObsoletePhysicalSize))
		case <-d.closing:
			return
		}
	}
}
