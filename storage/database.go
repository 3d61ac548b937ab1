// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Not-Sarthak/vault-anchor/pebble"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/utils"
)

const ledger = "ledgerdb"

// New opens the ledger database under [dataDir] and returns it with the
// gatherer for its metrics.
func New(cfg pebble.Config, dataDir string) (state.Database, prometheus.Gatherer, error) {
	path, err := utils.InitSubDirectory(dataDir, ledger)
	if err != nil {
		return nil, nil, err
	}

	db, registry, err := pebble.New(path, cfg)
	if err != nil {
		return nil, nil, err
	}
	return db, registry, nil
}

// NewInMemory returns a ledger database that is lost on shutdown.
func NewInMemory() (state.Database, prometheus.Gatherer, error) {
	return state.NewMemoryDB(), prometheus.NewRegistry(), nil
}
