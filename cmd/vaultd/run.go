// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Not-Sarthak/vault-anchor/config"
	"github.com/Not-Sarthak/vault-anchor/genesis"
	"github.com/Not-Sarthak/vault-anchor/internal/logging"
	"github.com/Not-Sarthak/vault-anchor/rpc"
	"github.com/Not-Sarthak/vault-anchor/server"
	"github.com/Not-Sarthak/vault-anchor/state"
	"github.com/Not-Sarthak/vault-anchor/storage"
	"github.com/Not-Sarthak/vault-anchor/trace"
	"github.com/Not-Sarthak/vault-anchor/vm"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var raw []byte
	if configFile != "" {
		b, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
		raw = b
	}
	cfg, err := config.New(raw)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("genesis") {
		cfg.GenesisFile = genesisFile
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("listen") {
		cfg.ListenAddress = listenAddr
	}
	if flags.Changed("in-memory") {
		cfg.InMemory = inMemory
	}
	return cfg, cfg.Verify()
}

func loadGenesis(path string) (*genesis.Genesis, error) {
	if path == "" {
		return genesis.NewDefaultGenesis(nil), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read genesis file: %w", err)
	}
	return genesis.Load(b)
}

func openDatabase(cfg *config.Config) (state.Database, prometheus.Gatherer, error) {
	if cfg.InMemory {
		return storage.NewInMemory()
	}
	return storage.New(cfg.Pebble, cfg.DataDir)
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New("vaultd", cfg.Log)
	if err != nil {
		return err
	}
	defer log.Stop()

	tracer, err := trace.New(&cfg.Trace)
	if err != nil {
		return err
	}
	defer func() {
		if err := tracer.Close(); err != nil {
			log.Warn("failed to flush traces", zap.Error(err))
		}
	}()
	g, err := loadGenesis(cfg.GenesisFile)
	if err != nil {
		return err
	}
	db, dbGatherer, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	ws := rpc.NewWebSocketServer(log, rpc.DefaultMaxPendingMessages)
	defer ws.Close()
	vmConfig := vm.NewDefaultConfig()
	vmConfig.ExecutionConcurrency = cfg.ExecutionConcurrency
	vmConfig.MaxBatchSize = cfg.MaxBatchSize
	v, err := vm.New(
		ctx,
		vmConfig,
		db,
		g,
		vm.WithLogger(log),
		vm.WithTracer(tracer),
		vm.WithRegisterer(registry),
		vm.WithResultListener(ws.AcceptResults),
	)
	if err != nil {
		return err
	}
	defer v.Close()

	listener, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		return err
	}
	s := server.New(log, listener, cfg.HTTP, cfg.AllowedOrigins, cfg.Compress)
	if err := rpc.Register(s, v, ws, prometheus.Gatherers{registry, dbGatherer}); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Dispatch)
	eg.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		return s.Shutdown()
	})
	log.Info("vaultd started",
		zap.String("network", g.NetworkName),
		zap.Stringer("chainID", v.ChainID()),
		zap.String("listen", cfg.ListenAddress),
		zap.Bool("inMemory", cfg.InMemory),
	)
	return eg.Wait()
}
