// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "vaultd" runs a single vault ledger node and serves it over JSON-RPC.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile  string
	genesisFile string
	dataDir     string
	listenAddr  string
	inMemory    bool

	rootCmd = &cobra.Command{
		Use:          "vaultd",
		Short:        "Vault ledger node",
		SilenceUsage: true,
		RunE:         run,
	}
)

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "JSON config file")
	rootCmd.Flags().StringVar(&genesisFile, "genesis", "", "genesis file (overrides the config)")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "database directory (overrides the config)")
	rootCmd.Flags().StringVar(&listenAddr, "listen", "", "rpc listen address (overrides the config)")
	rootCmd.Flags().BoolVar(&inMemory, "in-memory", false, "keep the ledger in memory only")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
