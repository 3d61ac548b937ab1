// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Not-Sarthak/vault-anchor/rpc"
	"github.com/Not-Sarthak/vault-anchor/utils"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print every transaction result the node executes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		endpoint, err := getConfigValue(cmd, "endpoint", true)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		stream, err := rpc.NewWebSocketClient(ctx, endpoint, rpc.DefaultHandshakeTimeout)
		cancel()
		if err != nil {
			return err
		}
		defer stream.Close()

		utils.Outf("{{green}}watching for results on %s{{/}}\n", endpoint)
		for {
			r, err := stream.ListenResult()
			if err != nil {
				return err
			}
			if err := printValue(cmd, txResponse{r}); err != nil {
				return err
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
