// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"
)

var endpointCmd = &cobra.Command{
	Use:   "endpoint",
	Short: "Show or set the node endpoint",
	RunE: func(cmd *cobra.Command, _ []string) error {
		endpoint, err := getConfigValue(cmd, "endpoint", true)
		if err != nil {
			return err
		}
		cli, err := newClient(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()
		name, chainID, err := cli.Network(ctx)
		if err != nil {
			return fmt.Errorf("failed to reach %s: %w", endpoint, err)
		}
		return printValue(cmd, endpointResponse{
			Endpoint:    endpoint,
			NetworkName: name,
			ChainID:     chainID,
		})
	},
}

var endpointSetCmd = &cobra.Command{
	Use:   "set [url]",
	Short: "Set the endpoint URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setConfigValue("endpoint", args[0]); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		return printValue(cmd, endpointResponse{Endpoint: args[0]})
	},
}

type endpointResponse struct {
	Endpoint    string `json:"endpoint"`
	NetworkName string `json:"networkName,omitempty"`
	ChainID     ids.ID `json:"chainId"`
}

func (r endpointResponse) String() string {
	if r.ChainID == ids.Empty {
		return "Endpoint set to: " + r.Endpoint
	}
	return fmt.Sprintf("Endpoint: %s\nNetwork: %s\nChain ID: %s", r.Endpoint, r.NetworkName, r.ChainID)
}

func init() {
	endpointCmd.AddCommand(endpointSetCmd)
	rootCmd.AddCommand(endpointCmd)
}
