// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/utils"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Show the balance of [address], or of the default key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := addressArg(cmd, args)
		if err != nil {
			return err
		}
		cli, err := newClient(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()
		balance, err := cli.Balance(ctx, addr)
		if err != nil {
			return err
		}
		return printValue(cmd, balanceResponse{Address: addr, Balance: balance})
	},
}

type balanceResponse struct {
	Address codec.Address `json:"address"`
	Balance uint64        `json:"balance"`
}

func (r balanceResponse) String() string {
	return r.Address.String() + ": " + utils.FormatBalance(r.Balance)
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
