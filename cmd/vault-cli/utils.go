// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/crypto/ed25519"
	"github.com/Not-Sarthak/vault-anchor/rpc"
	"github.com/Not-Sarthak/vault-anchor/utils"
)

func loadKey(cmd *cobra.Command) (string, ed25519.PrivateKey, error) {
	path, err := getConfigValue(cmd, "key", true)
	if err != nil {
		return "", ed25519.EmptyPrivateKey, fmt.Errorf("%w (run \"key generate\" or \"key import\")", err)
	}
	priv, err := ed25519.LoadKey(path)
	if err != nil {
		return "", ed25519.EmptyPrivateKey, fmt.Errorf("failed to load key: %w", err)
	}
	return path, priv, nil
}

func newClient(cmd *cobra.Command) (*rpc.JSONRPCClient, error) {
	endpoint, err := getConfigValue(cmd, "endpoint", true)
	if err != nil {
		return nil, err
	}
	return rpc.NewJSONRPCClient(endpoint)
}

// addressArg returns the address in [args], or the default key's address
// when there is none.
func addressArg(cmd *cobra.Command, args []string) (codec.Address, error) {
	if len(args) > 0 {
		return codec.ParseAddress(args[0])
	}
	_, priv, err := loadKey(cmd)
	if err != nil {
		return codec.EmptyAddress, err
	}
	return priv.PublicKey().Address(), nil
}

func parseAmount(s string) (uint64, error) {
	amount, err := utils.ParseBalance(s)
	if err != nil {
		return 0, err
	}
	if amount == 0 {
		return 0, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	return amount, nil
}

func validateYesNo(input string) error {
	switch strings.ToLower(input) {
	case "y", "n":
		return nil
	case "":
		return fmt.Errorf("%w: input is empty", ErrInvalidInput)
	default:
		return fmt.Errorf("%w: enter y or n", ErrInvalidInput)
	}
}

// confirm asks before [label] is carried out unless --yes was passed.
func confirm(cmd *cobra.Command, label string) error {
	if yes, err := cmd.Flags().GetBool("yes"); err == nil && yes {
		return nil
	}
	prompt := promptui.Prompt{
		Label:    label + " (y/n)",
		Validate: validateYesNo,
	}
	answer, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
		return ErrAborted
	}
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "y" {
		return ErrAborted
	}
	return nil
}

// submit signs [action] with the default key, sends it and waits for its
// result.
func submit(cmd *cobra.Command, action chain.Action) (*chain.Result, error) {
	_, priv, err := loadKey(cmd)
	if err != nil {
		return nil, err
	}
	cli, err := newClient(cmd)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	tx, err := cli.GenerateTx(ctx, action, chain.NewAuthFactory(priv))
	if err != nil {
		return nil, err
	}
	results, err := cli.SubmitTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	r := results[0]
	if isJSON, _ := isJSONOutputRequested(cmd); !isJSON {
		printStatus(r)
	}
	if !r.Success {
		return r, fmt.Errorf("%w: %s", ErrTxFailed, r.Error)
	}
	return r, nil
}

func printStatus(r *chain.Result) {
	status := "⚠️"
	if r.Success {
		status = "✅"
	}
	utils.Outf("%s {{yellow}}txID:{{/}} %s\n", status, r.TxID)
}
