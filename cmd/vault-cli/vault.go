// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Not-Sarthak/vault-anchor/actions"
	"github.com/Not-Sarthak/vault-anchor/chain"
	"github.com/Not-Sarthak/vault-anchor/utils"
	"github.com/Not-Sarthak/vault-anchor/vm"
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage the vault of the default key",
}

var vaultDeriveCmd = &cobra.Command{
	Use:   "derive [address]",
	Short: "Derive the vault addresses of [address] without contacting a node",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := addressArg(cmd, args)
		if err != nil {
			return err
		}
		addrs, err := actions.Derive(user)
		if err != nil {
			return err
		}
		return printValue(cmd, deriveResponse{addrs})
	},
}

var vaultShowCmd = &cobra.Command{
	Use:   "show [address]",
	Short: "Show the vault of [address]",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := addressArg(cmd, args)
		if err != nil {
			return err
		}
		cli, err := newClient(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()
		info, err := cli.VaultState(ctx, user)
		if err != nil {
			return err
		}
		return printValue(cmd, showResponse{info})
	},
}

var vaultInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the vault state record, paying its rent",
	RunE: func(cmd *cobra.Command, _ []string) error {
		addrs, err := defaultAddresses(cmd)
		if err != nil {
			return err
		}
		if err := confirm(cmd, "initialize vault "+addrs.Vault.String()); err != nil {
			return err
		}
		r, err := submit(cmd, &actions.Initialize{
			VaultState: addrs.VaultState,
			Vault:      addrs.Vault,
		})
		if err != nil {
			return err
		}
		return printValue(cmd, txResponse{r})
	},
}

func transferCmd(use, short string, newAction func(*actions.Addresses, uint64) chain.Action) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [amount]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			addrs, err := defaultAddresses(cmd)
			if err != nil {
				return err
			}
			if err := confirm(cmd, fmt.Sprintf("%s %s", use, utils.FormatBalance(amount))); err != nil {
				return err
			}
			r, err := submit(cmd, newAction(addrs, amount))
			if err != nil {
				return err
			}
			return printValue(cmd, txResponse{r})
		},
	}
}

var vaultDepositCmd = transferCmd("deposit", "Move [amount] into the vault",
	func(addrs *actions.Addresses, amount uint64) chain.Action {
		return &actions.Deposit{VaultState: addrs.VaultState, Vault: addrs.Vault, Amount: amount}
	},
)

var vaultWithdrawCmd = transferCmd("withdraw", "Move [amount] out of the vault",
	func(addrs *actions.Addresses, amount uint64) chain.Action {
		return &actions.Withdraw{VaultState: addrs.VaultState, Vault: addrs.Vault, Amount: amount}
	},
)

var vaultCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Empty the vault and delete its state record, refunding the rent",
	RunE: func(cmd *cobra.Command, _ []string) error {
		addrs, err := defaultAddresses(cmd)
		if err != nil {
			return err
		}
		if err := confirm(cmd, "close vault "+addrs.Vault.String()); err != nil {
			return err
		}
		r, err := submit(cmd, &actions.Close{
			VaultState: addrs.VaultState,
			Vault:      addrs.Vault,
		})
		if err != nil {
			return err
		}
		return printValue(cmd, txResponse{r})
	},
}

func defaultAddresses(cmd *cobra.Command) (*actions.Addresses, error) {
	_, priv, err := loadKey(cmd)
	if err != nil {
		return nil, err
	}
	return actions.Derive(priv.PublicKey().Address())
}

type deriveResponse struct {
	*actions.Addresses
}

func (r deriveResponse) String() string {
	return fmt.Sprintf(
		"User: %s\nVault state: %s (bump %d)\nVault: %s (bump %d)",
		r.User, r.VaultState, r.StateBump, r.Vault, r.VaultBump,
	)
}

type showResponse struct {
	*vm.VaultInfo
}

func (r showResponse) String() string {
	var b strings.Builder
	b.WriteString(deriveResponse{r.Addresses}.String())
	if r.Record == nil {
		b.WriteString("\nStatus: uninitialized")
		return b.String()
	}
	fmt.Fprintf(&b, "\nStatus: active\nVault balance: %s\nRent held: %s",
		utils.FormatBalance(r.VaultBalance),
		utils.FormatBalance(r.StateBalance),
	)
	return b.String()
}

type txResponse struct {
	*chain.Result
}

func (r txResponse) String() string {
	if !r.Success {
		return fmt.Sprintf("txID: %s failed: %s", r.TxID, r.Error)
	}
	switch out := r.Output.(type) {
	case *actions.InitializeResult:
		return fmt.Sprintf("Initialized (state bump %d, vault bump %d), rent paid: %s",
			out.StateBump, out.VaultBump, utils.FormatBalance(out.Rent))
	case *actions.DepositResult:
		return fmt.Sprintf("Balance: %s\nVault balance: %s",
			utils.FormatBalance(out.UserBalance), utils.FormatBalance(out.VaultBalance))
	case *actions.WithdrawResult:
		return fmt.Sprintf("Balance: %s\nVault balance: %s",
			utils.FormatBalance(out.UserBalance), utils.FormatBalance(out.VaultBalance))
	case *actions.CloseResult:
		return fmt.Sprintf("Swept: %s\nRent refunded: %s\nBalance: %s",
			utils.FormatBalance(out.Swept), utils.FormatBalance(out.Refunded), utils.FormatBalance(out.UserBalance))
	default:
		return "txID: " + r.TxID.String()
	}
}

func init() {
	vaultCmd.AddCommand(
		vaultDeriveCmd,
		vaultShowCmd,
		vaultInitCmd,
		vaultDepositCmd,
		vaultWithdrawCmd,
		vaultCloseCmd,
	)
	rootCmd.AddCommand(vaultCmd)
}
