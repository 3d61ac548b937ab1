// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/crypto/ed25519"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage keys",
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a key and make it the default",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}
		priv, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return err
		}
		if out == "" {
			dir, err := configDir()
			if err != nil {
				return err
			}
			out = filepath.Join(dir, priv.PublicKey().Address().String()+".key")
		}
		if err := priv.Save(out); err != nil {
			return fmt.Errorf("failed to save key: %w", err)
		}
		if err := setConfigValue("key", out); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		return printValue(cmd, keyResponse{
			Path:    out,
			Address: priv.PublicKey().Address(),
		})
	},
}

var keyImportCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Make the key stored at [path] the default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		priv, err := ed25519.LoadKey(path)
		if err != nil {
			return fmt.Errorf("failed to load key: %w", err)
		}
		if err := setConfigValue("key", path); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		return printValue(cmd, keyResponse{
			Path:    path,
			Address: priv.PublicKey().Address(),
		})
	},
}

var keyAddressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the address of the default key",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, priv, err := loadKey(cmd)
		if err != nil {
			return err
		}
		return printValue(cmd, keyResponse{
			Path:    path,
			Address: priv.PublicKey().Address(),
		})
	},
}

type keyResponse struct {
	Path    string        `json:"path"`
	Address codec.Address `json:"address"`
}

func (r keyResponse) String() string {
	return fmt.Sprintf("Address: %s\nKey file: %s", r.Address, r.Path)
}

func init() {
	keyGenerateCmd.Flags().String("out", "", "File to write the key to")
	keyCmd.AddCommand(keyGenerateCmd, keyImportCmd, keyAddressCmd)
	rootCmd.AddCommand(keyCmd)
}
