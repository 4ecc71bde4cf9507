// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/luxfi/minter/pkg/config"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the CLI config file.

Examples:
  minter config set chain-id 1
  minter config set verifying-contract 0x5FbDB2315678afecb367f032d93F642f64180aa3
  minter config set metrics-enabled false`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
	}
}

func runSet(_ *cobra.Command, args []string) error {
	key := args[0]
	value, err := config.ParseValue(key, args[1])
	if err != nil {
		return err
	}
	if err := app.Conf.SetConfigValue(key, value); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	ux.Logger.PrintToUser("Set %s = %v", key, value)
	return nil
}
