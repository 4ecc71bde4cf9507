// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/luxfi/minter/pkg/config"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get the effective value of a configuration key after merging flags,
environment variables, the config file and defaults.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         runGet,
	}
}

func runGet(_ *cobra.Command, args []string) error {
	key := args[0]
	if !config.IsKey(key) {
		return fmt.Errorf("%w: %s", config.ErrUnknownKey, key)
	}
	ux.Logger.PrintToUser("%s = %s", key, app.Conf.GetConfigStringValue(key))
	return nil
}
