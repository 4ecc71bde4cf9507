// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"github.com/luxfi/minter/pkg/config"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List all configuration values",
		Long:         "List every configuration key with its effective value.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runList,
	}
}

func runList(_ *cobra.Command, _ []string) error {
	pairs := make([][2]string, 0, len(config.Keys()))
	for _, key := range config.Keys() {
		pairs = append(pairs, [2]string{key, app.Conf.GetConfigStringValue(key)})
	}
	if path := app.Conf.GetConfigPath(); path != "" {
		ux.Logger.PrintToUser("Config file: %s", path)
	}
	return ux.KeyValueTable(ux.Logger.Writer(), pairs)
}
