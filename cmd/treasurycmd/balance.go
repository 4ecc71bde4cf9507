// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package treasurycmd

import (
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

// minter treasury balance
func newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "balance [saleName]",
		Short:        "Print the balance held by a sale",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         printBalance,
	}
}

func printBalance(_ *cobra.Command, args []string) error {
	s, err := app.OpenSale(args[0], nil)
	if err != nil {
		return err
	}
	return ux.KeyValueTable(ux.Logger.Writer(), [][2]string{
		{"Treasury", s.Treasury().Hex()},
		{"Balance", ux.FormatWei(s.Balance())},
	})
}
