// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package treasurycmd

import (
	"strconv"

	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

// minter treasury payouts
func newPayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "payouts [saleName]",
		Short:        "List the payouts released by a sale",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         listPayouts,
	}
}

func listPayouts(_ *cobra.Command, args []string) error {
	if _, err := app.LoadSale(args[0]); err != nil {
		return err
	}
	payouts, err := app.LoadPayouts(args[0])
	if err != nil {
		return err
	}
	if len(payouts) == 0 {
		ux.Logger.PrintToUser("No payouts recorded for %s", args[0])
		return nil
	}
	table := ux.NewTable(ux.Logger.Writer(), "Time", "Destination", "Amount")
	for _, p := range payouts {
		table.AddRow(strconv.FormatUint(p.Timestamp, 10), p.Destination.Hex(), ux.FormatWei(p.Amount))
	}
	return table.Render()
}
