// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package treasurycmd

import (
	"fmt"

	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/application"
	"github.com/spf13/cobra"
)

var (
	app *application.Minter

	from        flags.Address
	destination flags.Address
)

// minter treasury
func NewCmd(injectedApp *application.Minter) *cobra.Command {
	from, destination = flags.Address{}, flags.Address{}
	cmd := &cobra.Command{
		Use:   "treasury",
		Short: "Inspect and withdraw sale proceeds",
		Long: `The treasury command suite reads the balance collected by a sale and
releases it to the treasury address fixed at creation. Released amounts are
recorded in the payout journal of the sale.`,
		Run: func(cmd *cobra.Command, _ []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	// treasury balance
	cmd.AddCommand(newBalanceCmd())
	// treasury withdraw
	cmd.AddCommand(newWithdrawCmd())
	// treasury payouts
	cmd.AddCommand(newPayoutsCmd())
	return cmd
}
