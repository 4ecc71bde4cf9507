// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package salecmd

import (
	"fmt"

	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/application"
	"github.com/spf13/cobra"
)

var (
	app *application.Minter

	from flags.Address
)

// minter sale
func NewCmd(injectedApp *application.Minter) *cobra.Command {
	from = flags.Address{}
	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Create and manage sales",
		Long: `The sale command suite creates sales and runs the owner operations that
open sale windows and tune limits, prices and the Dutch auction.

Every mutating subcommand takes the --from address of the caller. Owner-only
operations fail with NotOwner for any other caller.`,
		Run: func(cmd *cobra.Command, _ []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	// sale create
	cmd.AddCommand(newCreateCmd())
	// sale delete
	cmd.AddCommand(newDeleteCmd())
	// sale list
	cmd.AddCommand(newListCmd())
	// sale status
	cmd.AddCommand(newStatusCmd())
	// sale enable-private, sale enable-public
	cmd.AddCommand(newEnablePrivateCmd())
	cmd.AddCommand(newEnablePublicCmd())
	// sale toggle-auction
	cmd.AddCommand(newToggleAuctionCmd())
	// sale reduce-time
	cmd.AddCommand(newReduceTimeCmd())
	// sale limits
	cmd.AddCommand(newLimitsCmd())
	// sale prices
	cmd.AddCommand(newPricesCmd())
	// sale signer
	cmd.AddCommand(newSignerCmd())
	// sale transfer-ownership
	cmd.AddCommand(newTransferOwnershipCmd())
	return cmd
}
