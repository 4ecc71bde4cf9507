// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package salecmd

import (
	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

var newOwner flags.Address

// minter sale transfer-ownership
func newTransferOwnershipCmd() *cobra.Command {
	newOwner = flags.Address{}
	cmd := &cobra.Command{
		Use:          "transfer-ownership [saleName]",
		Short:        "Hand the sale over to a new owner",
		Long:         "The sale transfer-ownership command makes --to the only address allowed to run owner operations.",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         transferOwnership,
	}
	flags.AddFromFlag(cmd, &from)
	cmd.Flags().Var(&newOwner, "to", "address of the new owner")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func transferOwnership(_ *cobra.Command, args []string) error {
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		return s.TransferOwnership(from.Address, newOwner.Address)
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Sale %s is now owned by %s", args[0], newOwner.Hex())
	return nil
}
