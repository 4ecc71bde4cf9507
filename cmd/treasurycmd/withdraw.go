// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package treasurycmd

import (
	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

// minter treasury withdraw
func newWithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [saleName]",
		Short: "Release the whole balance to the treasury",
		Long: `The treasury withdraw command pays the whole balance of a sale to --to,
which must be the treasury address of the sale. Only the owner can withdraw.
A withdraw of an empty balance succeeds without recording a payout.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         withdraw,
	}
	flags.AddFromFlag(cmd, &from)
	cmd.Flags().Var(&destination, "to", "treasury address to pay")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func withdraw(cmd *cobra.Command, args []string) error {
	var payout models.Payout
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		var err error
		payout, err = s.Withdraw(cmd.Context(), from.Address, destination.Address)
		return err
	})
	if err != nil {
		return err
	}
	if payout.Amount == nil || payout.Amount.Sign() == 0 {
		ux.Logger.PrintToUser("Nothing to withdraw from %s", args[0])
		return nil
	}
	ux.Logger.GreenCheckmarkToUser("Withdrew %s from %s to %s", ux.FormatWei(payout.Amount), args[0],
		payout.Destination.Hex())
	return nil
}
