// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package salecmd

import (
	"fmt"

	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

var forceDelete bool

// minter sale delete
func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [saleName]",
		Short: "Delete a stored sale",
		Long: `The sale delete command removes the state and payout journal of a sale.
A sale that still holds a balance is only deleted with --force.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         deleteSale,
	}
	cmd.Flags().BoolVarP(&forceDelete, "force", "f", false, "delete even if the sale holds a balance")
	return cmd
}

func deleteSale(_ *cobra.Command, args []string) error {
	saleName := args[0]
	s, err := app.OpenSale(saleName, nil)
	if err != nil {
		return err
	}
	if balance := s.Balance(); balance.Sign() > 0 && !forceDelete {
		return fmt.Errorf("sale %s still holds %s, withdraw it first or use --force", saleName, ux.FormatWei(balance))
	}
	if err := app.DeleteSale(saleName); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Deleted sale %s", saleName)
	return nil
}
