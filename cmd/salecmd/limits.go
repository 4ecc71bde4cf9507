// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package salecmd

import (
	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

const (
	privateTxFlag     = "private-tx"
	privateWalletFlag = "private-wallet"
	publicTxFlag      = "public-tx"
	publicWalletFlag  = "public-wallet"
)

var limitValues models.TransactionLimits

// minter sale limits
func newLimitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limits [saleName]",
		Short: "Set the per transaction and per wallet limits",
		Long: `The sale limits command replaces the mint limits of a sale. Limits that
are not given keep their current value.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         setLimits,
	}
	flags.AddFromFlag(cmd, &from)
	cmd.Flags().Uint64Var(&limitValues.PrivateTx, privateTxFlag, 0, "max units per private mint")
	cmd.Flags().Uint64Var(&limitValues.PrivateWallet, privateWalletFlag, 0, "max private units per wallet")
	cmd.Flags().Uint64Var(&limitValues.PublicTx, publicTxFlag, 0, "max units per public mint")
	cmd.Flags().Uint64Var(&limitValues.PublicWallet, publicWalletFlag, 0, "max public units per wallet")
	return cmd
}

func setLimits(cmd *cobra.Command, args []string) error {
	var applied models.TransactionLimits
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		applied = s.Limits()
		changed := cmd.Flags().Changed
		if changed(privateTxFlag) {
			applied.PrivateTx = limitValues.PrivateTx
		}
		if changed(privateWalletFlag) {
			applied.PrivateWallet = limitValues.PrivateWallet
		}
		if changed(publicTxFlag) {
			applied.PublicTx = limitValues.PublicTx
		}
		if changed(publicWalletFlag) {
			applied.PublicWallet = limitValues.PublicWallet
		}
		return s.SetTransactionLimit(from.Address, applied)
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Limits of %s: private %s, public %s", args[0],
		limitsString(applied.PrivateTx, applied.PrivateWallet),
		limitsString(applied.PublicTx, applied.PublicWallet))
	return nil
}
