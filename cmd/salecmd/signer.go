// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package salecmd

import (
	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

var signingAddress flags.Address

// minter sale signer
func newSignerCmd() *cobra.Command {
	signingAddress = flags.Address{}
	cmd := &cobra.Command{
		Use:   "signer [saleName]",
		Short: "Set the whitelist signing address",
		Long: `The sale signer command sets the address whose EIP-712 signatures admit
wallets to the private sale. Private mints fail with SignedNotEnabled until
it is set.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         setSigner,
	}
	flags.AddFromFlag(cmd, &from)
	cmd.Flags().Var(&signingAddress, "address", "whitelist signing address")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}

func setSigner(_ *cobra.Command, args []string) error {
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		return s.SetSigningAddress(from.Address, signingAddress.Address)
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Whitelist of %s is signed by %s", args[0], signingAddress.Hex())
	return nil
}
