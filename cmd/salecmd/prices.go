// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package salecmd

import (
	"math/big"

	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	privatePrice flags.Wei
	publicPrice  flags.Wei
	startPrice   flags.Wei
	stepPrice    flags.Wei
	floorPrice   flags.Wei
)

// minter sale prices
func newPricesCmd() *cobra.Command {
	privatePrice, publicPrice, startPrice, stepPrice, floorPrice = flags.Wei{}, flags.Wei{}, flags.Wei{}, flags.Wei{}, flags.Wei{}
	cmd := &cobra.Command{
		Use:   "prices [saleName]",
		Short: "Set the sale prices in wei",
		Long: `The sale prices command replaces the fixed prices and the Dutch auction
parameters of a sale. Prices that are not given keep their current value.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         setPrices,
	}
	flags.AddFromFlag(cmd, &from)
	cmd.Flags().Var(&privatePrice, "private", "private sale price")
	cmd.Flags().Var(&publicPrice, "public", "fixed public sale price")
	cmd.Flags().Var(&startPrice, "start", "Dutch auction start price")
	cmd.Flags().Var(&stepPrice, "step", "Dutch auction price step")
	cmd.Flags().Var(&floorPrice, "floor", "Dutch auction floor price")
	return cmd
}

func setPrices(_ *cobra.Command, args []string) error {
	var applied models.Prices
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		applied = s.Prices()
		for _, p := range []struct {
			flag *flags.Wei
			dst  **big.Int
		}{
			{&privatePrice, &applied.Private},
			{&publicPrice, &applied.Public},
			{&startPrice, &applied.AuctionStart},
			{&stepPrice, &applied.AuctionStep},
			{&floorPrice, &applied.AuctionFloor},
		} {
			if p.flag.Int != nil {
				*p.dst = p.flag.Int
			}
		}
		return s.SetPrices(from.Address, applied)
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Prices of %s: private %s, public %s, auction %s down %s to %s", args[0],
		ux.FormatWei(applied.Private), ux.FormatWei(applied.Public),
		ux.FormatWei(applied.AuctionStart), ux.FormatWei(applied.AuctionStep), ux.FormatWei(applied.AuctionFloor))
	return nil
}
