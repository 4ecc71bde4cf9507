// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package salecmd

import (
	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

var reduceSeconds uint64

// minter sale toggle-auction
func newToggleAuctionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle-auction [saleName]",
		Short: "Flip Dutch auction pricing of the public sale",
		Long: `The sale toggle-auction command flips Dutch auction pricing of the public
window. The first toggle also activates the public sale, which stays active
when the auction is switched off again and then sells at the fixed public
price.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         toggleAuction,
	}
	flags.AddFromFlag(cmd, &from)
	return cmd
}

// minter sale reduce-time
func newReduceTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "reduce-time [saleName]",
		Short:        "Set the decay interval of the Dutch auction",
		Long:         "The sale reduce-time command sets how many seconds pass between two price steps of the Dutch auction.",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         setReduceTime,
	}
	flags.AddFromFlag(cmd, &from)
	cmd.Flags().Uint64Var(&reduceSeconds, "seconds", 0, "seconds between two price steps")
	_ = cmd.MarkFlagRequired("seconds")
	return cmd
}

func toggleAuction(_ *cobra.Command, args []string) error {
	var enabled bool
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		var err error
		enabled, err = s.TogglePublicDutchAuction(from.Address)
		return err
	})
	if err != nil {
		return err
	}
	if enabled {
		ux.Logger.GreenCheckmarkToUser("Dutch auction of %s enabled", args[0])
	} else {
		ux.Logger.GreenCheckmarkToUser("Dutch auction of %s disabled, public sale sells at the fixed price", args[0])
	}
	return nil
}

func setReduceTime(_ *cobra.Command, args []string) error {
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		return s.SetReduceTime(from.Address, reduceSeconds)
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Auction price of %s now steps every %d seconds", args[0], reduceSeconds)
	return nil
}
