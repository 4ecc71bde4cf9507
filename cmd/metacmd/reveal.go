// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package metacmd

import (
	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

var seed uint64

// minter meta seed
func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed [saleName]",
		Short: "Set the shuffle seed",
		Long: `The meta seed command sets the seed of the metadata permutation. Setting
a new seed reshuffles every non-vault unit.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         setSeed,
	}
	flags.AddFromFlag(cmd, &from)
	cmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed")
	_ = cmd.MarkFlagRequired("seed")
	return cmd
}

// minter meta reveal
func newRevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "reveal [saleName]",
		Short:        "Reveal the unit metadata",
		Long:         "The meta reveal command switches token URIs from the pre-reveal URI to the base URI. It cannot be undone.",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         reveal,
	}
	flags.AddFromFlag(cmd, &from)
	return cmd
}

func setSeed(_ *cobra.Command, args []string) error {
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		return s.SetSeed(from.Address, seed)
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Shuffle seed of %s set", args[0])
	return nil
}

func reveal(_ *cobra.Command, args []string) error {
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		return s.Reveal(from.Address)
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Metadata of %s revealed", args[0])
	return nil
}
