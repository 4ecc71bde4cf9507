// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package salecmd

import (
	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	beginTime       uint64
	durationMinutes uint64
)

// minter sale enable-private
func newEnablePrivateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enable-private [saleName]",
		Short: "Schedule the private sale window",
		Long: `The sale enable-private command opens the signature gated private window
at --begin for --minutes. Calling it again replaces the window.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         enablePrivate,
	}
	addWindowFlags(cmd)
	return cmd
}

// minter sale enable-public
func newEnablePublicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enable-public [saleName]",
		Short: "Schedule the public sale window",
		Long: `The sale enable-public command opens the public window at --begin for
--minutes. The window only admits mints once the public sale has been
activated with toggle-auction.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         enablePublic,
	}
	addWindowFlags(cmd)
	return cmd
}

func addWindowFlags(cmd *cobra.Command) {
	flags.AddFromFlag(cmd, &from)
	cmd.Flags().Uint64Var(&beginTime, "begin", 0, "unix time the window opens")
	cmd.Flags().Uint64Var(&durationMinutes, "minutes", 0, "length of the window in minutes")
	_ = cmd.MarkFlagRequired("begin")
	_ = cmd.MarkFlagRequired("minutes")
}

func enablePrivate(_ *cobra.Command, args []string) error {
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		return s.EnablePrivateSale(from.Address, beginTime, durationMinutes)
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Private sale of %s opens at %d for %d minutes", args[0], beginTime, durationMinutes)
	return nil
}

func enablePublic(_ *cobra.Command, args []string) error {
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		return s.EnablePublicSale(from.Address, beginTime, durationMinutes)
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Public sale of %s opens at %d for %d minutes", args[0], beginTime, durationMinutes)
	return nil
}
