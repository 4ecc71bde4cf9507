// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package metacmd

import (
	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

var uri string

// minter meta pre-uri
func newPreRevealURICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pre-uri [saleName]",
		Short:        "Set the URI served before the reveal",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         setPreRevealURI,
	}
	flags.AddFromFlag(cmd, &from)
	cmd.Flags().StringVar(&uri, "uri", "", "metadata URI shared by every unit")
	_ = cmd.MarkFlagRequired("uri")
	return cmd
}

// minter meta base-uri
func newBaseURICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "base-uri [saleName]",
		Short:        "Set the URI prefix of revealed metadata",
		Long:         "The meta base-uri command sets the prefix revealed token URIs are built from: <base><metaId>.json.",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         setBaseURI,
	}
	flags.AddFromFlag(cmd, &from)
	cmd.Flags().StringVar(&uri, "uri", "", "metadata URI prefix")
	_ = cmd.MarkFlagRequired("uri")
	return cmd
}

// minter meta uri
func newURICmd() *cobra.Command {
	return &cobra.Command{
		Use:          "uri [saleName] [unitId]",
		Short:        "Print the token URI of a unit",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE:         printURI,
	}
}

// minter meta id
func newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "id [saleName] [unitId]",
		Short:        "Print the metadata id a unit maps to",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE:         printMetaID,
	}
}

func setPreRevealURI(_ *cobra.Command, args []string) error {
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		return s.SetPreRevealURI(from.Address, uri)
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Pre-reveal URI of %s set to %s", args[0], uri)
	return nil
}

func setBaseURI(_ *cobra.Command, args []string) error {
	err := app.WithSale(args[0], func(s *sale.Sale) error {
		return s.SetBaseURI(from.Address, uri)
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Base URI of %s set to %s", args[0], uri)
	return nil
}

func printURI(_ *cobra.Command, args []string) error {
	id, err := parseUnitID(args[1])
	if err != nil {
		return err
	}
	s, err := app.OpenSale(args[0], nil)
	if err != nil {
		return err
	}
	tokenURI, err := s.TokenURI(id)
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("%s", tokenURI)
	return nil
}

func printMetaID(_ *cobra.Command, args []string) error {
	id, err := parseUnitID(args[1])
	if err != nil {
		return err
	}
	s, err := app.OpenSale(args[0], nil)
	if err != nil {
		return err
	}
	metaID, err := s.MetaID(id)
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("%d", metaID)
	return nil
}
