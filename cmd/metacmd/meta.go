// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package metacmd

import (
	"fmt"
	"strconv"

	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/application"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/spf13/cobra"
)

var (
	app *application.Minter

	from flags.Address
)

// minter meta
func NewCmd(injectedApp *application.Minter) *cobra.Command {
	from = flags.Address{}
	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Seed, reveal and resolve unit metadata",
		Long: `The meta command suite manages the metadata of sold units.

Unit ids above the vault reserve are mapped to metadata ids by a seeded
permutation. Until the sale is revealed every unit resolves to the
pre-reveal URI.`,
		Run: func(cmd *cobra.Command, _ []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	// meta seed
	cmd.AddCommand(newSeedCmd())
	// meta reveal
	cmd.AddCommand(newRevealCmd())
	// meta pre-uri, meta base-uri
	cmd.AddCommand(newPreRevealURICmd())
	cmd.AddCommand(newBaseURICmd())
	// meta uri, meta id
	cmd.AddCommand(newURICmd())
	cmd.AddCommand(newIDCmd())
	return cmd
}

func parseUnitID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unit id %q", constants.ErrInvalidValue, arg)
	}
	return id, nil
}
