// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package whitelistcmd

import (
	"fmt"

	"github.com/luxfi/minter/pkg/application"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/whitelist"
	"github.com/spf13/cobra"
)

var (
	app *application.Minter

	saleName string
)

// minter whitelist
func NewCmd(injectedApp *application.Minter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelist",
		Short: "Sign and verify private sale allowances",
		Long: `The whitelist command suite produces and checks the EIP-712 signatures
that admit wallets to the private sale.

Whitelist files hold one JSON object per line:

  {"address":"0x...","signature":"0x..."}

The signing domain is taken from --sale when given, otherwise from the CLI
configuration (chain-id, verifying-contract, domain-name, domain-version).`,
		Run: func(cmd *cobra.Command, _ []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.PersistentFlags().StringVar(&saleName, "sale", "", "take the signing domain from this sale")
	// whitelist sign
	cmd.AddCommand(newSignCmd())
	// whitelist verify
	cmd.AddCommand(newVerifyCmd())
	return cmd
}

func signingDomain() (whitelist.Domain, error) {
	var params models.DomainParams
	if saleName != "" {
		s, err := app.OpenSale(saleName, nil)
		if err != nil {
			return whitelist.Domain{}, err
		}
		params = s.Domain()
	} else {
		params = app.Conf.DomainDefaults()
	}
	return whitelist.DomainFromParams(params), nil
}
