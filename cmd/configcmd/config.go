// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"
	"strings"

	"github.com/luxfi/minter/pkg/application"
	"github.com/luxfi/minter/pkg/config"
	"github.com/spf13/cobra"
)

var app *application.Minter

func NewCmd(injectedApp *application.Minter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for minter",
		Long: `Customize configuration for minter.

Supported keys:
  ` + strings.Join(config.Keys(), "\n  ") + `

Every key can also be set with a MINTER_ prefixed environment variable,
e.g. MINTER_CHAIN_ID.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
