// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package mintcmd

import (
	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/application"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

var airdropQuantity uint64

// minter airdrop
func NewAirdropCmd(injectedApp *application.Minter) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "airdrop [saleName] [address]...",
		Short: "Mint reserve units to recipients",
		Long: `The airdrop command mints --quantity reserve units to every recipient.
Only the owner can airdrop, and all recipients together may not exceed the
remaining reserve. Airdrops are free and ignore sale phases.`,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(2),
		RunE:         airdrop,
	}
	flags.AddFromFlag(cmd, &from)
	cmd.Flags().Uint64Var(&airdropQuantity, "quantity", 1, "units per recipient")
	return cmd
}

func airdrop(_ *cobra.Command, args []string) error {
	recipients, err := flags.ParseAddresses(args[1:])
	if err != nil {
		return err
	}
	var receipts []models.MintReceipt
	err = app.WithSale(args[0], func(s *sale.Sale) error {
		receipts, err = s.Airdrop(from.Address, recipients, airdropQuantity)
		return err
	})
	if err != nil {
		return err
	}
	table := ux.NewTable(ux.Logger.Writer(), "Recipient", "First ID", "Last ID")
	for _, r := range receipts {
		table.AddRow(r.Wallet.Hex(), ux.ConvertToStringWithThousandSeparator(r.FirstID),
			ux.ConvertToStringWithThousandSeparator(r.LastID))
	}
	if err := table.Render(); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Airdropped %d units of %s", airdropQuantity*uint64(len(receipts)), args[0])
	return nil
}
