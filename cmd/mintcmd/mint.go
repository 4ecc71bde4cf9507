// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package mintcmd

import (
	"errors"
	"fmt"

	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/application"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/luxfi/minter/pkg/whitelist"
	"github.com/spf13/cobra"
)

var (
	app *application.Minter

	from          flags.Address
	quantity      uint64
	value         flags.Wei
	signature     flags.Bytes
	whitelistFile string
)

var errSignatureSource = errors.New("use only one of --signature and --whitelist")

// minter mint
func NewCmd(injectedApp *application.Minter) *cobra.Command {
	app = injectedApp
	from, value, signature = flags.Address{}, flags.Wei{}, flags.Bytes{}
	cmd := &cobra.Command{
		Use:   "mint [saleName]",
		Short: "Buy units in the active sale phase",
		Long: `The mint command buys --quantity units for the --from wallet.

The payment must equal the current unit price times the quantity exactly.
Without --value the payment is priced at the moment the mint is applied.
During the private sale the wallet needs a whitelist signature, given either
directly with --signature or looked up in a whitelist file with --whitelist.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         mint,
	}
	flags.AddFromFlag(cmd, &from)
	cmd.Flags().Uint64Var(&quantity, "quantity", 1, "number of units to mint")
	cmd.Flags().Var(&value, "value", "payment in wei (default price times quantity)")
	cmd.Flags().Var(&signature, "signature", "hex whitelist signature of the wallet")
	cmd.Flags().StringVar(&whitelistFile, "whitelist", "", "whitelist file to look the signature up in")
	return cmd
}

func mint(_ *cobra.Command, args []string) error {
	sig, err := walletSignature()
	if err != nil {
		return err
	}

	var receipt models.MintReceipt
	err = app.WithSale(args[0], func(s *sale.Sale) error {
		if value.Int == nil {
			receipt, err = s.MintAtCurrentPrice(from.Address, quantity, sig)
			return err
		}
		receipt, err = s.Mint(from.Address, quantity, sig, value.Int)
		return err
	})
	if err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Minted units %d to %d of %s in %s for %s", receipt.FirstID, receipt.LastID,
		args[0], receipt.Phase, ux.FormatWei(receipt.Total))
	return nil
}

func walletSignature() ([]byte, error) {
	switch {
	case whitelistFile != "" && signature.Bytes != nil:
		return nil, errSignatureSource
	case whitelistFile != "":
		entries, err := whitelist.ReadFile(whitelistFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read whitelist: %w", err)
		}
		return whitelist.Lookup(entries, from.Address)
	default:
		return signature.Bytes, nil
	}
}
