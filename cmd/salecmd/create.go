// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package salecmd

import (
	"fmt"

	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/safety"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	saleFile string
	owner    flags.Address
	treasury flags.Address
	signer   flags.Address
)

// minter sale create
func newCreateCmd() *cobra.Command {
	owner, treasury, signer = flags.Address{}, flags.Address{}, flags.Address{}
	cmd := &cobra.Command{
		Use:   "create [saleName]",
		Short: "Create a new sale from a definition file",
		Long: `The sale create command deploys a new sale from a YAML definition.

The definition holds the supply caps, the transaction limits, the prices in
wei, the decay interval of the Dutch auction and optionally the signing
domain and metadata URIs:

  maxSupply: 10000
  maxReserve: 100
  vaultReserveSize: 50
  maxPrivate: 3000
  reduceIntervalSeconds: 300
  limits: {privateTx: 3, privateWallet: 3, publicTx: 5, publicWallet: 10}
  prices:
    private: "80000000000000000"
    public: "100000000000000000"
    auctionStart: "300000000000000000"
    auctionStep: "20000000000000000"
    auctionFloor: "100000000000000000"
  domain: {chainId: 1, verifyingContract: "0x..."}

Domain fields missing from the file fall back to the CLI configuration.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         createSale,
	}
	cmd.Flags().StringVar(&saleFile, "config", "", "path to the YAML sale definition")
	cmd.Flags().Var(&owner, "owner", "owner address of the sale")
	cmd.Flags().Var(&treasury, "treasury", "address receiving withdrawn proceeds")
	cmd.Flags().Var(&signer, "signer", "whitelist signing address (can be set later)")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("treasury")
	return cmd
}

func createSale(_ *cobra.Command, args []string) error {
	saleName := args[0]
	if err := safety.ValidateSaleName(saleName); err != nil {
		return err
	}
	if app.SaleExists(saleName) {
		return fmt.Errorf("%w: %s", constants.ErrSaleExists, saleName)
	}

	sf, err := models.LoadSaleFile(saleFile)
	if err != nil {
		return err
	}
	cfg, err := sf.SaleConfig()
	if err != nil {
		return err
	}
	domain, err := sf.DomainParams(app.Conf.DomainDefaults())
	if err != nil {
		return err
	}

	s, err := sale.New(sale.Params{
		Name:         saleName,
		Owner:        owner.Address,
		Treasury:     treasury.Address,
		Signer:       signer.Address,
		Domain:       domain,
		Config:       cfg,
		PreRevealURI: sf.PreRevealURI,
		BaseURI:      sf.BaseURI,
	}, sale.Options{
		Clock:  app.Clock,
		Logger: app.Log,
	})
	if err != nil {
		return err
	}
	st := s.Snapshot()
	if err := app.CreateSale(&st); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Created sale %s with a supply of %s units", saleName,
		ux.ConvertToStringWithThousandSeparator(cfg.MaxSupply))
	return nil
}
