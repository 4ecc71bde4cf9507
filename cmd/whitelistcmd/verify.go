// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package whitelistcmd

import (
	"fmt"

	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/luxfi/minter/pkg/whitelist"
	"github.com/spf13/cobra"
)

var (
	signerAddress flags.Address
	listFile      string
)

// minter whitelist verify
func newVerifyCmd() *cobra.Command {
	signerAddress = flags.Address{}
	cmd := &cobra.Command{
		Use:          "verify",
		Short:        "Check every signature of a whitelist file",
		Long:         "The whitelist verify command checks that every entry of --file was signed by --signer.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         verifyWhitelist,
	}
	cmd.Flags().Var(&signerAddress, "signer", "expected signing address")
	cmd.Flags().StringVar(&listFile, "file", "", "whitelist file to check")
	_ = cmd.MarkFlagRequired("signer")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func verifyWhitelist(_ *cobra.Command, _ []string) error {
	entries, err := whitelist.ReadFile(listFile)
	if err != nil {
		return fmt.Errorf("failed to read whitelist: %w", err)
	}
	domain, err := signingDomain()
	if err != nil {
		return err
	}

	invalid := 0
	table := ux.NewTable(ux.Logger.Writer(), "Address", "Valid")
	for _, e := range entries {
		valid := "yes"
		if err := whitelist.Verify(domain, signerAddress.Address, e.Address, e.Signature); err != nil {
			valid = "no"
			invalid++
		}
		table.AddRow(e.Address.Hex(), valid)
	}
	if err := table.Render(); err != nil {
		return err
	}
	if invalid > 0 {
		ux.Logger.RedXToUser("%d of %d entries are not signed by %s", invalid, len(entries), signerAddress.Hex())
		return fmt.Errorf("%w: %d of %d entries", constants.ErrInvalidSignature, invalid, len(entries))
	}
	ux.Logger.GreenCheckmarkToUser("All %d entries are signed by %s", len(entries), signerAddress.Hex())
	return nil
}
