// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package salecmd

import (
	"strconv"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

// minter sale status
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [saleName]",
		Short: "Show the phase, price and counters of a sale",
		Long: `The sale status command prints a consistent view of a sale at one
instant. Use the global --at flag to evaluate it at another unix time.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         printStatus,
	}
}

func printStatus(_ *cobra.Command, args []string) error {
	s, err := app.OpenSale(args[0], nil)
	if err != nil {
		return err
	}
	st := s.Status()
	cfg := st.Config

	pairs := [][2]string{
		{"Name", st.Name},
		{"Time", strconv.FormatUint(st.Now, 10)},
		{"Phase", st.Phase.String()},
		{"Pricing", st.Pricing.Mode.String()},
		{"Price", ux.FormatWei(st.Price)},
		{"Owner", st.Owner.Hex()},
		{"Treasury", st.Treasury.Hex()},
		{"Signer", addressOrUnset(st.Signer)},
		{"Minted", ux.ConvertToStringWithThousandSeparator(st.TotalSupply) + " / " +
			ux.ConvertToStringWithThousandSeparator(cfg.MaxSupply)},
		{"Reserve", ux.ConvertToStringWithThousandSeparator(st.ReserveMinted) + " / " +
			ux.ConvertToStringWithThousandSeparator(cfg.MaxReserve)},
		{"Private", ux.ConvertToStringWithThousandSeparator(st.PrivateSupply) + " / " +
			ux.ConvertToStringWithThousandSeparator(cfg.MaxPrivate)},
		{"Private Window", windowString(st.PrivateWindow)},
		{"Public Window", windowString(st.PublicWindow)},
		{"Dutch Auction", strconv.FormatBool(st.DutchAuction)},
		{"Public Activated", strconv.FormatBool(st.PublicActivated)},
		{"Private Limits", limitsString(cfg.Limits.PrivateTx, cfg.Limits.PrivateWallet)},
		{"Public Limits", limitsString(cfg.Limits.PublicTx, cfg.Limits.PublicWallet)},
		{"Reduce Interval", strconv.FormatUint(cfg.ReduceIntervalSeconds, 10) + "s"},
		{"Seed", strconv.FormatUint(st.Seed, 10)},
		{"Revealed", strconv.FormatBool(st.Revealed)},
		{"Balance", ux.FormatWei(st.Balance)},
	}
	return ux.KeyValueTable(ux.Logger.Writer(), pairs)
}

func addressOrUnset(a common.Address) string {
	if a == (common.Address{}) {
		return "unset"
	}
	return a.Hex()
}

func windowString(w models.SaleWindow) string {
	if !w.Configured() {
		return "not scheduled"
	}
	return strconv.FormatUint(w.BeginTime, 10) + " - " + strconv.FormatUint(w.EndTime, 10)
}

func limitsString(tx, wallet uint64) string {
	return strconv.FormatUint(tx, 10) + " per tx, " + strconv.FormatUint(wallet, 10) + " per wallet"
}
