// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package salecmd

import (
	"fmt"

	luxlog "github.com/luxfi/log"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
)

// minter sale list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List all stored sales",
		Long:         "Display a table of all stored sales with their phase, supply and balance.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         listSales,
	}
}

func listSales(_ *cobra.Command, _ []string) error {
	names, err := app.GetSales()
	if err != nil {
		return fmt.Errorf("failed to read sales directory: %w", err)
	}
	if len(names) == 0 {
		ux.Logger.PrintToUser("No sales configured")
		return nil
	}

	table := ux.NewTable(ux.Logger.Writer(), "Name", "Phase", "Minted", "Max Supply", "Balance")
	for _, name := range names {
		s, err := app.OpenSale(name, nil)
		if err != nil {
			app.Log.Warn("skipping unreadable sale", luxlog.String("sale", name), luxlog.Err(err))
			ux.Logger.RedXToUser("Skipping sale %s: %s", name, err)
			continue
		}
		st := s.Status()
		table.AddRow(
			name,
			st.Phase.String(),
			ux.ConvertToStringWithThousandSeparator(st.TotalSupply),
			ux.ConvertToStringWithThousandSeparator(st.Config.MaxSupply),
			ux.FormatWei(st.Balance),
		)
	}
	return table.Render()
}
