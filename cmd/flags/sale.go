// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	fromFlag = "from"
)

// AddFromFlag registers the required --from caller address.
func AddFromFlag(cmd *cobra.Command, from *Address) {
	cmd.Flags().Var(from, fromFlag, "address the operation is submitted from")
	_ = cmd.MarkFlagRequired(fromFlag)
}

// RequireAddress fails when an address flag was not given.
func RequireAddress(name string, a *Address) error {
	if !a.IsSet() {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}
