// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package safety provides deletion operations that protect sale state.
package safety

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luxfi/minter/pkg/constants"
)

// ValidateSaleName accepts only names that map to a single directory entry
// inside the sales directory.
func ValidateSaleName(saleName string) error {
	if saleName == "" || saleName == "." || saleName == ".." {
		return fmt.Errorf("%w: invalid sale name %q", constants.ErrInvalidValue, saleName)
	}
	if filepath.Base(saleName) != saleName || strings.ContainsAny(saleName, `/\`) {
		return fmt.Errorf("%w: sale name cannot contain path separators: %s", constants.ErrInvalidValue, saleName)
	}
	return nil
}

// RemoveSale removes the directory of one sale. The target must be a direct
// subdirectory of the sales directory, never the sales directory itself.
func RemoveSale(baseDir, saleName string) error {
	if err := ValidateSaleName(saleName); err != nil {
		return err
	}

	salesDir := filepath.Join(baseDir, constants.SalesDir)
	absSales, err := filepath.Abs(salesDir)
	if err != nil {
		return fmt.Errorf("failed to resolve sales directory: %w", err)
	}
	absTarget, err := filepath.Abs(filepath.Join(salesDir, saleName))
	if err != nil {
		return fmt.Errorf("failed to resolve sale directory: %w", err)
	}

	if absTarget == absSales {
		return fmt.Errorf("SAFETY: refusing to delete the entire sales directory")
	}
	if filepath.Dir(absTarget) != absSales {
		return fmt.Errorf("SAFETY: sale must be directly inside sales directory")
	}

	return os.RemoveAll(absTarget)
}
