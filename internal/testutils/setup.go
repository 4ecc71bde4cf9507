// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luxfi/minter/pkg/constants"
	"github.com/stretchr/testify/require"
)

// SaleDefinition is a small sale: 100 units, 10 reserve of which 5 are vault
// ids, 20 private, prices 80/100 wei and an auction from 300 down 20 to 100.
const SaleDefinition = `maxSupply: 100
maxReserve: 10
vaultReserveSize: 5
maxPrivate: 20
reduceIntervalSeconds: 300
limits:
  privateTx: 3
  privateWallet: 3
  publicTx: 3
  publicWallet: 3
prices:
  private: "80"
  public: "100"
  auctionStart: "300"
  auctionStep: "20"
  auctionFloor: "100"
preRevealURI: ipfs://hidden.json
baseURI: ipfs://meta/
`

// SetupBaseDir creates a throwaway base directory with an empty sales dir.
func SetupBaseDir(t *testing.T) string {
	t.Helper()
	baseDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, constants.SalesDir), constants.DefaultPerms755))
	return baseDir
}

// WriteSaleDefinition writes definition as a YAML sale file and returns its path.
func WriteSaleDefinition(t *testing.T, definition string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sale.yaml")
	require.NoError(t, os.WriteFile(path, []byte(definition), constants.WriteReadReadPerms))
	return path
}
