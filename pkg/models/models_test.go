// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/stretchr/testify/require"
)

const saleYAML = `
maxSupply: 10000
maxReserve: 200
vaultReserveSize: 50
maxPrivate: 3000
reduceIntervalSeconds: 300
limits:
  privateTx: 3
  privateWallet: 3
  publicTx: 3
  publicWallet: 3
prices:
  private: "80000000000000000"
  public: "100000000000000000"
  auctionStart: "300000000000000000"
  auctionStep: "20000000000000000"
  auctionFloor: "100000000000000000"
domain:
  chainId: 4
  verifyingContract: "0x94021138093918b6E0DDb275272bD638C22df912"
preRevealURI: "ipfs://hidden"
baseURI: "ipfs://base/"
`

func TestParseSaleFile(t *testing.T) {
	require := require.New(t)
	sf, err := ParseSaleFile([]byte(saleYAML))
	require.NoError(err)

	cfg, err := sf.SaleConfig()
	require.NoError(err)
	require.Equal(uint64(10000), cfg.MaxSupply)
	require.Equal(uint64(50), cfg.VaultReserveSize)
	require.Equal(TransactionLimits{3, 3, 3, 3}, cfg.Limits)
	require.Equal(0, cfg.Prices.AuctionStart.Cmp(big.NewInt(300000000000000000)))
	require.Equal("ipfs://hidden", sf.PreRevealURI)

	d, err := sf.DomainParams(DomainParams{})
	require.NoError(err)
	require.Equal(constants.DefaultDomainName, d.Name)
	require.Equal(constants.DefaultDomainVersion, d.Version)
	require.Equal(uint64(4), d.ChainID)
	require.Equal(common.HexToAddress("0x94021138093918b6E0DDb275272bD638C22df912"), d.VerifyingContract)

	d, err = (&SaleFile{}).DomainParams(DomainParams{Version: "2", ChainID: 7})
	require.NoError(err)
	require.Equal(constants.DefaultDomainName, d.Name)
	require.Equal("2", d.Version)
	require.Equal(uint64(7), d.ChainID)
}

func TestSaleConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  SaleConfig
		ok   bool
	}{
		{"ordered", SaleConfig{MaxSupply: 100, MaxReserve: 10, VaultReserveSize: 5, MaxPrivate: 50}, true},
		{"zero supply", SaleConfig{}, false},
		{"reserve above supply", SaleConfig{MaxSupply: 10, MaxReserve: 11}, false},
		{"vault above reserve", SaleConfig{MaxSupply: 10, MaxReserve: 2, VaultReserveSize: 3}, false},
		{"private above supply", SaleConfig{MaxSupply: 10, MaxPrivate: 11}, false},
		{"negative price", SaleConfig{MaxSupply: 10, Prices: Prices{Public: big.NewInt(-1)}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, constants.ErrInvalidValue)
		})
	}
}

func TestParseWei(t *testing.T) {
	require := require.New(t)
	v, err := ParseWei("")
	require.NoError(err)
	require.Zero(v.Sign())
	_, err = ParseWei("-5")
	require.ErrorIs(err, constants.ErrInvalidValue)
	_, err = ParseWei("0x10")
	require.ErrorIs(err, constants.ErrInvalidValue)
}

func TestSaleWindow(t *testing.T) {
	require := require.New(t)
	var w SaleWindow
	require.False(w.Configured())
	require.False(w.Active(0))

	w = NewSaleWindow(1000, 5)
	require.Equal(uint64(1300), w.EndTime)
	require.False(w.Active(999))
	require.True(w.Active(1000))
	require.True(w.Active(1299))
	require.False(w.Active(1300))
	require.Equal(uint64(0), w.Elapsed(10))
	require.Equal(uint64(650), w.Elapsed(1650))
}

func TestSaleStateJSONAddressKeys(t *testing.T) {
	require := require.New(t)
	wallet := common.HexToAddress("0xA7eC6bE5bECD2B3d549826444ABe0EDB78E4Fbb2")
	st := SaleState{
		Ledger:  LedgerState{PrivateMinted: map[common.Address]uint64{wallet: 3}},
		Balance: big.NewInt(42),
	}
	bs, err := json.Marshal(st)
	require.NoError(err)

	var control SaleState
	require.NoError(json.Unmarshal(bs, &control))
	require.Equal(uint64(3), control.Ledger.PrivateMinted[wallet])
	require.Equal(0, control.Balance.Cmp(big.NewInt(42)))
}
