// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"math/big"
	"os"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/minter/pkg/constants"
	"gopkg.in/yaml.v3"
)

// SaleFile is the YAML sale definition accepted by `minter sale create`.
// Prices are decimal wei strings.
type SaleFile struct {
	MaxSupply             uint64 `yaml:"maxSupply"`
	MaxReserve            uint64 `yaml:"maxReserve"`
	VaultReserveSize      uint64 `yaml:"vaultReserveSize"`
	MaxPrivate            uint64 `yaml:"maxPrivate"`
	ReduceIntervalSeconds uint64 `yaml:"reduceIntervalSeconds"`

	Limits struct {
		PrivateTx     uint64 `yaml:"privateTx"`
		PrivateWallet uint64 `yaml:"privateWallet"`
		PublicTx      uint64 `yaml:"publicTx"`
		PublicWallet  uint64 `yaml:"publicWallet"`
	} `yaml:"limits"`

	Prices struct {
		Private      string `yaml:"private"`
		Public       string `yaml:"public"`
		AuctionStart string `yaml:"auctionStart"`
		AuctionStep  string `yaml:"auctionStep"`
		AuctionFloor string `yaml:"auctionFloor"`
	} `yaml:"prices"`

	Domain struct {
		Name              string `yaml:"name"`
		Version           string `yaml:"version"`
		ChainID           uint64 `yaml:"chainId"`
		VerifyingContract string `yaml:"verifyingContract"`
	} `yaml:"domain"`

	PreRevealURI string `yaml:"preRevealURI"`
	BaseURI      string `yaml:"baseURI"`
}

func LoadSaleFile(path string) (*SaleFile, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed reading sale definition %s: %w", path, err)
	}
	return ParseSaleFile(bs)
}

func ParseSaleFile(bs []byte) (*SaleFile, error) {
	var sf SaleFile
	if err := yaml.Unmarshal(bs, &sf); err != nil {
		return nil, fmt.Errorf("failed decoding sale definition: %w", err)
	}
	return &sf, nil
}

// SaleConfig converts the file into a validated SaleConfig.
func (sf *SaleFile) SaleConfig() (SaleConfig, error) {
	cfg := SaleConfig{
		MaxSupply:             sf.MaxSupply,
		MaxReserve:            sf.MaxReserve,
		VaultReserveSize:      sf.VaultReserveSize,
		MaxPrivate:            sf.MaxPrivate,
		ReduceIntervalSeconds: sf.ReduceIntervalSeconds,
		Limits: TransactionLimits{
			PrivateTx:     sf.Limits.PrivateTx,
			PrivateWallet: sf.Limits.PrivateWallet,
			PublicTx:      sf.Limits.PublicTx,
			PublicWallet:  sf.Limits.PublicWallet,
		},
	}
	var err error
	fields := []struct {
		name string
		raw  string
		dst  **big.Int
	}{
		{"private", sf.Prices.Private, &cfg.Prices.Private},
		{"public", sf.Prices.Public, &cfg.Prices.Public},
		{"auctionStart", sf.Prices.AuctionStart, &cfg.Prices.AuctionStart},
		{"auctionStep", sf.Prices.AuctionStep, &cfg.Prices.AuctionStep},
		{"auctionFloor", sf.Prices.AuctionFloor, &cfg.Prices.AuctionFloor},
	}
	for _, f := range fields {
		if *f.dst, err = ParseWei(f.raw); err != nil {
			return SaleConfig{}, fmt.Errorf("price %s: %w", f.name, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return SaleConfig{}, err
	}
	return cfg, nil
}

// DomainParams fills unset fields from defaults, then from the built-in domain.
func (sf *SaleFile) DomainParams(defaults DomainParams) (DomainParams, error) {
	d := DomainParams{
		Name:              firstString(sf.Domain.Name, defaults.Name, constants.DefaultDomainName),
		Version:           firstString(sf.Domain.Version, defaults.Version, constants.DefaultDomainVersion),
		ChainID:           sf.Domain.ChainID,
		VerifyingContract: defaults.VerifyingContract,
	}
	if d.ChainID == 0 {
		d.ChainID = defaults.ChainID
	}
	if d.ChainID == 0 {
		d.ChainID = constants.DefaultChainID
	}
	if sf.Domain.VerifyingContract != "" {
		if !common.IsHexAddress(sf.Domain.VerifyingContract) {
			return DomainParams{}, fmt.Errorf("%w: verifying contract %q", constants.ErrInvalidAddress, sf.Domain.VerifyingContract)
		}
		d.VerifyingContract = common.HexToAddress(sf.Domain.VerifyingContract)
	}
	return d, nil
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ParseWei parses a non-negative decimal amount. The empty string is zero.
func ParseWei(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: amount %q", constants.ErrInvalidValue, s)
	}
	return v, nil
}
