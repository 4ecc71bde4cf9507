// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package models contains the data structures shared by the sale components
// and persisted between CLI runs.
package models

import (
	"fmt"
	"math/big"

	"github.com/luxfi/minter/pkg/constants"
)

// TransactionLimits caps a single mint and the cumulative per-wallet mints of
// each sale track.
type TransactionLimits struct {
	PrivateTx     uint64 `json:"privateTx"`
	PrivateWallet uint64 `json:"privateWallet"`
	PublicTx      uint64 `json:"publicTx"`
	PublicWallet  uint64 `json:"publicWallet"`
}

// Prices are denominated in wei.
type Prices struct {
	Private      *big.Int `json:"private"`
	Public       *big.Int `json:"public"`
	AuctionStart *big.Int `json:"auctionStart"`
	AuctionStep  *big.Int `json:"auctionStep"`
	AuctionFloor *big.Int `json:"auctionFloor"`
}

// Copy returns a deep copy with nil prices replaced by zero.
func (p Prices) Copy() Prices {
	return Prices{
		Private:      copyInt(p.Private),
		Public:       copyInt(p.Public),
		AuctionStart: copyInt(p.AuctionStart),
		AuctionStep:  copyInt(p.AuctionStep),
		AuctionFloor: copyInt(p.AuctionFloor),
	}
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// SaleConfig is fixed at deployment apart from the owner-only setters for
// limits, prices and decay interval.
type SaleConfig struct {
	MaxSupply        uint64 `json:"maxSupply"`
	MaxReserve       uint64 `json:"maxReserve"`
	VaultReserveSize uint64 `json:"vaultReserveSize"`
	MaxPrivate       uint64 `json:"maxPrivate"`

	Limits                TransactionLimits `json:"limits"`
	Prices                Prices            `json:"prices"`
	ReduceIntervalSeconds uint64            `json:"reduceIntervalSeconds"`
}

// Validate checks the supply ordering vaultReserveSize <= maxReserve <= maxSupply
// and maxPrivate <= maxSupply.
func (c SaleConfig) Validate() error {
	if c.MaxSupply == 0 {
		return fmt.Errorf("%w: max supply must be positive", constants.ErrInvalidValue)
	}
	if c.MaxReserve > c.MaxSupply {
		return fmt.Errorf("%w: max reserve %d exceeds max supply %d", constants.ErrInvalidValue, c.MaxReserve, c.MaxSupply)
	}
	if c.VaultReserveSize > c.MaxReserve {
		return fmt.Errorf("%w: vault reserve %d exceeds max reserve %d", constants.ErrInvalidValue, c.VaultReserveSize, c.MaxReserve)
	}
	if c.MaxPrivate > c.MaxSupply {
		return fmt.Errorf("%w: max private %d exceeds max supply %d", constants.ErrInvalidValue, c.MaxPrivate, c.MaxSupply)
	}
	for name, p := range map[string]*big.Int{
		"private":       c.Prices.Private,
		"public":        c.Prices.Public,
		"auction start": c.Prices.AuctionStart,
		"auction step":  c.Prices.AuctionStep,
		"auction floor": c.Prices.AuctionFloor,
	} {
		if p != nil && p.Sign() < 0 {
			return fmt.Errorf("%w: negative %s price", constants.ErrInvalidValue, name)
		}
	}
	return nil
}
