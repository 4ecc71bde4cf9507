// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"math/big"

	"github.com/luxfi/geth/common"
)

// DomainParams identify the EIP-712 signing domain of a sale.
type DomainParams struct {
	Name              string         `json:"name"`
	Version           string         `json:"version"`
	ChainID           uint64         `json:"chainId"`
	VerifyingContract common.Address `json:"verifyingContract"`
}

type PhaseState struct {
	PrivateWindow      SaleWindow `json:"privateWindow"`
	PublicWindow       SaleWindow `json:"publicWindow"`
	PublicDutchAuction bool       `json:"publicDutchAuction"`
	PublicActivated    bool       `json:"publicActivated"`
}

type LedgerState struct {
	ReserveMinted uint64                    `json:"reserveMinted"`
	TotalSupply   uint64                    `json:"totalSupply"`
	PrivateSupply uint64                    `json:"privateSupply"`
	PrivateMinted map[common.Address]uint64 `json:"privateMinted"`
	PublicMinted  map[common.Address]uint64 `json:"publicMinted"`
	NumberMinted  map[common.Address]uint64 `json:"numberMinted"`
}

type RevealState struct {
	Seed         uint64 `json:"seed"`
	Revealed     bool   `json:"revealed"`
	PreRevealURI string `json:"preRevealURI"`
	BaseURI      string `json:"baseURI"`
}

// SaleState is the persisted snapshot of a whole sale.
type SaleState struct {
	Version  string         `json:"version"`
	Name     string         `json:"name"`
	Owner    common.Address `json:"owner"`
	Treasury common.Address `json:"treasury"`
	Signer   common.Address `json:"signer"`
	Domain   DomainParams   `json:"domain"`
	Config   SaleConfig     `json:"config"`
	Phase    PhaseState     `json:"phase"`
	Ledger   LedgerState    `json:"ledger"`
	Reveal   RevealState    `json:"reveal"`
	Balance  *big.Int       `json:"balance"`
}

// MintReceipt describes one applied mint or airdrop. Receipts are returned to
// the caller and are not retained by the sale.
type MintReceipt struct {
	Wallet    common.Address `json:"wallet"`
	Phase     string         `json:"phase"`
	Quantity  uint64         `json:"quantity"`
	UnitPrice *big.Int       `json:"unitPrice"`
	Total     *big.Int       `json:"total"`
	FirstID   uint64         `json:"firstId"`
	LastID    uint64         `json:"lastId"`
	Timestamp uint64         `json:"timestamp"`
}

// Payout records a treasury release.
type Payout struct {
	Destination common.Address `json:"destination"`
	Amount      *big.Int       `json:"amount"`
	Timestamp   uint64         `json:"timestamp"`
}
