// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger owns the supply counters of a sale. It is the only component
// allowed to increase supply and it enforces every cap and limit.
package ledger

import (
	"fmt"
	"maps"
	"math"
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/phase"
	"github.com/luxfi/minter/pkg/pricing"
	"github.com/luxfi/minter/pkg/whitelist"
)

// PhaseSource reports the effective sale phase.
type PhaseSource interface {
	Current(now uint64, s phase.Supply) phase.Phase
}

// Pricer reports the unit price at a given time.
type Pricer interface {
	PriceAt(now uint64) *big.Int
}

// MintRequest is a public mint attributed to Wallet. Now is sampled once by
// the caller for the whole operation.
type MintRequest struct {
	Wallet    common.Address
	Quantity  uint64
	Signature []byte
	Payment   *big.Int
	Now       uint64
}

// Ledger is not safe for concurrent use; the sale serializes access.
type Ledger struct {
	maxSupply  uint64
	maxReserve uint64
	maxPrivate uint64
	limits     models.TransactionLimits

	phases PhaseSource
	pricer Pricer
	gate   whitelist.Gate

	reserveMinted uint64
	totalSupply   uint64
	privateSupply uint64
	privateMinted map[common.Address]uint64
	publicMinted  map[common.Address]uint64
	numberMinted  map[common.Address]uint64
}

func New(cfg models.SaleConfig, phases PhaseSource, pricer Pricer, gate whitelist.Gate) *Ledger {
	return Restore(cfg, models.LedgerState{}, phases, pricer, gate)
}

func Restore(cfg models.SaleConfig, st models.LedgerState, phases PhaseSource, pricer Pricer, gate whitelist.Gate) *Ledger {
	l := &Ledger{
		maxSupply:     cfg.MaxSupply,
		maxReserve:    cfg.MaxReserve,
		maxPrivate:    cfg.MaxPrivate,
		limits:        cfg.Limits,
		phases:        phases,
		pricer:        pricer,
		gate:          gate,
		reserveMinted: st.ReserveMinted,
		totalSupply:   st.TotalSupply,
		privateSupply: st.PrivateSupply,
		privateMinted: cloneCounts(st.PrivateMinted),
		publicMinted:  cloneCounts(st.PublicMinted),
		numberMinted:  cloneCounts(st.NumberMinted),
	}
	return l
}

func cloneCounts(m map[common.Address]uint64) map[common.Address]uint64 {
	out := make(map[common.Address]uint64, len(m))
	maps.Copy(out, m)
	return out
}

func (l *Ledger) Snapshot() models.LedgerState {
	return models.LedgerState{
		ReserveMinted: l.reserveMinted,
		TotalSupply:   l.totalSupply,
		PrivateSupply: l.privateSupply,
		PrivateMinted: cloneCounts(l.privateMinted),
		PublicMinted:  cloneCounts(l.publicMinted),
		NumberMinted:  cloneCounts(l.numberMinted),
	}
}

func (l *Ledger) Supply() phase.Supply {
	return phase.Supply{
		TotalSupply:   l.totalSupply,
		MaxSupply:     l.maxSupply,
		PrivateSupply: l.privateSupply,
		MaxPrivate:    l.maxPrivate,
	}
}

func (l *Ledger) SetLimits(limits models.TransactionLimits) {
	l.limits = limits
}

func (l *Ledger) Limits() models.TransactionLimits {
	return l.limits
}

func (l *Ledger) SetSigner(signer common.Address) {
	l.gate.Signer = signer
}

func (l *Ledger) Signer() common.Address {
	return l.gate.Signer
}

func (l *Ledger) ReserveMinted() uint64 { return l.reserveMinted }
func (l *Ledger) TotalSupply() uint64   { return l.totalSupply }
func (l *Ledger) PrivateSupply() uint64 { return l.privateSupply }

func (l *Ledger) PrivateMinted(w common.Address) uint64 { return l.privateMinted[w] }
func (l *Ledger) PublicMinted(w common.Address) uint64  { return l.publicMinted[w] }
func (l *Ledger) NumberMinted(w common.Address) uint64  { return l.numberMinted[w] }

// exceeds reports whether used+quantity > limit without overflowing.
func exceeds(used, quantity, limit uint64) bool {
	return quantity > limit || used > limit-quantity
}

// Airdrop gives quantity units to each recipient out of the reserve. It ignores
// the sale phase.
func (l *Ledger) Airdrop(recipients []common.Address, quantity uint64, now uint64) ([]models.MintReceipt, error) {
	if len(recipients) == 0 || quantity == 0 {
		return nil, fmt.Errorf("%w: airdrop needs recipients and a positive quantity", constants.ErrInvalidValue)
	}
	if quantity > math.MaxUint64/uint64(len(recipients)) {
		return nil, fmt.Errorf("%w: airdrop size overflows", constants.ErrInvalidValue)
	}
	total := quantity * uint64(len(recipients))
	if exceeds(l.reserveMinted, total, l.maxReserve) {
		return nil, fmt.Errorf("%w: reserve %d/%d cannot fit %d", constants.ErrInvalidValue, l.reserveMinted, l.maxReserve, total)
	}
	if exceeds(l.totalSupply, total, l.maxSupply) {
		return nil, fmt.Errorf("%w: supply %d/%d cannot fit %d", constants.ErrExceedLimit, l.totalSupply, l.maxSupply, total)
	}

	receipts := make([]models.MintReceipt, 0, len(recipients))
	for _, r := range recipients {
		first := l.totalSupply + 1
		l.totalSupply += quantity
		l.numberMinted[r] += quantity
		receipts = append(receipts, models.MintReceipt{
			Wallet:    r,
			Phase:     "Reserve",
			Quantity:  quantity,
			UnitPrice: new(big.Int),
			Total:     new(big.Int),
			FirstID:   first,
			LastID:    l.totalSupply,
			Timestamp: now,
		})
	}
	l.reserveMinted += total
	return receipts, nil
}

// Mint applies a paid mint for req.Wallet. Every check runs before any counter
// changes, so a failed mint leaves the ledger untouched.
func (l *Ledger) Mint(req MintRequest) (models.MintReceipt, error) {
	current := l.phases.Current(req.Now, l.Supply())
	if current != phase.PrivateSale && current != phase.PublicSale {
		return models.MintReceipt{}, fmt.Errorf("%w: sale is %s", constants.ErrSaleNotAvailable, current)
	}
	private := current == phase.PrivateSale
	if private {
		// the wallet bound in the signature is the wallet the units go to
		if err := l.gate.Authorize(req.Wallet, req.Signature); err != nil {
			return models.MintReceipt{}, err
		}
	}
	if req.Quantity == 0 {
		return models.MintReceipt{}, fmt.Errorf("%w: quantity must be positive", constants.ErrInvalidValue)
	}

	txLimit, walletLimit, walletUsed := l.limits.PublicTx, l.limits.PublicWallet, l.publicMinted[req.Wallet]
	if private {
		txLimit, walletLimit, walletUsed = l.limits.PrivateTx, l.limits.PrivateWallet, l.privateMinted[req.Wallet]
	}
	if req.Quantity > txLimit {
		return models.MintReceipt{}, fmt.Errorf("%w: quantity %d above transaction limit %d", constants.ErrExceedLimit, req.Quantity, txLimit)
	}
	if exceeds(l.totalSupply, req.Quantity, l.maxSupply) {
		return models.MintReceipt{}, fmt.Errorf("%w: only %d units left", constants.ErrExceedLimit, l.maxSupply-l.totalSupply)
	}
	if private && exceeds(l.privateSupply, req.Quantity, l.maxPrivate) {
		return models.MintReceipt{}, fmt.Errorf("%w: only %d private units left", constants.ErrExceedLimit, l.maxPrivate-l.privateSupply)
	}
	if exceeds(walletUsed, req.Quantity, walletLimit) {
		return models.MintReceipt{}, fmt.Errorf("%w: wallet has %d of %d", constants.ErrExceedLimit, walletUsed, walletLimit)
	}

	unitPrice := l.pricer.PriceAt(req.Now)
	total := pricing.Total(unitPrice, req.Quantity)
	if req.Payment == nil || req.Payment.Cmp(total) != 0 {
		return models.MintReceipt{}, fmt.Errorf("%w: payment must be exactly %s", constants.ErrInvalidValue, total)
	}

	first := l.totalSupply + 1
	l.totalSupply += req.Quantity
	l.numberMinted[req.Wallet] += req.Quantity
	if private {
		l.privateSupply += req.Quantity
		l.privateMinted[req.Wallet] += req.Quantity
	} else {
		l.publicMinted[req.Wallet] += req.Quantity
	}
	return models.MintReceipt{
		Wallet:    req.Wallet,
		Phase:     current.String(),
		Quantity:  req.Quantity,
		UnitPrice: unitPrice,
		Total:     total,
		FirstID:   first,
		LastID:    l.totalSupply,
		Timestamp: req.Now,
	}, nil
}
