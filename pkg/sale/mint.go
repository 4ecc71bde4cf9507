// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sale

import (
	"context"
	"math/big"

	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
	"github.com/luxfi/minter/pkg/ledger"
	"github.com/luxfi/minter/pkg/models"
)

// Airdrop mints quantity units to each recipient out of the reserve.
func (s *Sale) Airdrop(caller common.Address, recipients []common.Address, quantity uint64) ([]models.MintReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	fields := []interface{}{luxlog.Int("recipients", len(recipients)), luxlog.Uint64("quantity", quantity)}
	if err := s.onlyOwner(caller); err != nil {
		return nil, s.reject("airdrop", err, fields...)
	}
	receipts, err := s.ledger.Airdrop(recipients, quantity, now)
	if err != nil {
		return nil, s.reject("airdrop", err, fields...)
	}
	s.metrics.Minted("Reserve", quantity*uint64(len(recipients)))
	s.observe(now)
	s.log.Info("airdrop", append(fields, luxlog.Uint64("totalSupply", s.ledger.TotalSupply()))...)
	return receipts, nil
}

// Mint sells quantity units to wallet for exactly payment wei. signature is
// only consulted during the private sale.
func (s *Sale) Mint(wallet common.Address, quantity uint64, signature []byte, payment *big.Int) (models.MintReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mint(s.clock.Now(), wallet, quantity, signature, payment)
}

// MintAtCurrentPrice is Mint paying the unit price times quantity, with the
// price read at the same instant the mint is checked against.
func (s *Sale) MintAtCurrentPrice(wallet common.Address, quantity uint64, signature []byte) (models.MintReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	payment := new(big.Int).Mul(s.pricer.PriceAt(now), new(big.Int).SetUint64(quantity))
	return s.mint(now, wallet, quantity, signature, payment)
}

func (s *Sale) mint(now uint64, wallet common.Address, quantity uint64, signature []byte, payment *big.Int) (models.MintReceipt, error) {
	fields := []interface{}{luxlog.Stringer("wallet", wallet), luxlog.Uint64("quantity", quantity)}
	receipt, err := s.ledger.Mint(ledger.MintRequest{
		Wallet:    wallet,
		Quantity:  quantity,
		Signature: signature,
		Payment:   payment,
		Now:       now,
	})
	if err != nil {
		return models.MintReceipt{}, s.reject("mint", err, fields...)
	}
	s.vault.Deposit(receipt.Total)
	s.metrics.Minted(receipt.Phase, quantity)
	s.observe(now)
	s.log.Info("mint", append(fields,
		luxlog.String("phase", receipt.Phase),
		luxlog.Stringer("unitPrice", receipt.UnitPrice),
		luxlog.Uint64("firstId", receipt.FirstID),
		luxlog.Uint64("lastId", receipt.LastID),
	)...)
	return receipt, nil
}

// Withdraw pays the whole balance to destination, which must be the treasury.
// The transfer runs outside the sale lock; see treasury.Vault.Withdraw.
func (s *Sale) Withdraw(ctx context.Context, caller, destination common.Address) (models.Payout, error) {
	s.mu.Lock()
	now := s.clock.Now()
	err := s.onlyOwner(caller)
	s.mu.Unlock()
	fields := []interface{}{luxlog.Stringer("destination", destination)}
	if err != nil {
		return models.Payout{}, s.reject("withdraw", err, fields...)
	}

	amount, err := s.vault.Withdraw(ctx, destination)
	if err != nil {
		return models.Payout{}, s.reject("withdraw", err, fields...)
	}
	if amount.Sign() > 0 {
		s.metrics.Withdrawn()
	}
	s.metrics.SetBalance(s.vault.Balance())
	s.log.Info("withdraw", append(fields, luxlog.Stringer("amount", amount))...)
	return models.Payout{
		Destination: destination,
		Amount:      amount,
		Timestamp:   now,
	}, nil
}
