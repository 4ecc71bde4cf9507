// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sale

import (
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/phase"
)

// Status is a consistent read of the sale at one instant.
type Status struct {
	Name            string
	Now             uint64
	Phase           phase.Phase
	Pricing         phase.PricingPhase
	Price           *big.Int
	Owner           common.Address
	Treasury        common.Address
	Signer          common.Address
	Config          models.SaleConfig
	ReserveMinted   uint64
	TotalSupply     uint64
	PrivateSupply   uint64
	PrivateWindow   models.SaleWindow
	PublicWindow    models.SaleWindow
	DutchAuction    bool
	PublicActivated bool
	Seed            uint64
	Revealed        bool
	Balance         *big.Int
}

func (s *Sale) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	cfg := s.config
	cfg.Limits = s.ledger.Limits()
	cfg.Prices = s.pricer.Prices()
	cfg.ReduceIntervalSeconds = s.pricer.ReduceInterval()
	return Status{
		Name:            s.name,
		Now:             now,
		Phase:           s.phases.Current(now, s.ledger.Supply()),
		Pricing:         s.phases.Pricing(now),
		Price:           s.pricer.PriceAt(now),
		Owner:           s.owner,
		Treasury:        s.vault.Treasury(),
		Signer:          s.ledger.Signer(),
		Config:          cfg,
		ReserveMinted:   s.ledger.ReserveMinted(),
		TotalSupply:     s.ledger.TotalSupply(),
		PrivateSupply:   s.ledger.PrivateSupply(),
		PrivateWindow:   s.phases.PrivateWindow(),
		PublicWindow:    s.phases.PublicWindow(),
		DutchAuction:    s.phases.DutchAuctionEnabled(),
		PublicActivated: s.phases.PublicActivated(),
		Seed:            s.shuffler.Seed(),
		Revealed:        s.shuffler.Revealed(),
		Balance:         s.vault.Balance(),
	}
}

func (s *Sale) Name() string {
	return s.name
}

// Domain is the signing domain whitelist signatures are checked against.
func (s *Sale) Domain() models.DomainParams {
	return s.domain
}

// Phase reports the coarse sale phase right now.
func (s *Sale) Phase() phase.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phases.Current(s.clock.Now(), s.ledger.Supply())
}

// PricingPhase reports the pricing rule in effect right now.
func (s *Sale) PricingPhase() phase.PricingPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phases.Pricing(s.clock.Now())
}

// Price is the unit price right now. It never fails.
func (s *Sale) Price() *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyBig(s.pricer.PriceAt(s.clock.Now()))
}

func (s *Sale) Owner() common.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner
}

func (s *Sale) Signer() common.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Signer()
}

func (s *Sale) Limits() models.TransactionLimits {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Limits()
}

func (s *Sale) Prices() models.Prices {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pricer.Prices()
}

func (s *Sale) ReduceInterval() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pricer.ReduceInterval()
}

func (s *Sale) ReserveMinted() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.ReserveMinted()
}

func (s *Sale) TotalSupply() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.TotalSupply()
}

func (s *Sale) PrivateSupply() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.PrivateSupply()
}

func (s *Sale) PrivateMinted(wallet common.Address) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.PrivateMinted(wallet)
}

func (s *Sale) PublicMinted(wallet common.Address) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.PublicMinted(wallet)
}

// NumberMinted counts every unit attributed to wallet, airdrops included.
func (s *Sale) NumberMinted(wallet common.Address) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.NumberMinted(wallet)
}

func (s *Sale) PrivateSaleWindow() models.SaleWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phases.PrivateWindow()
}

func (s *Sale) PublicSaleWindow() models.SaleWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phases.PublicWindow()
}

func (s *Sale) Balance() *big.Int {
	return s.vault.Balance()
}

func (s *Sale) Treasury() common.Address {
	return s.vault.Treasury()
}

func (s *Sale) Seed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shuffler.Seed()
}

func (s *Sale) Revealed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shuffler.Revealed()
}

func (s *Sale) BaseURI() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shuffler.BaseURI()
}

func (s *Sale) PreRevealURI() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shuffler.PreRevealURI()
}

func (s *Sale) MetaID(unitID uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shuffler.MetaID(unitID)
}

func (s *Sale) TokenURI(unitID uint64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shuffler.TokenURI(unitID)
}
