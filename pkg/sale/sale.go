// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sale composes the phase controller, pricing engine, whitelist gate,
// mint ledger, metadata shuffler and treasury vault into one serialized sale.
// Every exported operation samples the clock once and runs to completion
// before the next one observes state.
package sale

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
	"github.com/luxfi/minter/pkg/clock"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/ledger"
	"github.com/luxfi/minter/pkg/metadata"
	"github.com/luxfi/minter/pkg/metrics"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/phase"
	"github.com/luxfi/minter/pkg/pricing"
	"github.com/luxfi/minter/pkg/treasury"
	"github.com/luxfi/minter/pkg/whitelist"
)

// Params describe a sale at deployment.
type Params struct {
	Name         string
	Owner        common.Address
	Treasury     common.Address
	Signer       common.Address
	Domain       models.DomainParams
	Config       models.SaleConfig
	PreRevealURI string
	BaseURI      string
}

// Options carry the host collaborators of a sale. Zero values are replaced by
// the system clock, a no-op logger and no metrics.
type Options struct {
	Clock      clock.Clock
	Transferer treasury.Transferer
	Logger     luxlog.Logger
	Metrics    *metrics.Sale
}

type Sale struct {
	mu sync.Mutex

	name   string
	owner  common.Address
	domain models.DomainParams
	config models.SaleConfig

	clock   clock.Clock
	log     luxlog.Logger
	metrics *metrics.Sale

	phases   *phase.Controller
	pricer   *pricing.Engine
	ledger   *ledger.Ledger
	shuffler *metadata.Shuffler
	vault    *treasury.Vault
}

// New deploys a fresh sale.
func New(p Params, opts Options) (*Sale, error) {
	return Restore(models.SaleState{
		Version:  constants.StateVersion,
		Name:     p.Name,
		Owner:    p.Owner,
		Treasury: p.Treasury,
		Signer:   p.Signer,
		Domain:   p.Domain,
		Config:   p.Config,
		Reveal: models.RevealState{
			PreRevealURI: p.PreRevealURI,
			BaseURI:      p.BaseURI,
		},
	}, opts)
}

// Restore rebuilds a sale from a snapshot taken with Snapshot.
func Restore(st models.SaleState, opts Options) (*Sale, error) {
	if err := st.Config.Validate(); err != nil {
		return nil, err
	}
	if st.Owner == (common.Address{}) {
		return nil, fmt.Errorf("%w: owner must be set", constants.ErrInvalidAddress)
	}
	if st.Treasury == (common.Address{}) {
		return nil, fmt.Errorf("%w: treasury must be set", constants.ErrInvalidAddress)
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Logger == nil {
		opts.Logger = luxlog.NewNoOpLogger()
	}

	s := &Sale{
		name:    st.Name,
		owner:   st.Owner,
		domain:  st.Domain,
		config:  st.Config,
		clock:   opts.Clock,
		log:     opts.Logger.New("sale", st.Name),
		metrics: opts.Metrics,
	}
	s.phases = phase.Restore(st.Phase)
	s.pricer = pricing.New(s.phases, st.Config.Prices, st.Config.ReduceIntervalSeconds)
	gate := whitelist.Gate{
		Domain: whitelist.DomainFromParams(st.Domain),
		Signer: st.Signer,
	}
	s.ledger = ledger.Restore(st.Config, st.Ledger, s.phases, s.pricer, gate)
	s.shuffler = metadata.New(st.Config.MaxSupply, st.Config.VaultReserveSize, st.Reveal)
	s.vault = treasury.New(st.Treasury, st.Balance, opts.Transferer)
	s.observe(s.clock.Now())
	return s, nil
}

// Snapshot returns the complete state of the sale.
func (s *Sale) Snapshot() models.SaleState {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.config
	cfg.Limits = s.ledger.Limits()
	cfg.Prices = s.pricer.Prices()
	cfg.ReduceIntervalSeconds = s.pricer.ReduceInterval()
	return models.SaleState{
		Version:  constants.StateVersion,
		Name:     s.name,
		Owner:    s.owner,
		Treasury: s.vault.Treasury(),
		Signer:   s.ledger.Signer(),
		Domain:   s.domain,
		Config:   cfg,
		Phase:    s.phases.Snapshot(),
		Ledger:   s.ledger.Snapshot(),
		Reveal:   s.shuffler.Snapshot(),
		Balance:  s.vault.Balance(),
	}
}

func (s *Sale) onlyOwner(caller common.Address) error {
	if caller != s.owner {
		return fmt.Errorf("%w: %s", constants.ErrNotOwner, caller.Hex())
	}
	return nil
}

// reject records a refused operation and returns err unchanged.
func (s *Sale) reject(operation string, err error, fields ...interface{}) error {
	kind := constants.ErrorKind(err)
	s.metrics.Rejected(operation, kind)
	s.log.Warn("operation rejected",
		append(fields, luxlog.String("operation", operation), luxlog.String("reason", kind), luxlog.Err(err))...)
	return err
}

// observe pushes the gauges for the state at now. Callers hold s.mu or own s exclusively.
func (s *Sale) observe(now uint64) {
	if s.metrics == nil {
		return
	}
	s.metrics.SetSupply(s.ledger.TotalSupply())
	s.metrics.SetBalance(s.vault.Balance())
	s.metrics.SetPhase(s.phases.Current(now, s.ledger.Supply()).String(), phase.Names()...)
}

func copyBig(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
