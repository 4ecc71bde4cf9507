// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pricing computes the unit price for the phase in effect, including
// the stepwise decay of the public dutch auction.
package pricing

import (
	"fmt"
	"math/big"

	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/phase"
)

// PhaseReader is the part of the phase controller the engine reads.
type PhaseReader interface {
	Pricing(now uint64) phase.PricingPhase
}

type Engine struct {
	phases         PhaseReader
	prices         models.Prices
	reduceInterval uint64
}

func New(phases PhaseReader, prices models.Prices, reduceIntervalSeconds uint64) *Engine {
	return &Engine{
		phases:         phases,
		prices:         prices.Copy(),
		reduceInterval: reduceIntervalSeconds,
	}
}

// SetPrices replaces every price. Nil prices become zero.
func (e *Engine) SetPrices(prices models.Prices) error {
	for _, p := range []*big.Int{prices.Private, prices.Public, prices.AuctionStart, prices.AuctionStep, prices.AuctionFloor} {
		if p != nil && p.Sign() < 0 {
			return fmt.Errorf("%w: negative price", constants.ErrInvalidValue)
		}
	}
	e.prices = prices.Copy()
	return nil
}

// SetReduceInterval sets the seconds between two auction price steps.
func (e *Engine) SetReduceInterval(seconds uint64) error {
	if seconds == 0 {
		return fmt.Errorf("%w: reduce interval must be positive", constants.ErrInvalidValue)
	}
	e.reduceInterval = seconds
	return nil
}

func (e *Engine) ReduceInterval() uint64 {
	return e.reduceInterval
}

func (e *Engine) Prices() models.Prices {
	return e.prices.Copy()
}

// PriceAt returns the unit price at now. It never fails; without an open window
// it reports the auction start price so buyers can preview the sale.
func (e *Engine) PriceAt(now uint64) *big.Int {
	return e.Price(e.phases.Pricing(now))
}

func (e *Engine) Price(pp phase.PricingPhase) *big.Int {
	switch pp.Mode {
	case phase.ModePrivate:
		return new(big.Int).Set(e.prices.Private)
	case phase.ModePublicFixed:
		return new(big.Int).Set(e.prices.Public)
	case phase.ModeDutchAuction:
		return e.auctionPrice(e.Steps(pp.Elapsed))
	default:
		return new(big.Int).Set(e.prices.AuctionStart)
	}
}

// Steps is the number of completed decay intervals after elapsed seconds.
func (e *Engine) Steps(elapsed uint64) uint64 {
	if e.reduceInterval == 0 {
		return 0
	}
	return elapsed / e.reduceInterval
}

// auctionPrice is max(floor, start - steps*step).
func (e *Engine) auctionPrice(steps uint64) *big.Int {
	reduction := new(big.Int).Mul(new(big.Int).SetUint64(steps), e.prices.AuctionStep)
	price := new(big.Int).Sub(e.prices.AuctionStart, reduction)
	if price.Cmp(e.prices.AuctionFloor) < 0 {
		return new(big.Int).Set(e.prices.AuctionFloor)
	}
	return price
}

// Total returns price*quantity.
func Total(price *big.Int, quantity uint64) *big.Int {
	return new(big.Int).Mul(price, new(big.Int).SetUint64(quantity))
}
