// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package phase owns the private and public sale windows and the flags that
// decide which of them is in effect.
package phase

import (
	"fmt"
	"math"

	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/models"
)

// Controller is not safe for concurrent use; the sale serializes access.
type Controller struct {
	privateWindow models.SaleWindow
	publicWindow  models.SaleWindow
	dutchAuction  bool
	// activated latches the first time the dutch auction toggle turns on
	activated bool
}

func NewController() *Controller {
	return &Controller{}
}

func Restore(st models.PhaseState) *Controller {
	return &Controller{
		privateWindow: st.PrivateWindow,
		publicWindow:  st.PublicWindow,
		dutchAuction:  st.PublicDutchAuction,
		activated:     st.PublicActivated,
	}
}

func (c *Controller) Snapshot() models.PhaseState {
	return models.PhaseState{
		PrivateWindow:      c.privateWindow,
		PublicWindow:       c.publicWindow,
		PublicDutchAuction: c.dutchAuction,
		PublicActivated:    c.activated,
	}
}

func newWindow(beginTime, durationMinutes uint64) (models.SaleWindow, error) {
	if beginTime == 0 || durationMinutes == 0 {
		return models.SaleWindow{}, fmt.Errorf("%w: window needs a begin time and a duration", constants.ErrInvalidValue)
	}
	if durationMinutes > (math.MaxUint64-beginTime)/constants.SecondsPerMinute {
		return models.SaleWindow{}, fmt.Errorf("%w: window end overflows", constants.ErrInvalidValue)
	}
	return models.NewSaleWindow(beginTime, durationMinutes), nil
}

// EnablePrivate replaces the private window. It may be called before or during
// a sale.
func (c *Controller) EnablePrivate(beginTime, durationMinutes uint64) error {
	w, err := newWindow(beginTime, durationMinutes)
	if err != nil {
		return err
	}
	c.privateWindow = w
	return nil
}

// EnablePublic replaces the public window. The window only takes effect once
// the dutch auction toggle has fired at least once.
func (c *Controller) EnablePublic(beginTime, durationMinutes uint64) error {
	w, err := newWindow(beginTime, durationMinutes)
	if err != nil {
		return err
	}
	c.publicWindow = w
	return nil
}

// ToggleDutchAuction flips auction pricing and reports the new value.
func (c *Controller) ToggleDutchAuction() bool {
	c.dutchAuction = !c.dutchAuction
	if c.dutchAuction {
		c.activated = true
	}
	return c.dutchAuction
}

func (c *Controller) DutchAuctionEnabled() bool {
	return c.dutchAuction
}

func (c *Controller) PublicActivated() bool {
	return c.activated
}

func (c *Controller) PrivateWindow() models.SaleWindow {
	return c.privateWindow
}

func (c *Controller) PublicWindow() models.SaleWindow {
	return c.publicWindow
}

func (c *Controller) publicOpen(now uint64) bool {
	return c.activated && c.publicWindow.Active(now)
}

// Current reports the effective phase at now. It never mutates state.
func (c *Controller) Current(now uint64, s Supply) Phase {
	switch {
	case s.MaxSupply > 0 && s.TotalSupply >= s.MaxSupply:
		return SoldOut
	case c.publicOpen(now):
		return PublicSale
	case c.privateWindow.Active(now) && s.PrivateSupply < s.MaxPrivate:
		return PrivateSale
	default:
		return Idle
	}
}

// Pricing reports the pricing phase at now, independent of supply.
func (c *Controller) Pricing(now uint64) PricingPhase {
	switch {
	case c.publicOpen(now) && c.dutchAuction:
		return PricingPhase{Mode: ModeDutchAuction, Elapsed: c.publicWindow.Elapsed(now)}
	case c.publicOpen(now):
		return PricingPhase{Mode: ModePublicFixed}
	case c.privateWindow.Active(now):
		return PricingPhase{Mode: ModePrivate}
	default:
		return PricingPhase{Mode: ModeDefault}
	}
}
