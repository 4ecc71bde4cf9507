// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package phase

// Phase is the coarse sale phase that gates minting.
type Phase int

const (
	// Idle is the initial phase and the phase between windows
	Idle Phase = iota
	// PrivateSale is when the signature-gated private window is open
	PrivateSale
	// PublicSale is when the activated public window is open
	PublicSale
	// SoldOut is when the whole supply has been minted
	SoldOut
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case PrivateSale:
		return "PrivateSale"
	case PublicSale:
		return "PublicSale"
	case SoldOut:
		return "SoldOut"
	default:
		return "Unknown"
	}
}

// Names lists every phase in order.
func Names() []string {
	return []string{Idle.String(), PrivateSale.String(), PublicSale.String(), SoldOut.String()}
}

// PriceMode selects the pricing rule.
type PriceMode int

const (
	// ModeDefault prices at the auction start price when no window is open
	ModeDefault PriceMode = iota
	// ModePrivate prices at the fixed private price
	ModePrivate
	// ModePublicFixed prices at the fixed public price
	ModePublicFixed
	// ModeDutchAuction prices with stepwise decay from the auction start price
	ModeDutchAuction
)

func (m PriceMode) String() string {
	switch m {
	case ModeDefault:
		return "Default"
	case ModePrivate:
		return "Private"
	case ModePublicFixed:
		return "PublicFixed"
	case ModeDutchAuction:
		return "DutchAuction"
	default:
		return "Unknown"
	}
}

// PricingPhase is the fine-grained phase read by the pricing engine. It only
// depends on time and the windows, so it can be read while minting is closed.
type PricingPhase struct {
	Mode PriceMode
	// Elapsed is the number of seconds since the public window opened
	Elapsed uint64
}

// Supply is the subset of ledger counters the phase depends on.
type Supply struct {
	TotalSupply   uint64
	MaxSupply     uint64
	PrivateSupply uint64
	MaxPrivate    uint64
}
