// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/minter/pkg/pricing"
)

// TestSupplyInvariants replays random operation sequences and checks the caps
// after every step.
// Property: totalSupply <= maxSupply, reserveMinted <= maxReserve and every
// wallet stays within its per-phase limits.
func TestSupplyInvariants(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSupply = 30
	cfg.MaxPrivate = 12
	f := newFixture(t, cfg)
	f.phases.ToggleDutchAuction()
	sigs := make(map[common.Address][]byte)
	for _, a := range f.accounts {
		sigs[a.Address] = f.sig(t, a.Address)
	}
	times := []uint64{t0, privateOpen, publicOpen, publicOpen + 5_000}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("caps hold for any operation sequence", prop.ForAll(
		func(ops []uint64) bool {
			l := New(cfg, f.phases, f.pricer, f.ledger.gate)
			l.SetSigner(f.signer.Address)
			for _, op := range ops {
				wallet := f.accounts[(op/3)%uint64(len(f.accounts))].Address
				quantity := (op / 9) % 6
				now := times[(op/54)%uint64(len(times))]
				switch op % 3 {
				case 0:
					_, _ = l.Airdrop([]common.Address{wallet}, quantity, now)
				default:
					_, _ = l.Mint(MintRequest{
						Wallet:    wallet,
						Quantity:  quantity,
						Signature: sigs[wallet],
						Payment:   pricing.Total(f.pricer.PriceAt(now), quantity),
						Now:       now,
					})
				}
				if !holds(l) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt64Range(0, 1<<12)),
	))

	properties.TestingRun(t)
}

func holds(l *Ledger) bool {
	if l.totalSupply > l.maxSupply || l.reserveMinted > l.maxReserve || l.privateSupply > l.maxPrivate {
		return false
	}
	var sum uint64
	for w, n := range l.numberMinted {
		if l.privateMinted[w] > l.limits.PrivateWallet || l.publicMinted[w] > l.limits.PublicWallet {
			return false
		}
		if n < l.privateMinted[w]+l.publicMinted[w] {
			return false
		}
		sum += n
	}
	return sum == l.totalSupply
}
