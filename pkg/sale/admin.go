// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sale

import (
	"fmt"

	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/models"
)

// ownerOp runs fn under the lock after the owner check and logs the outcome.
func (s *Sale) ownerOp(operation string, caller common.Address, fn func(now uint64) error, fields ...interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if err := s.onlyOwner(caller); err != nil {
		return s.reject(operation, err, fields...)
	}
	if err := fn(now); err != nil {
		return s.reject(operation, err, fields...)
	}
	s.observe(now)
	s.log.Info(operation, fields...)
	return nil
}

func (s *Sale) EnablePrivateSale(caller common.Address, beginTime, durationMinutes uint64) error {
	return s.ownerOp("enablePrivate", caller, func(uint64) error {
		return s.phases.EnablePrivate(beginTime, durationMinutes)
	}, luxlog.Uint64("begin", beginTime), luxlog.Uint64("minutes", durationMinutes))
}

func (s *Sale) EnablePublicSale(caller common.Address, beginTime, durationMinutes uint64) error {
	return s.ownerOp("enablePublic", caller, func(uint64) error {
		return s.phases.EnablePublic(beginTime, durationMinutes)
	}, luxlog.Uint64("begin", beginTime), luxlog.Uint64("minutes", durationMinutes))
}

// TogglePublicDutchAuction flips the dutch auction flag and returns its new value.
func (s *Sale) TogglePublicDutchAuction(caller common.Address) (bool, error) {
	var enabled bool
	err := s.ownerOp("togglePublicDutchAuction", caller, func(uint64) error {
		enabled = s.phases.ToggleDutchAuction()
		return nil
	})
	return enabled, err
}

func (s *Sale) SetSigningAddress(caller, signer common.Address) error {
	return s.ownerOp("setSigningAddress", caller, func(uint64) error {
		s.ledger.SetSigner(signer)
		return nil
	}, luxlog.Stringer("signer", signer))
}

func (s *Sale) SetTransactionLimit(caller common.Address, limits models.TransactionLimits) error {
	return s.ownerOp("setTransactionLimit", caller, func(uint64) error {
		s.ledger.SetLimits(limits)
		return nil
	},
		luxlog.Uint64("privateTx", limits.PrivateTx),
		luxlog.Uint64("privateWallet", limits.PrivateWallet),
		luxlog.Uint64("publicTx", limits.PublicTx),
		luxlog.Uint64("publicWallet", limits.PublicWallet),
	)
}

func (s *Sale) SetReduceTime(caller common.Address, seconds uint64) error {
	return s.ownerOp("setReduceTime", caller, func(uint64) error {
		return s.pricer.SetReduceInterval(seconds)
	}, luxlog.Uint64("seconds", seconds))
}

func (s *Sale) SetPrices(caller common.Address, prices models.Prices) error {
	return s.ownerOp("setPrices", caller, func(uint64) error {
		return s.pricer.SetPrices(prices)
	})
}

func (s *Sale) TransferOwnership(caller, newOwner common.Address) error {
	return s.ownerOp("transferOwnership", caller, func(uint64) error {
		if newOwner == (common.Address{}) {
			return fmt.Errorf("%w: new owner is the zero address", constants.ErrInvalidAddress)
		}
		s.owner = newOwner
		return nil
	}, luxlog.Stringer("newOwner", newOwner))
}

// SetSeed fixes the metadata permutation. Replacing an existing seed is
// allowed but logged.
func (s *Sale) SetSeed(caller common.Address, seed uint64) error {
	return s.ownerOp("setSeed", caller, func(uint64) error {
		if s.shuffler.SetSeed(seed) {
			s.log.Warn("metadata seed replaced", luxlog.Uint64("seed", seed))
		}
		return nil
	})
}

// Reveal switches token URIs to the shuffled metadata. Repeated calls are no-ops.
func (s *Sale) Reveal(caller common.Address) error {
	return s.ownerOp("reveal", caller, func(uint64) error {
		s.shuffler.Reveal()
		return nil
	})
}

func (s *Sale) SetPreRevealURI(caller common.Address, uri string) error {
	return s.ownerOp("setPreRevealURI", caller, func(uint64) error {
		s.shuffler.SetPreRevealURI(uri)
		return nil
	}, luxlog.String("uri", uri))
}

func (s *Sale) SetBaseURI(caller common.Address, uri string) error {
	return s.ownerOp("setBaseURI", caller, func(uint64) error {
		s.shuffler.SetBaseURI(uri)
		return nil
	}, luxlog.String("uri", uri))
}
