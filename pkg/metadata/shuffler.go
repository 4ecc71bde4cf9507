// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metadata maps sequential unit ids to metadata ids and resolves the
// externally visible metadata URI of a unit.
package metadata

import (
	"fmt"
	"strconv"

	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/models"
)

// Shuffler owns the reveal state. Ids 1..vaultReserveSize keep their own
// identity; the rest of (vaultReserveSize, maxSupply] is permuted by the seed.
type Shuffler struct {
	maxSupply uint64
	vault     uint64
	state     models.RevealState
	perm      Permutation
}

func New(maxSupply, vaultReserveSize uint64, st models.RevealState) *Shuffler {
	s := &Shuffler{
		maxSupply: maxSupply,
		vault:     vaultReserveSize,
		state:     st,
	}
	s.perm = NewPermutation(st.Seed, s.span())
	return s
}

func (s *Shuffler) span() uint64 {
	if s.vault >= s.maxSupply {
		return 0
	}
	return s.maxSupply - s.vault
}

func (s *Shuffler) Snapshot() models.RevealState {
	return s.state
}

// SetSeed fixes the permutation and reports whether a previous seed was replaced.
func (s *Shuffler) SetSeed(seed uint64) (replaced bool) {
	replaced = s.state.Seed != 0 && s.state.Seed != seed
	s.state.Seed = seed
	s.perm = NewPermutation(seed, s.span())
	return replaced
}

func (s *Shuffler) Seed() uint64 {
	return s.state.Seed
}

func (s *Shuffler) SetPreRevealURI(uri string) {
	s.state.PreRevealURI = uri
}

func (s *Shuffler) SetBaseURI(uri string) {
	s.state.BaseURI = uri
}

func (s *Shuffler) PreRevealURI() string {
	return s.state.PreRevealURI
}

func (s *Shuffler) BaseURI() string {
	return s.state.BaseURI
}

// Reveal is one-way; it reports whether this call performed the transition.
func (s *Shuffler) Reveal() bool {
	if s.state.Revealed {
		return false
	}
	s.state.Revealed = true
	return true
}

func (s *Shuffler) Revealed() bool {
	return s.state.Revealed
}

func (s *Shuffler) checkID(unitID uint64) error {
	if unitID == 0 || unitID > s.maxSupply {
		return fmt.Errorf("%w: unit id %d outside [1, %d]", constants.ErrInvalidValue, unitID, s.maxSupply)
	}
	return nil
}

// MetaID returns the metadata id unitID resolves to.
func (s *Shuffler) MetaID(unitID uint64) (uint64, error) {
	if err := s.checkID(unitID); err != nil {
		return 0, err
	}
	if unitID <= s.vault {
		return unitID, nil
	}
	offset := unitID - s.vault - 1
	return s.vault + 1 + s.perm.Apply(offset), nil
}

// TokenURI returns the pre-reveal URI verbatim until reveal, then
// baseURI + metaId + ".json".
func (s *Shuffler) TokenURI(unitID uint64) (string, error) {
	if err := s.checkID(unitID); err != nil {
		return "", err
	}
	if !s.state.Revealed {
		return s.state.PreRevealURI, nil
	}
	metaID, err := s.MetaID(unitID)
	if err != nil {
		return "", err
	}
	return s.state.BaseURI + strconv.FormatUint(metaID, 10) + constants.MetadataSuffix, nil
}
