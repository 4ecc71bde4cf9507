// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package metadata

const (
	feistelRounds = 4
	golden        = 0x9e3779b97f4a7c15
)

// Permutation is a seeded bijection on [0, size). It is a balanced Feistel
// network over the smallest even bit width covering size, cycle-walked back
// into range. Seed 0 is the identity.
type Permutation struct {
	seed     uint64
	size     uint64
	halfBits uint
	mask     uint64
}

func NewPermutation(seed, size uint64) Permutation {
	bits := uint(2)
	for bits < 64 && uint64(1)<<bits < size {
		bits += 2
	}
	half := bits / 2
	return Permutation{
		seed:     seed,
		size:     size,
		halfBits: half,
		mask:     uint64(1)<<half - 1,
	}
}

func (p Permutation) Identity() bool {
	return p.seed == 0 || p.size < 2
}

// Apply maps x in [0, size) to its image in [0, size). Inputs outside the
// range are returned unchanged.
func (p Permutation) Apply(x uint64) uint64 {
	if p.Identity() || x >= p.size {
		return x
	}
	for {
		x = p.encrypt(x)
		if x < p.size {
			return x
		}
	}
}

func (p Permutation) encrypt(x uint64) uint64 {
	left, right := x>>p.halfBits, x&p.mask
	for i := uint64(0); i < feistelRounds; i++ {
		left, right = right, left^(p.round(i, right)&p.mask)
	}
	return left<<p.halfBits | right
}

func (p Permutation) round(i, r uint64) uint64 {
	return mix64(p.seed ^ ((i + 1) * golden) ^ r)
}

// mix64 is the splitmix64 finalizer.
func mix64(z uint64) uint64 {
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return z
}
