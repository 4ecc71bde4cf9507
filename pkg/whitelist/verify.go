// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package whitelist

import (
	"math/big"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/minter/pkg/constants"
)

const signatureLength = 65

// secp256k1 N/2; signatures with a larger s are malleable and rejected.
var secp256k1HalfN, _ = new(big.Int).SetString("7fffffffffffffffffffffffffffffff5d576e7357a4501ddfe92f46681b20a0", 16)

// Recover returns the address that signed wallet's entry under domain.
func Recover(domain Domain, wallet common.Address, signature []byte) (common.Address, error) {
	if len(signature) != signatureLength {
		return common.Address{}, constants.ErrInvalidSignature
	}
	sig := make([]byte, signatureLength)
	copy(sig, signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	if sig[64] > 1 {
		return common.Address{}, constants.ErrInvalidSignature
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if r.Sign() == 0 || s.Sign() == 0 || s.Cmp(secp256k1HalfN) > 0 {
		return common.Address{}, constants.ErrInvalidSignature
	}
	digest, err := domain.Digest(wallet)
	if err != nil {
		return common.Address{}, constants.ErrInvalidSignature
	}
	pub, err := crypto.SigToPub(digest, sig)
	if err != nil {
		return common.Address{}, constants.ErrInvalidSignature
	}
	return common.Address(crypto.PubkeyToAddress(*pub)), nil
}

// Verify succeeds iff signature over wallet's entry was produced by signer.
// Every failure is reported as the bare ErrInvalidSignature.
func Verify(domain Domain, signer, wallet common.Address, signature []byte) error {
	if signer == (common.Address{}) {
		return constants.ErrInvalidSignature
	}
	recovered, err := Recover(domain, wallet, signature)
	if err != nil || recovered != signer {
		return constants.ErrInvalidSignature
	}
	return nil
}

// Gate holds the signing key configured for a sale. A zero signer means
// signature gating has not been turned on yet.
type Gate struct {
	Domain Domain
	Signer common.Address
}

func (g Gate) Enabled() bool {
	return g.Signer != (common.Address{})
}

// Authorize checks that wallet is allow-listed by signature.
func (g Gate) Authorize(wallet common.Address, signature []byte) error {
	if !g.Enabled() {
		return constants.ErrSignedNotEnabled
	}
	return Verify(g.Domain, g.Signer, wallet, signature)
}
