// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package whitelist

import (
	"crypto/ecdsa"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
)

// Sign produces the 65 byte r||s||v signature, v in {27,28}, that authorizes
// wallet under domain.
func Sign(domain Domain, wallet common.Address, key *ecdsa.PrivateKey) ([]byte, error) {
	digest, err := domain.Digest(wallet)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(digest, key)
	if err != nil {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}

// SignerAddress is the address whitelist signatures made with key recover to.
func SignerAddress(key *ecdsa.PrivateKey) common.Address {
	return common.Address(crypto.PubkeyToAddress(key.PublicKey))
}
