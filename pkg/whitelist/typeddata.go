// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package whitelist verifies offline-signed EIP-712 allow-list entries of the
// form Minter(address wallet) and produces them for tooling.
package whitelist

import (
	"fmt"
	"math/big"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/signer/core/apitypes"
	"github.com/luxfi/math"
	"github.com/luxfi/minter/pkg/models"
)

const primaryType = "Minter"

var minterTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	primaryType: {
		{Name: "wallet", Type: "address"},
	},
}

// Domain is the EIP-712 domain a signature is bound to. It is always passed
// explicitly; there is no ambient chain context.
type Domain struct {
	Name              string
	Version           string
	ChainID           *big.Int
	VerifyingContract common.Address
}

func DomainFromParams(p models.DomainParams) Domain {
	return Domain{
		Name:              p.Name,
		Version:           p.Version,
		ChainID:           new(big.Int).SetUint64(p.ChainID),
		VerifyingContract: p.VerifyingContract,
	}
}

func (d Domain) typedData(wallet common.Address) apitypes.TypedData {
	return apitypes.TypedData{
		Types:       minterTypes,
		PrimaryType: primaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              d.Name,
			Version:           d.Version,
			ChainId:           (*math.HexOrDecimal256)(d.chainID()),
			VerifyingContract: d.VerifyingContract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"wallet": wallet.Hex(),
		},
	}
}

func (d Domain) chainID() *big.Int {
	if d.ChainID == nil {
		return new(big.Int)
	}
	return d.ChainID
}

// the domain is hashed from an explicit map so that empty names still
// encode as keccak256("")
func (d Domain) fields() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"name":              d.Name,
		"version":           d.Version,
		"chainId":           d.chainID(),
		"verifyingContract": d.VerifyingContract.Hex(),
	}
}

// Separator is hashStruct(EIP712Domain).
func (d Domain) Separator() ([]byte, error) {
	td := d.typedData(common.Address{})
	sep, err := td.HashStruct("EIP712Domain", d.fields())
	if err != nil {
		return nil, fmt.Errorf("failed hashing signing domain: %w", err)
	}
	return sep, nil
}

// Digest is the hash signed for wallet: keccak256(0x1901 || separator || hashStruct(Minter)).
func (d Domain) Digest(wallet common.Address) ([]byte, error) {
	sep, err := d.Separator()
	if err != nil {
		return nil, err
	}
	td := d.typedData(wallet)
	structHash, err := td.HashStruct(primaryType, td.Message)
	if err != nil {
		return nil, fmt.Errorf("failed hashing %s: %w", wallet.Hex(), err)
	}
	return crypto.Keccak256([]byte{0x19, 0x01}, sep, structHash), nil
}
