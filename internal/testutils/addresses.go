// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"crypto/ecdsa"
	"testing"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

// Account is a throwaway secp256k1 key and its address.
type Account struct {
	Key     *ecdsa.PrivateKey
	Address common.Address
}

func GenerateEthAddrs(count int) ([]common.Address, error) {
	addrs := make([]common.Address, count)
	for i := 0; i < count; i++ {
		pk, err := crypto.GenerateKey()
		if err != nil {
			return nil, err
		}
		addrs[i] = common.Address(crypto.PubkeyToAddress(pk.PublicKey))
	}
	return addrs, nil
}

func GenerateAccounts(count int) ([]Account, error) {
	accounts := make([]Account, count)
	for i := range accounts {
		pk, err := crypto.GenerateKey()
		if err != nil {
			return nil, err
		}
		accounts[i] = Account{Key: pk, Address: common.Address(crypto.PubkeyToAddress(pk.PublicKey))}
	}
	return accounts, nil
}

// NewAccounts returns count fresh accounts or fails the test.
func NewAccounts(t testing.TB, count int) []Account {
	t.Helper()
	accounts, err := GenerateAccounts(count)
	require.NoError(t, err)
	return accounts
}
