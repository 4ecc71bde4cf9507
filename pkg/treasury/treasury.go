// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package treasury holds the collected sale proceeds and pays them out to the
// treasury address fixed at deployment.
package treasury

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/minter/pkg/constants"
)

var errNoTransferer = errors.New("treasury has no transfer route configured")

// Transferer moves value out of the engine. Implementations may block.
type Transferer interface {
	Transfer(ctx context.Context, to common.Address, amount *big.Int) error
}

type Vault struct {
	mu         sync.Mutex
	treasury   common.Address
	balance    *big.Int
	transferer Transferer
}

// New returns a vault paying out to treasury. balance may be nil for a fresh sale.
func New(treasury common.Address, balance *big.Int, transferer Transferer) *Vault {
	b := new(big.Int)
	if balance != nil {
		b.Set(balance)
	}
	return &Vault{
		treasury:   treasury,
		balance:    b,
		transferer: transferer,
	}
}

func (v *Vault) Treasury() common.Address {
	return v.treasury
}

// Balance returns a copy of the current balance.
func (v *Vault) Balance() *big.Int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return new(big.Int).Set(v.balance)
}

func (v *Vault) Deposit(amount *big.Int) {
	if amount == nil || amount.Sign() <= 0 {
		return
	}
	v.mu.Lock()
	v.balance.Add(v.balance, amount)
	v.mu.Unlock()
}

// Withdraw sends the whole balance to destination, which must be the treasury
// address. The balance is zeroed before the transfer and restored if the
// transfer fails. A zero balance is a no-op.
func (v *Vault) Withdraw(ctx context.Context, destination common.Address) (*big.Int, error) {
	if destination != v.treasury || destination == (common.Address{}) {
		return nil, fmt.Errorf("%w: %s is not the treasury", constants.ErrInvalidAddress, destination.Hex())
	}
	v.mu.Lock()
	amount := v.balance
	if amount.Sign() == 0 {
		v.mu.Unlock()
		return new(big.Int), nil
	}
	if v.transferer == nil {
		v.mu.Unlock()
		return nil, errNoTransferer
	}
	v.balance = new(big.Int)
	v.mu.Unlock()

	if err := v.transferer.Transfer(ctx, destination, amount); err != nil {
		v.mu.Lock()
		v.balance.Add(v.balance, amount)
		v.mu.Unlock()
		return nil, fmt.Errorf("transfer to treasury failed: %w", err)
	}
	return amount, nil
}
