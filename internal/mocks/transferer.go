// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"context"
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/mock"
)

// Transferer is a mock implementation of treasury.Transferer
type Transferer struct {
	mock.Mock
}

func (m *Transferer) Transfer(ctx context.Context, to common.Address, amount *big.Int) error {
	args := m.Called(ctx, to, amount)
	return args.Error(0)
}
