// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/minter/internal/mocks"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var (
	treasuryAddr = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	otherAddr    = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

func TestWithdrawToTreasury(t *testing.T) {
	require := require.New(t)
	tr := &mocks.Transferer{}
	tr.On("Transfer", mock.Anything, treasuryAddr, big.NewInt(500)).Return(nil).Once()

	v := New(treasuryAddr, big.NewInt(200), tr)
	v.Deposit(big.NewInt(300))
	amount, err := v.Withdraw(context.Background(), treasuryAddr)
	require.NoError(err)
	require.Equal(0, amount.Cmp(big.NewInt(500)))
	require.Equal(0, v.Balance().Sign())
	tr.AssertExpectations(t)
}

func TestWithdrawRejectsOtherDestination(t *testing.T) {
	require := require.New(t)
	tr := &mocks.Transferer{}
	v := New(treasuryAddr, big.NewInt(100), tr)
	_, err := v.Withdraw(context.Background(), otherAddr)
	require.ErrorIs(err, constants.ErrInvalidAddress)
	require.Equal(0, v.Balance().Cmp(big.NewInt(100)))
	tr.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawZeroBalanceIsNoop(t *testing.T) {
	require := require.New(t)
	tr := &mocks.Transferer{}
	v := New(treasuryAddr, nil, tr)
	amount, err := v.Withdraw(context.Background(), treasuryAddr)
	require.NoError(err)
	require.Equal(0, amount.Sign())
	tr.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawFailureRestoresBalance(t *testing.T) {
	require := require.New(t)
	errTransfer := errors.New("rejected by recipient")
	tr := &mocks.Transferer{}
	tr.On("Transfer", mock.Anything, treasuryAddr, mock.Anything).Return(errTransfer).Once()

	v := New(treasuryAddr, big.NewInt(700), tr)
	_, err := v.Withdraw(context.Background(), treasuryAddr)
	require.ErrorIs(err, errTransfer)
	require.Equal(0, v.Balance().Cmp(big.NewInt(700)))
}

func TestDepositIgnoresNonPositive(t *testing.T) {
	require := require.New(t)
	v := New(treasuryAddr, big.NewInt(10), &mocks.Transferer{})
	v.Deposit(nil)
	v.Deposit(big.NewInt(0))
	v.Deposit(big.NewInt(-5))
	require.Equal(0, v.Balance().Cmp(big.NewInt(10)))
}

type countingTransferer struct {
	mu    sync.Mutex
	total *big.Int
}

func (c *countingTransferer) Transfer(_ context.Context, _ common.Address, amount *big.Int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total.Add(c.total, amount)
	return nil
}

// Concurrent deposits and withdrawals never pay out more than was deposited.
func TestConcurrentWithdrawPaysOnce(t *testing.T) {
	defer goleak.VerifyNone(t)
	require := require.New(t)

	tr := &countingTransferer{total: new(big.Int)}
	v := New(treasuryAddr, nil, tr)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			v.Deposit(big.NewInt(3))
		}()
		go func() {
			defer wg.Done()
			_, err := v.Withdraw(context.Background(), treasuryAddr)
			require.NoError(err)
		}()
	}
	wg.Wait()

	_, err := v.Withdraw(context.Background(), treasuryAddr)
	require.NoError(err)
	require.Equal(0, tr.total.Cmp(big.NewInt(150)))
	require.Equal(0, v.Balance().Sign())
}
