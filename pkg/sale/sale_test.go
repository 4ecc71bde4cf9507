// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sale

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/minter/internal/mocks"
	"github.com/luxfi/minter/internal/testutils"
	"github.com/luxfi/minter/pkg/clock"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/metrics"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/phase"
	"github.com/luxfi/minter/pkg/whitelist"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const t0 = uint64(1_700_000_000)

type fixture struct {
	sale       *Sale
	clock      *clock.Manual
	transferer *mocks.Transferer
	owner      testutils.Account
	treasury   testutils.Account
	signer     testutils.Account
	buyers     []testutils.Account
}

func testParams(owner, treasury common.Address) Params {
	return Params{
		Name:     "genesis",
		Owner:    owner,
		Treasury: treasury,
		Domain: models.DomainParams{
			Name:              constants.DefaultDomainName,
			Version:           constants.DefaultDomainVersion,
			ChainID:           constants.DefaultChainID,
			VerifyingContract: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		},
		Config: models.SaleConfig{
			MaxSupply:        100,
			MaxReserve:       10,
			VaultReserveSize: 5,
			MaxPrivate:       20,
			Limits:           models.TransactionLimits{PrivateTx: 3, PrivateWallet: 3, PublicTx: 3, PublicWallet: 3},
			Prices: models.Prices{
				Private:      big.NewInt(80),
				Public:       big.NewInt(100),
				AuctionStart: big.NewInt(300),
				AuctionStep:  big.NewInt(20),
				AuctionFloor: big.NewInt(100),
			},
			ReduceIntervalSeconds: 300,
		},
		PreRevealURI: "ipfs://hidden.json",
		BaseURI:      "ipfs://meta/",
	}
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	accounts := testutils.NewAccounts(t, 6)
	f := &fixture{
		clock:      clock.NewManual(t0),
		transferer: &mocks.Transferer{},
		owner:      accounts[0],
		treasury:   accounts[1],
		signer:     accounts[2],
		buyers:     accounts[3:],
	}
	opts.Clock = f.clock
	opts.Transferer = f.transferer
	s, err := New(testParams(f.owner.Address, f.treasury.Address), opts)
	require.NoError(t, err)
	f.sale = s
	return f
}

func (f *fixture) sig(t *testing.T, wallet common.Address) []byte {
	t.Helper()
	sig, err := whitelist.Sign(whitelist.DomainFromParams(f.sale.domain), wallet, f.signer.Key)
	require.NoError(t, err)
	return sig
}

func (f *fixture) openPrivate(t *testing.T) {
	t.Helper()
	require.NoError(t, f.sale.EnablePrivateSale(f.owner.Address, t0+5, 10))
	require.NoError(t, f.sale.SetSigningAddress(f.owner.Address, f.signer.Address))
	f.clock.Set(t0 + 5)
}

func (f *fixture) openPublic(t *testing.T) {
	t.Helper()
	_, err := f.sale.TogglePublicDutchAuction(f.owner.Address)
	require.NoError(t, err)
	require.NoError(t, f.sale.EnablePublicSale(f.owner.Address, t0+1_000, 20))
	f.clock.Set(t0 + 1_000)
}

func TestNewRejectsBadParams(t *testing.T) {
	require := require.New(t)
	owner := common.HexToAddress("0x01")
	treasury := common.HexToAddress("0x02")

	p := testParams(common.Address{}, treasury)
	_, err := New(p, Options{})
	require.ErrorIs(err, constants.ErrInvalidAddress)

	p = testParams(owner, common.Address{})
	_, err = New(p, Options{})
	require.ErrorIs(err, constants.ErrInvalidAddress)

	p = testParams(owner, treasury)
	p.Config.VaultReserveSize = p.Config.MaxReserve + 1
	_, err = New(p, Options{})
	require.ErrorIs(err, constants.ErrInvalidValue)
}

func TestOwnerOnlyOperations(t *testing.T) {
	f := newFixture(t, Options{})
	stranger := f.buyers[0].Address
	ops := map[string]func() error{
		"enablePrivate": func() error { return f.sale.EnablePrivateSale(stranger, t0, 10) },
		"enablePublic":  func() error { return f.sale.EnablePublicSale(stranger, t0, 10) },
		"toggle": func() error {
			_, err := f.sale.TogglePublicDutchAuction(stranger)
			return err
		},
		"signer":    func() error { return f.sale.SetSigningAddress(stranger, stranger) },
		"limits":    func() error { return f.sale.SetTransactionLimit(stranger, models.TransactionLimits{}) },
		"reduce":    func() error { return f.sale.SetReduceTime(stranger, 60) },
		"prices":    func() error { return f.sale.SetPrices(stranger, models.Prices{}) },
		"ownership": func() error { return f.sale.TransferOwnership(stranger, stranger) },
		"seed":      func() error { return f.sale.SetSeed(stranger, 1) },
		"reveal":    func() error { return f.sale.Reveal(stranger) },
		"preURI":    func() error { return f.sale.SetPreRevealURI(stranger, "x") },
		"baseURI":   func() error { return f.sale.SetBaseURI(stranger, "x") },
		"airdrop": func() error {
			_, err := f.sale.Airdrop(stranger, []common.Address{stranger}, 1)
			return err
		},
		"withdraw": func() error {
			_, err := f.sale.Withdraw(context.Background(), stranger, f.treasury.Address)
			return err
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, op(), constants.ErrNotOwner)
		})
	}
	require.Equal(t, f.owner.Address, f.sale.Owner())
	require.False(t, f.sale.Revealed())
}

func TestAirdropReserve(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	x := f.buyers[0].Address

	_, err := f.sale.Airdrop(x, []common.Address{x}, 10)
	require.ErrorIs(err, constants.ErrNotOwner)
	_, err = f.sale.Airdrop(f.owner.Address, []common.Address{x}, 11)
	require.ErrorIs(err, constants.ErrInvalidValue)

	receipts, err := f.sale.Airdrop(f.owner.Address, []common.Address{x}, 10)
	require.NoError(err)
	require.Len(receipts, 1)
	require.Equal(uint64(1), receipts[0].FirstID)
	require.Equal(uint64(10), receipts[0].LastID)
	require.Equal(uint64(10), f.sale.ReserveMinted())
	require.Equal(uint64(10), f.sale.TotalSupply())
	require.Equal(uint64(10), f.sale.NumberMinted(x))
}

func TestPrivateSaleGating(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	buyer := f.buyers[0]
	other := f.buyers[1]
	payment := big.NewInt(160)

	require.NoError(f.sale.EnablePrivateSale(f.owner.Address, t0+5, 10))
	_, err := f.sale.Mint(buyer.Address, 2, f.sig(t, buyer.Address), payment)
	require.ErrorIs(err, constants.ErrSaleNotAvailable)

	f.clock.Set(t0 + 5)
	require.Equal(phase.PrivateSale, f.sale.Phase())
	_, err = f.sale.Mint(buyer.Address, 2, f.sig(t, buyer.Address), payment)
	require.ErrorIs(err, constants.ErrSignedNotEnabled)

	require.NoError(f.sale.SetSigningAddress(f.owner.Address, f.signer.Address))
	_, err = f.sale.Mint(buyer.Address, 2, f.sig(t, other.Address), payment)
	require.ErrorIs(err, constants.ErrInvalidSignature)

	receipt, err := f.sale.Mint(buyer.Address, 2, f.sig(t, buyer.Address), payment)
	require.NoError(err)
	require.Equal("PrivateSale", receipt.Phase)
	require.Equal(0, receipt.UnitPrice.Cmp(big.NewInt(80)))
	require.Equal(uint64(2), f.sale.PrivateMinted(buyer.Address))
	require.Equal(uint64(2), f.sale.PrivateSupply())
	require.Equal(0, f.sale.Balance().Cmp(payment))

	// window closed
	f.clock.Set(t0 + 5 + 600)
	_, err = f.sale.Mint(buyer.Address, 1, f.sig(t, buyer.Address), big.NewInt(80))
	require.ErrorIs(err, constants.ErrSaleNotAvailable)
}

func TestTransactionLimitBeforePayment(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	f.openPrivate(t)
	buyer := f.buyers[0]
	sig := f.sig(t, buyer.Address)

	for _, payment := range []*big.Int{big.NewInt(320), big.NewInt(1), nil} {
		_, err := f.sale.Mint(buyer.Address, 4, sig, payment)
		require.ErrorIs(err, constants.ErrExceedLimit)
	}
	require.Equal(uint64(0), f.sale.TotalSupply())
}

func TestExactPayment(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	f.openPrivate(t)
	buyer := f.buyers[0]
	sig := f.sig(t, buyer.Address)

	_, err := f.sale.Mint(buyer.Address, 3, sig, big.NewInt(239))
	require.ErrorIs(err, constants.ErrInvalidValue)
	_, err = f.sale.Mint(buyer.Address, 3, sig, big.NewInt(241))
	require.ErrorIs(err, constants.ErrInvalidValue)
	require.Equal(0, f.sale.Balance().Sign())

	_, err = f.sale.Mint(buyer.Address, 3, sig, big.NewInt(240))
	require.NoError(err)
	require.Equal(0, f.sale.Balance().Cmp(big.NewInt(240)))
}

func TestWalletLimitPerPhase(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	f.openPrivate(t)
	buyer := f.buyers[0]
	sig := f.sig(t, buyer.Address)

	_, err := f.sale.Mint(buyer.Address, 3, sig, big.NewInt(240))
	require.NoError(err)
	_, err = f.sale.Mint(buyer.Address, 1, sig, big.NewInt(80))
	require.ErrorIs(err, constants.ErrExceedLimit)

	// the public wallet limit is tracked separately
	f.openPublic(t)
	_, err = f.sale.Mint(buyer.Address, 3, nil, big.NewInt(900))
	require.NoError(err)
	require.Equal(uint64(3), f.sale.PublicMinted(buyer.Address))
	require.Equal(uint64(6), f.sale.NumberMinted(buyer.Address))
	_, err = f.sale.Mint(buyer.Address, 1, nil, big.NewInt(300))
	require.ErrorIs(err, constants.ErrExceedLimit)
}

func TestDutchAuctionPrice(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})

	// pre-sale queries preview the start price
	require.Equal(0, f.sale.Price().Cmp(big.NewInt(300)))

	f.openPublic(t)
	require.Equal(phase.PublicSale, f.sale.Phase())
	f.clock.Set(t0 + 1_000 + 650)
	require.Equal(phase.ModeDutchAuction, f.sale.PricingPhase().Mode)
	require.Equal(0, f.sale.Price().Cmp(big.NewInt(260)))

	f.clock.Set(t0 + 1_000 + 1_199)
	require.Equal(0, f.sale.Price().Cmp(big.NewInt(240)))

	require.ErrorIs(f.sale.SetReduceTime(f.owner.Address, 0), constants.ErrInvalidValue)
	require.NoError(f.sale.SetReduceTime(f.owner.Address, 60))
	require.Equal(uint64(60), f.sale.ReduceInterval())
	require.Equal(0, f.sale.Price().Cmp(big.NewInt(100)))

	// after the window the preview price returns
	f.clock.Set(t0 + 1_000 + 1_200)
	require.Equal(phase.Idle, f.sale.Phase())
	require.Equal(0, f.sale.Price().Cmp(big.NewInt(300)))
}

func TestToggleOffKeepsFixedPublicPrice(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	f.openPublic(t)

	enabled, err := f.sale.TogglePublicDutchAuction(f.owner.Address)
	require.NoError(err)
	require.False(enabled)
	require.Equal(phase.PublicSale, f.sale.Phase())
	require.Equal(0, f.sale.Price().Cmp(big.NewInt(100)))

	buyer := f.buyers[0]
	_, err = f.sale.Mint(buyer.Address, 2, nil, big.NewInt(200))
	require.NoError(err)
}

func TestSetPrices(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	err := f.sale.SetPrices(f.owner.Address, models.Prices{Private: big.NewInt(-1)})
	require.ErrorIs(err, constants.ErrInvalidValue)

	require.NoError(f.sale.SetPrices(f.owner.Address, models.Prices{
		Private:      big.NewInt(1),
		Public:       big.NewInt(2),
		AuctionStart: big.NewInt(50),
		AuctionStep:  big.NewInt(5),
		AuctionFloor: big.NewInt(10),
	}))
	require.Equal(0, f.sale.Price().Cmp(big.NewInt(50)))
	require.Equal(0, f.sale.Prices().Public.Cmp(big.NewInt(2)))
}

func TestSoldOut(t *testing.T) {
	require := require.New(t)
	p := testParams(common.HexToAddress("0x01"), common.HexToAddress("0x02"))
	p.Config.MaxSupply = 12
	p.Config.MaxPrivate = 12
	c := clock.NewManual(t0)
	s, err := New(p, Options{Clock: c})
	require.NoError(err)
	owner := p.Owner

	_, err = s.Airdrop(owner, []common.Address{owner}, 10)
	require.NoError(err)
	_, err = s.TogglePublicDutchAuction(owner)
	require.NoError(err)
	require.NoError(s.EnablePublicSale(owner, t0, 20))

	buyer := common.HexToAddress("0x03")
	_, err = s.Mint(buyer, 3, nil, big.NewInt(900))
	require.ErrorIs(err, constants.ErrExceedLimit)
	_, err = s.Mint(buyer, 2, nil, big.NewInt(600))
	require.NoError(err)
	require.Equal(phase.SoldOut, s.Phase())
	_, err = s.Mint(buyer, 1, nil, big.NewInt(300))
	require.ErrorIs(err, constants.ErrSaleNotAvailable)
}

func TestWithdraw(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	f.openPrivate(t)
	buyer := f.buyers[0]
	_, err := f.sale.Mint(buyer.Address, 2, f.sig(t, buyer.Address), big.NewInt(160))
	require.NoError(err)

	_, err = f.sale.Withdraw(context.Background(), f.owner.Address, buyer.Address)
	require.ErrorIs(err, constants.ErrInvalidAddress)

	f.transferer.On("Transfer", mock.Anything, f.treasury.Address, big.NewInt(160)).Return(nil).Once()
	payout, err := f.sale.Withdraw(context.Background(), f.owner.Address, f.treasury.Address)
	require.NoError(err)
	require.Equal(f.treasury.Address, payout.Destination)
	require.Equal(0, payout.Amount.Cmp(big.NewInt(160)))
	require.Equal(t0+5, payout.Timestamp)
	require.Equal(0, f.sale.Balance().Sign())
	f.transferer.AssertExpectations(t)

	// nothing left to pay
	payout, err = f.sale.Withdraw(context.Background(), f.owner.Address, f.treasury.Address)
	require.NoError(err)
	require.Equal(0, payout.Amount.Sign())
}

func TestWithdrawFailureKeepsBalance(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	f.openPrivate(t)
	buyer := f.buyers[0]
	_, err := f.sale.Mint(buyer.Address, 1, f.sig(t, buyer.Address), big.NewInt(80))
	require.NoError(err)

	errBounce := errors.New("bounced")
	f.transferer.On("Transfer", mock.Anything, f.treasury.Address, mock.Anything).Return(errBounce).Once()
	_, err = f.sale.Withdraw(context.Background(), f.owner.Address, f.treasury.Address)
	require.ErrorIs(err, errBounce)
	require.Equal(0, f.sale.Balance().Cmp(big.NewInt(80)))
}

func TestRevealAndTokenURI(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	owner := f.owner.Address

	uri, err := f.sale.TokenURI(1)
	require.NoError(err)
	require.Equal("ipfs://hidden.json", uri)
	_, err = f.sale.TokenURI(101)
	require.ErrorIs(err, constants.ErrInvalidValue)

	require.NoError(f.sale.SetSeed(owner, 6354725381))
	require.NoError(f.sale.SetBaseURI(owner, "ipfs://final/"))
	require.NoError(f.sale.Reveal(owner))
	first, err := f.sale.TokenURI(42)
	require.NoError(err)
	require.NoError(f.sale.Reveal(owner))
	second, err := f.sale.TokenURI(42)
	require.NoError(err)
	require.Equal(first, second)
	require.True(f.sale.Revealed())

	uri, err = f.sale.TokenURI(5)
	require.NoError(err)
	require.Equal("ipfs://final/5.json", uri)
	metaID, err := f.sale.MetaID(5)
	require.NoError(err)
	require.Equal(uint64(5), metaID)
}

func TestTransferOwnership(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	next := f.buyers[0].Address

	require.ErrorIs(f.sale.TransferOwnership(f.owner.Address, common.Address{}), constants.ErrInvalidAddress)
	require.NoError(f.sale.TransferOwnership(f.owner.Address, next))
	require.Equal(next, f.sale.Owner())
	require.ErrorIs(f.sale.Reveal(f.owner.Address), constants.ErrNotOwner)
	require.NoError(f.sale.Reveal(next))
}

func TestSnapshotRestore(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	f.openPrivate(t)
	buyer := f.buyers[0]
	_, err := f.sale.Mint(buyer.Address, 2, f.sig(t, buyer.Address), big.NewInt(160))
	require.NoError(err)
	_, err = f.sale.Airdrop(f.owner.Address, []common.Address{buyer.Address}, 4)
	require.NoError(err)
	require.NoError(f.sale.SetTransactionLimit(f.owner.Address, models.TransactionLimits{PrivateTx: 5, PrivateWallet: 6, PublicTx: 7, PublicWallet: 8}))
	require.NoError(f.sale.SetSeed(f.owner.Address, 99))

	st := f.sale.Snapshot()
	restored, err := Restore(st, Options{Clock: f.clock, Transferer: f.transferer})
	require.NoError(err)
	require.Equal(st, restored.Snapshot())
	require.Equal(uint64(6), restored.NumberMinted(buyer.Address))
	require.Equal(uint64(8), restored.Limits().PublicWallet)
	require.Equal(f.signer.Address, restored.Signer())
	require.Equal(0, restored.Balance().Cmp(big.NewInt(160)))
	for _, id := range []uint64{1, 6, 50, 100} {
		want, err := f.sale.MetaID(id)
		require.NoError(err)
		got, err := restored.MetaID(id)
		require.NoError(err)
		require.Equal(want, got)
	}
}

func TestMetricsRecorded(t *testing.T) {
	require := require.New(t)
	reg := prometheus.NewRegistry()
	f := newFixture(t, Options{Metrics: metrics.New(reg)})
	f.openPrivate(t)
	buyer := f.buyers[0]

	_, err := f.sale.Mint(buyer.Address, 4, f.sig(t, buyer.Address), big.NewInt(320))
	require.ErrorIs(err, constants.ErrExceedLimit)
	_, err = f.sale.Mint(buyer.Address, 2, f.sig(t, buyer.Address), big.NewInt(160))
	require.NoError(err)

	count, err := testutil.GatherAndCount(reg, "minter_units_minted_total", "minter_rejected_operations_total")
	require.NoError(err)
	require.Equal(2, count)
	families, err := reg.Gather()
	require.NoError(err)
	for _, mf := range families {
		if mf.GetName() == "minter_total_supply" {
			require.InDelta(2, mf.GetMetric()[0].GetGauge().GetValue(), 0)
		}
	}
}

func TestStatus(t *testing.T) {
	require := require.New(t)
	f := newFixture(t, Options{})
	f.openPrivate(t)
	st := f.sale.Status()
	require.Equal("genesis", st.Name)
	require.Equal(t0+5, st.Now)
	require.Equal(phase.PrivateSale, st.Phase)
	require.Equal(0, st.Price.Cmp(big.NewInt(80)))
	require.Equal(f.signer.Address, st.Signer)
	require.Equal(t0+5, st.PrivateWindow.BeginTime)
	require.Equal(t0+5+600, st.PrivateWindow.EndTime)
	require.False(st.PublicActivated)
}

// tickingClock moves one second forward every time it is read.
type tickingClock struct {
	*clock.Manual
}

func (c tickingClock) Now() uint64 {
	return c.Advance(1) - 1
}

func TestMintAtCurrentPriceSamplesClockOnce(t *testing.T) {
	require := require.New(t)
	accounts := testutils.NewAccounts(t, 3)
	owner, treasury, buyer := accounts[0], accounts[1], accounts[2]
	c := tickingClock{clock.NewManual(t0)}
	s, err := New(testParams(owner.Address, treasury.Address), Options{Clock: c, Transferer: &mocks.Transferer{}})
	require.NoError(err)
	_, err = s.TogglePublicDutchAuction(owner.Address)
	require.NoError(err)
	require.NoError(s.EnablePublicSale(owner.Address, t0+1_000, 20))

	// the last second before the first price step
	c.Set(t0 + 1_000 + 299)
	receipt, err := s.MintAtCurrentPrice(buyer.Address, 1, nil)
	require.NoError(err)
	require.Equal(0, receipt.UnitPrice.Cmp(big.NewInt(300)))
	require.Equal(0, receipt.Total.Cmp(big.NewInt(300)))

	// pricing and minting on separate reads straddles the step
	c.Set(t0 + 1_000 + 599)
	price := s.Price()
	require.Equal(0, price.Cmp(big.NewInt(280)))
	_, err = s.Mint(buyer.Address, 1, nil, price)
	require.ErrorIs(err, constants.ErrInvalidValue)
	require.Equal(0, s.Balance().Cmp(big.NewInt(300)))
}
