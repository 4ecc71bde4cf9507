// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sale

import (
	"context"
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/minter/internal/mocks"
	"github.com/luxfi/minter/internal/testutils"
	"github.com/luxfi/minter/pkg/clock"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/phase"
	"github.com/luxfi/minter/pkg/whitelist"
	"github.com/stretchr/testify/mock"

	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// Replays a full sale: reserve airdrop, private sale, public dutch auction,
// sell out, withdraw and reveal.
var _ = ginkgo.Describe("[Sale lifecycle]", ginkgo.Ordered, func() {
	const (
		maxSupply  = 40
		maxReserve = 10
		seed       = 6354725381
	)
	var (
		s          *Sale
		now        *clock.Manual
		transferer *mocks.Transferer
		owner      testutils.Account
		treasury   testutils.Account
		signer     testutils.Account
		buyers     []testutils.Account
		domain     whitelist.Domain
		proceeds   = new(big.Int)
	)

	sign := func(wallet common.Address) []byte {
		sig, err := whitelist.Sign(domain, wallet, signer.Key)
		gomega.Expect(err).Should(gomega.BeNil())
		return sig
	}

	ginkgo.BeforeAll(func() {
		accounts, err := testutils.GenerateAccounts(12)
		gomega.Expect(err).Should(gomega.BeNil())
		owner, treasury, signer, buyers = accounts[0], accounts[1], accounts[2], accounts[3:]

		p := testParams(owner.Address, treasury.Address)
		p.Config.MaxSupply = maxSupply
		p.Config.MaxReserve = maxReserve
		p.Config.MaxPrivate = 15
		domain = whitelist.DomainFromParams(p.Domain)

		now = clock.NewManual(t0)
		transferer = &mocks.Transferer{}
		s, err = New(p, Options{Clock: now, Transferer: transferer})
		gomega.Expect(err).Should(gomega.BeNil())
	})

	ginkgo.It("starts idle and previews the auction start price", func() {
		gomega.Expect(s.Phase()).Should(gomega.Equal(phase.Idle))
		gomega.Expect(s.Price().Int64()).Should(gomega.Equal(int64(300)))
	})

	ginkgo.It("airdrops the reserve", func() {
		_, err := s.Airdrop(buyers[0].Address, []common.Address{buyers[0].Address}, maxReserve)
		gomega.Expect(err).Should(gomega.MatchError(constants.ErrNotOwner))
		_, err = s.Airdrop(owner.Address, []common.Address{buyers[0].Address, buyers[1].Address}, 6)
		gomega.Expect(err).Should(gomega.MatchError(constants.ErrInvalidValue))

		receipts, err := s.Airdrop(owner.Address, []common.Address{buyers[0].Address, buyers[1].Address}, 5)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(receipts).Should(gomega.HaveLen(2))
		gomega.Expect(receipts[1].FirstID).Should(gomega.Equal(uint64(6)))
		gomega.Expect(s.ReserveMinted()).Should(gomega.Equal(uint64(maxReserve)))
	})

	ginkgo.It("rejects private mints outside the window and before gating", func() {
		gomega.Expect(s.EnablePrivateSale(owner.Address, t0+5, 10)).Should(gomega.Succeed())
		_, err := s.Mint(buyers[2].Address, 1, sign(buyers[2].Address), big.NewInt(80))
		gomega.Expect(err).Should(gomega.MatchError(constants.ErrSaleNotAvailable))

		now.Set(t0 + 5)
		_, err = s.Mint(buyers[2].Address, 1, sign(buyers[2].Address), big.NewInt(80))
		gomega.Expect(err).Should(gomega.MatchError(constants.ErrSignedNotEnabled))
	})

	ginkgo.It("sells the private allocation to signed wallets", func() {
		gomega.Expect(s.SetSigningAddress(owner.Address, signer.Address)).Should(gomega.Succeed())
		_, err := s.Mint(buyers[2].Address, 1, sign(buyers[3].Address), big.NewInt(80))
		gomega.Expect(err).Should(gomega.MatchError(constants.ErrInvalidSignature))

		for _, b := range buyers[2:7] {
			_, err := s.Mint(b.Address, 3, sign(b.Address), big.NewInt(240))
			gomega.Expect(err).Should(gomega.BeNil())
			proceeds.Add(proceeds, big.NewInt(240))
		}
		gomega.Expect(s.PrivateSupply()).Should(gomega.Equal(uint64(15)))
		// the private cap closes the private track
		gomega.Expect(s.Phase()).Should(gomega.Equal(phase.Idle))
		_, err = s.Mint(buyers[7].Address, 1, sign(buyers[7].Address), big.NewInt(80))
		gomega.Expect(err).Should(gomega.MatchError(constants.ErrSaleNotAvailable))
	})

	ginkgo.It("opens the public dutch auction once toggled", func() {
		gomega.Expect(s.EnablePublicSale(owner.Address, t0+1_000, 60)).Should(gomega.Succeed())
		now.Set(t0 + 1_000)
		gomega.Expect(s.Phase()).Should(gomega.Equal(phase.Idle))

		enabled, err := s.TogglePublicDutchAuction(owner.Address)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(enabled).Should(gomega.BeTrue())
		gomega.Expect(s.Phase()).Should(gomega.Equal(phase.PublicSale))

		now.Set(t0 + 1_000 + 650)
		gomega.Expect(s.Price().Int64()).Should(gomega.Equal(int64(260)))
	})

	ginkgo.It("sells out at the decayed price", func() {
		remaining := uint64(maxSupply) - s.TotalSupply()
		gomega.Expect(remaining).Should(gomega.Equal(uint64(15)))
		for _, b := range buyers[2:7] {
			_, err := s.Mint(b.Address, 3, nil, big.NewInt(780))
			gomega.Expect(err).Should(gomega.BeNil())
			proceeds.Add(proceeds, big.NewInt(780))
		}
		gomega.Expect(s.Phase()).Should(gomega.Equal(phase.SoldOut))
		_, err := s.Mint(buyers[8].Address, 1, nil, big.NewInt(260))
		gomega.Expect(err).Should(gomega.MatchError(constants.ErrSaleNotAvailable))
		gomega.Expect(s.Balance().Cmp(proceeds)).Should(gomega.Equal(0))
	})

	ginkgo.It("withdraws only to the treasury", func() {
		_, err := s.Withdraw(context.Background(), owner.Address, owner.Address)
		gomega.Expect(err).Should(gomega.MatchError(constants.ErrInvalidAddress))

		transferer.On("Transfer", mock.Anything, treasury.Address, mock.Anything).Return(nil).Once()
		payout, err := s.Withdraw(context.Background(), owner.Address, treasury.Address)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(payout.Amount.Cmp(proceeds)).Should(gomega.Equal(0))
		gomega.Expect(s.Balance().Sign()).Should(gomega.Equal(0))
	})

	ginkgo.It("reveals shuffled metadata outside the vault", func() {
		uri, err := s.TokenURI(20)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(uri).Should(gomega.Equal("ipfs://hidden.json"))

		gomega.Expect(s.SetSeed(owner.Address, seed)).Should(gomega.Succeed())
		gomega.Expect(s.Reveal(owner.Address)).Should(gomega.Succeed())

		seen := map[uint64]bool{}
		for id := uint64(1); id <= maxSupply; id++ {
			metaID, err := s.MetaID(id)
			gomega.Expect(err).Should(gomega.BeNil())
			if id <= 5 {
				gomega.Expect(metaID).Should(gomega.Equal(id))
			}
			gomega.Expect(metaID).Should(gomega.BeNumerically(">=", 1))
			gomega.Expect(metaID).Should(gomega.BeNumerically("<=", maxSupply))
			seen[metaID] = true
		}
		gomega.Expect(seen).Should(gomega.HaveLen(maxSupply))

		uri, err = s.TokenURI(3)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(uri).Should(gomega.Equal("ipfs://meta/3.json"))
	})

	ginkgo.It("round-trips its snapshot", func() {
		st := s.Snapshot()
		gomega.Expect(st.Ledger.TotalSupply).Should(gomega.Equal(uint64(maxSupply)))
		restored, err := Restore(st, Options{Clock: now})
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(restored.Snapshot()).Should(gomega.Equal(st))
		gomega.Expect(restored.Status().Phase).Should(gomega.Equal(phase.SoldOut))
	})
})

var _ = ginkgo.Describe("[Sale limits]", func() {
	ginkgo.It("applies new transaction limits immediately", func() {
		accounts, err := testutils.GenerateAccounts(2)
		gomega.Expect(err).Should(gomega.BeNil())
		owner := accounts[0].Address
		s, err := New(testParams(owner, accounts[1].Address), Options{Clock: clock.Fixed(t0)})
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(s.SetTransactionLimit(owner, models.TransactionLimits{PrivateTx: 1, PrivateWallet: 1, PublicTx: 5, PublicWallet: 5})).Should(gomega.Succeed())
		_, err = s.TogglePublicDutchAuction(owner)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(s.EnablePublicSale(owner, t0, 10)).Should(gomega.Succeed())

		_, err = s.Mint(owner, 5, nil, big.NewInt(1500))
		gomega.Expect(err).Should(gomega.BeNil())
		_, err = s.Mint(owner, 1, nil, big.NewInt(300))
		gomega.Expect(err).Should(gomega.MatchError(constants.ErrExceedLimit))
	})
})
