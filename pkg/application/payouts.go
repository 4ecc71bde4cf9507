// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sync"

	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/models"
)

// Journal settles treasury withdrawals of one opened sale. Transfers are held
// until the sale state that zeroes the balance is saved, then appended to the
// payout file. It implements treasury.Transferer.
type Journal struct {
	app      *Minter
	saleName string

	lock    sync.Mutex
	pending []models.Payout
}

// PayoutCommitError reports a saved sale whose payouts could not be appended.
type PayoutCommitError struct {
	Sale string
	Err  error
}

func (e *PayoutCommitError) Error() string {
	return fmt.Sprintf("failed to record payouts of sale %s: %s", e.Sale, e.Err)
}

func (e *PayoutCommitError) Unwrap() error {
	return e.Err
}

func (app *Minter) PayoutJournal(saleName string) *Journal {
	return &Journal{app: app, saleName: saleName}
}

func (j *Journal) Transfer(ctx context.Context, to common.Address, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	j.lock.Lock()
	defer j.lock.Unlock()
	j.pending = append(j.pending, models.Payout{
		Destination: to,
		Amount:      new(big.Int).Set(amount),
		Timestamp:   j.app.Clock.Now(),
	})
	return nil
}

// Pending returns the number of transfers not yet appended.
func (j *Journal) Pending() int {
	j.lock.Lock()
	defer j.lock.Unlock()
	return len(j.pending)
}

func (j *Journal) discard() {
	j.lock.Lock()
	defer j.lock.Unlock()
	j.pending = nil
}

func (j *Journal) commit() error {
	j.lock.Lock()
	defer j.lock.Unlock()
	for len(j.pending) > 0 {
		p := j.pending[0]
		if err := j.app.AppendPayout(j.saleName, p); err != nil {
			j.pending = nil
			return &PayoutCommitError{Sale: j.saleName, Err: err}
		}
		j.pending = j.pending[1:]
		j.app.Log.Info("payout recorded",
			luxlog.String("sale", j.saleName),
			luxlog.Stringer("destination", p.Destination),
			luxlog.Stringer("amount", p.Amount),
		)
	}
	j.pending = nil
	return nil
}

func (app *Minter) AppendPayout(saleName string, payout models.Payout) error {
	path := app.GetPayoutsPath(saleName)
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultPerms755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.WriteReadReadPerms)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(f).Encode(payout); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append payout: %w", err)
	}
	return f.Close()
}

// LoadPayouts returns the recorded payouts of a sale, oldest first.
func (app *Minter) LoadPayouts(saleName string) ([]models.Payout, error) {
	f, err := os.Open(app.GetPayoutsPath(saleName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	payouts := []models.Payout{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var p models.Payout
		if err := json.Unmarshal(scanner.Bytes(), &p); err != nil {
			return nil, fmt.Errorf("malformed payout record: %w", err)
		}
		payouts = append(payouts, p)
	}
	return payouts, scanner.Err()
}
