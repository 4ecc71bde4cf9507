// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	luxlog "github.com/luxfi/log"
	"github.com/luxfi/minter/pkg/clock"
	"github.com/luxfi/minter/pkg/config"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/metrics"
	"github.com/luxfi/minter/pkg/models"
	"github.com/luxfi/minter/pkg/safety"
	"github.com/luxfi/minter/pkg/sale"
)

type Minter struct {
	Log     luxlog.Logger
	baseDir string
	Conf    *config.Config
	Clock   clock.Clock

	journalsLock sync.Mutex
	journals     map[*sale.Sale]*Journal
}

func New() *Minter {
	return &Minter{}
}

func (app *Minter) Setup(baseDir string, log luxlog.Logger, conf *config.Config, clk clock.Clock) {
	if log == nil {
		log = luxlog.NewNoOpLogger()
	}
	if conf == nil {
		conf = config.New()
	}
	if clk == nil {
		clk = clock.System{}
	}
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Clock = clk
}

func (app *Minter) GetBaseDir() string {
	return app.baseDir
}

func (app *Minter) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Minter) GetSalesDir() string {
	return filepath.Join(app.baseDir, constants.SalesDir)
}

func (app *Minter) GetSaleDir(saleName string) string {
	return filepath.Join(app.GetSalesDir(), saleName)
}

func (app *Minter) GetStatePath(saleName string) string {
	return filepath.Join(app.GetSaleDir(saleName), constants.StateFileName)
}

func (app *Minter) GetPayoutsPath(saleName string) string {
	return filepath.Join(app.GetSaleDir(saleName), constants.PayoutsFileName)
}

func (app *Minter) SaleExists(saleName string) bool {
	if safety.ValidateSaleName(saleName) != nil {
		return false
	}
	_, err := os.Stat(app.GetStatePath(saleName))
	return err == nil
}

// GetSales lists the names of every stored sale.
func (app *Minter) GetSales() ([]string, error) {
	entries, err := os.ReadDir(app.GetSalesDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() && app.SaleExists(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (app *Minter) CreateSale(st *models.SaleState) error {
	if err := safety.ValidateSaleName(st.Name); err != nil {
		return err
	}
	if app.SaleExists(st.Name) {
		return fmt.Errorf("%w: %s", constants.ErrSaleExists, st.Name)
	}
	return app.UpdateSale(st)
}

func (app *Minter) LoadSale(saleName string) (models.SaleState, error) {
	if err := safety.ValidateSaleName(saleName); err != nil {
		return models.SaleState{}, err
	}
	jsonBytes, err := os.ReadFile(app.GetStatePath(saleName))
	if errors.Is(err, os.ErrNotExist) {
		return models.SaleState{}, fmt.Errorf("%w: %s", constants.ErrSaleNotFound, saleName)
	}
	if err != nil {
		return models.SaleState{}, err
	}
	var st models.SaleState
	if err := json.Unmarshal(jsonBytes, &st); err != nil {
		return models.SaleState{}, fmt.Errorf("failed to decode state of sale %s: %w", saleName, err)
	}
	return st, nil
}

func (app *Minter) UpdateSale(st *models.SaleState) error {
	if err := safety.ValidateSaleName(st.Name); err != nil {
		return err
	}
	// only apply the version on a write
	st.Version = constants.StateVersion
	stBytes, err := json.MarshalIndent(st, "", "    ")
	if err != nil {
		return err
	}
	return app.writeFile(app.GetStatePath(st.Name), stBytes)
}

// DeleteSale removes a stored sale and its payout journal.
func (app *Minter) DeleteSale(saleName string) error {
	if !app.SaleExists(saleName) {
		return fmt.Errorf("%w: %s", constants.ErrSaleNotFound, saleName)
	}
	return safety.RemoveSale(app.GetBaseDir(), saleName)
}

// OpenSale restores a stored sale wired to the application clock, logger and
// payout journal. m may be nil.
func (app *Minter) OpenSale(saleName string, m *metrics.Sale) (*sale.Sale, error) {
	st, err := app.LoadSale(saleName)
	if err != nil {
		return nil, err
	}
	journal := app.PayoutJournal(saleName)
	s, err := sale.Restore(st, sale.Options{
		Clock:      app.Clock,
		Transferer: journal,
		Logger:     app.Log,
		Metrics:    m,
	})
	if err != nil {
		return nil, err
	}
	app.journalsLock.Lock()
	if app.journals == nil {
		app.journals = map[*sale.Sale]*Journal{}
	}
	app.journals[s] = journal
	app.journalsLock.Unlock()
	return s, nil
}

func (app *Minter) journalOf(s *sale.Sale) *Journal {
	app.journalsLock.Lock()
	defer app.journalsLock.Unlock()
	return app.journals[s]
}

// CloseSale drops the pending payouts of s and forgets it.
func (app *Minter) CloseSale(s *sale.Sale) {
	app.journalsLock.Lock()
	j := app.journals[s]
	delete(app.journals, s)
	app.journalsLock.Unlock()
	if j != nil {
		j.discard()
	}
}

// SaveSale persists the current snapshot of s, then appends the payouts it
// made since the last save to the journal. Payouts are never recorded for a
// state that failed to persist.
func (app *Minter) SaveSale(s *sale.Sale) error {
	st := s.Snapshot()
	j := app.journalOf(s)
	if err := app.UpdateSale(&st); err != nil {
		if j != nil {
			j.discard()
		}
		return err
	}
	if j == nil {
		return nil
	}
	return j.commit()
}

func (*Minter) writeFile(path string, bytes []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultPerms755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, bytes, constants.WriteReadReadPerms); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// WithSale opens a stored sale, applies fn and saves the result only if fn
// succeeds. If the payouts of fn cannot be journaled the stored state is
// rolled back to what it was before fn.
func (app *Minter) WithSale(saleName string, fn func(*sale.Sale) error) error {
	s, err := app.OpenSale(saleName, nil)
	if err != nil {
		return err
	}
	defer app.CloseSale(s)
	before := s.Snapshot()
	if err := fn(s); err != nil {
		return err
	}
	err = app.SaveSale(s)
	var commitErr *PayoutCommitError
	if errors.As(err, &commitErr) {
		if rollbackErr := app.UpdateSale(&before); rollbackErr != nil {
			app.Log.Error("failed to roll back sale after payout error",
				luxlog.String("sale", saleName),
				luxlog.Err(rollbackErr),
			)
			return errors.Join(err, rollbackErr)
		}
	}
	return err
}
