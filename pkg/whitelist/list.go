// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package whitelist

import (
	"bufio"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/minter/pkg/constants"
	"golang.org/x/sync/errgroup"
)

var ErrWalletNotListed = errors.New("wallet not in whitelist")

// Entry is one line of a whitelist file: {"address":"0x..","signature":"0x.."}.
type Entry struct {
	Address   common.Address `json:"address"`
	Signature hexutil.Bytes  `json:"signature"`
}

// SignBatch signs every wallet concurrently. Entries keep the order of wallets.
func SignBatch(ctx context.Context, domain Domain, key *ecdsa.PrivateKey, wallets []common.Address) ([]Entry, error) {
	entries := make([]Entry, len(wallets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, wallet := range wallets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sig, err := Sign(domain, wallet, key)
			if err != nil {
				return fmt.Errorf("failed signing %s: %w", wallet.Hex(), err)
			}
			entries[i] = Entry{Address: wallet, Signature: sig}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func WriteEntries(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

func ReadEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		bs := scanner.Bytes()
		if len(bs) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(bs, &e); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func WriteFile(path string, entries []Entry) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.WriteReadReadPerms)
	if err != nil {
		return err
	}
	if err := WriteEntries(f, entries); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadEntries(f)
}

// Lookup returns the signature listed for wallet.
func Lookup(entries []Entry, wallet common.Address) ([]byte, error) {
	for _, e := range entries {
		if e.Address == wallet {
			return e.Signature, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrWalletNotListed, wallet.Hex())
}
