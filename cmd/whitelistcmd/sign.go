// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package whitelistcmd

import (
	"bufio"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
	"github.com/luxfi/minter/cmd/flags"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/luxfi/minter/pkg/whitelist"
	"github.com/spf13/cobra"
)

var (
	keyHex     string
	keyFile    string
	outFile    string
	inputFile  string
	errNoKey   = errors.New("one of --key or --key-file is required")
	errNoInput = errors.New("no wallet addresses given")
)

// minter whitelist sign
func newSignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [address]...",
		Short: "Sign wallets into a whitelist file",
		Long: `The whitelist sign command signs every wallet given as an argument or
listed one per line in --input with the signer key, and writes the result
to --out.`,
		SilenceUsage: true,
		RunE:         signWhitelist,
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "hex private key of the signer")
	cmd.Flags().StringVar(&keyFile, "key-file", "", "file holding the hex private key of the signer")
	cmd.Flags().StringVar(&outFile, "out", "", "whitelist file to write")
	cmd.Flags().StringVar(&inputFile, "input", "", "file with one wallet address per line")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func signWhitelist(cmd *cobra.Command, args []string) error {
	key, err := loadKey()
	if err != nil {
		return err
	}
	wallets, err := flags.ParseAddresses(args)
	if err != nil {
		return err
	}
	if inputFile != "" {
		listed, err := readAddressFile(inputFile)
		if err != nil {
			return err
		}
		wallets = append(wallets, listed...)
	}
	if len(wallets) == 0 {
		return errNoInput
	}

	domain, err := signingDomain()
	if err != nil {
		return err
	}
	entries, err := whitelist.SignBatch(cmd.Context(), domain, key, wallets)
	if err != nil {
		return err
	}
	if err := whitelist.WriteFile(outFile, entries); err != nil {
		return fmt.Errorf("failed writing whitelist: %w", err)
	}
	signer := whitelist.SignerAddress(key)
	app.Log.Info("signed whitelist",
		luxlog.Stringer("signer", signer),
		luxlog.Int("wallets", len(entries)),
		luxlog.String("file", outFile),
	)
	ux.Logger.GreenCheckmarkToUser("Signed %d wallets with %s into %s", len(entries), signer.Hex(), outFile)
	return nil
}

func loadKey() (*ecdsa.PrivateKey, error) {
	raw := keyHex
	if keyFile != "" {
		bs, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("failed reading key file: %w", err)
		}
		raw = string(bs)
	}
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if raw == "" {
		return nil, errNoKey
	}
	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid signer key: %w", err)
	}
	return key, nil
}

func readAddressFile(path string) ([]common.Address, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return flags.ParseAddresses(lines)
}
