// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/models"
	"github.com/spf13/pflag"
)

// Address is a pflag.Value holding a checksummed or lowercase hex address.
type Address struct {
	common.Address
	set bool
}

var _ pflag.Value = (*Address)(nil)

func (a *Address) Set(s string) error {
	if !common.IsHexAddress(s) {
		return fmt.Errorf("%w: %q", constants.ErrInvalidAddress, s)
	}
	a.Address = common.HexToAddress(s)
	a.set = true
	return nil
}

func (a *Address) String() string {
	if !a.set {
		return ""
	}
	return a.Hex()
}

func (*Address) Type() string {
	return "address"
}

// IsSet reports whether the flag was given.
func (a *Address) IsSet() bool {
	return a.set
}

// Wei is a pflag.Value holding a non-negative decimal amount.
type Wei struct {
	Int *big.Int
}

var _ pflag.Value = (*Wei)(nil)

func (w *Wei) Set(s string) error {
	v, err := models.ParseWei(s)
	if err != nil {
		return err
	}
	w.Int = v
	return nil
}

func (w *Wei) String() string {
	if w.Int == nil {
		return ""
	}
	return w.Int.String()
}

func (*Wei) Type() string {
	return "wei"
}

// Bytes is a pflag.Value holding 0x-prefixed hex data.
type Bytes struct {
	hexutil.Bytes
}

var _ pflag.Value = (*Bytes)(nil)

func (b *Bytes) Set(s string) error {
	bs, err := hexutil.Decode(s)
	if err != nil {
		return fmt.Errorf("invalid hex %q: %w", s, err)
	}
	b.Bytes = bs
	return nil
}

func (b *Bytes) String() string {
	if b.Bytes == nil {
		return ""
	}
	return b.Bytes.String()
}

func (*Bytes) Type() string {
	return "hex"
}

// ParseAddresses converts positional arguments into addresses.
func ParseAddresses(args []string) ([]common.Address, error) {
	addrs := make([]common.Address, 0, len(args))
	for _, arg := range args {
		var a Address
		if err := a.Set(arg); err != nil {
			return nil, err
		}
		addrs = append(addrs, a.Address)
	}
	return addrs, nil
}
