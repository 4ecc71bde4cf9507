// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/models"
	"github.com/spf13/viper"
)

// Keys of the CLI configuration file. Each can be overridden with a
// MINTER_ prefixed environment variable, e.g. MINTER_CHAIN_ID.
const (
	EnvPrefix            = "MINTER"
	ChainIDKey           = "chain-id"
	VerifyingContractKey = "verifying-contract"
	DomainNameKey        = "domain-name"
	DomainVersionKey     = "domain-version"
	LogLevelKey          = "log-level"
	ListenAddressKey     = "listen"
	MetricsEnabledKey    = "metrics-enabled"
)

var ErrUnknownKey = errors.New("unknown config key")

type valueKind int

const (
	stringValue valueKind = iota
	uint64Value
	boolValue
	addressValue
)

var keyKinds = map[string]valueKind{
	ChainIDKey:           uint64Value,
	VerifyingContractKey: addressValue,
	DomainNameKey:        stringValue,
	DomainVersionKey:     stringValue,
	LogLevelKey:          stringValue,
	ListenAddressKey:     stringValue,
	MetricsEnabledKey:    boolValue,
}

// Keys lists every supported key in sorted order.
func Keys() []string {
	return []string{
		ChainIDKey,
		DomainNameKey,
		DomainVersionKey,
		ListenAddressKey,
		LogLevelKey,
		MetricsEnabledKey,
		VerifyingContractKey,
	}
}

func IsKey(key string) bool {
	_, ok := keyKinds[key]
	return ok
}

// ParseValue converts the command line form of a value for key.
func ParseValue(key, raw string) (interface{}, error) {
	kind, ok := keyKinds[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	switch kind {
	case uint64Value:
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", key, err)
		}
		return v, nil
	case boolValue:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", key, err)
		}
		return v, nil
	case addressValue:
		if !common.IsHexAddress(raw) {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidAddress, raw)
		}
		return common.HexToAddress(raw).Hex(), nil
	default:
		return raw, nil
	}
}

type Config struct{}

func New() *Config {
	return &Config{}
}

// SetDefaults registers the built-in value of every key.
func SetDefaults() {
	viper.SetDefault(ChainIDKey, constants.DefaultChainID)
	viper.SetDefault(DomainNameKey, constants.DefaultDomainName)
	viper.SetDefault(DomainVersionKey, constants.DefaultDomainVersion)
	viper.SetDefault(LogLevelKey, "info")
	viper.SetDefault(ListenAddressKey, constants.DefaultListenAddress)
	viper.SetDefault(MetricsEnabledKey, true)
}

func (*Config) GetConfigStringValue(key string) string {
	return viper.GetString(key)
}

func (*Config) GetConfigUint64Value(key string) uint64 {
	return viper.GetUint64(key)
}

func (*Config) ConfigValueIsSet(key string) bool {
	return viper.IsSet(key)
}

func (*Config) ConfigFileExists() bool {
	return viper.ConfigFileUsed() != ""
}

func (*Config) GetConfigBoolValue(key string) bool {
	return viper.GetBool(key)
}

// SetConfigValue stores value and writes the config file, creating it in the
// first config path when none exists yet.
func (*Config) SetConfigValue(key string, value interface{}) error {
	viper.Set(key, value)
	if viper.ConfigFileUsed() == "" {
		return viper.SafeWriteConfig()
	}
	return viper.WriteConfig()
}

// GetConfigPath returns the path to the configuration file
func (*Config) GetConfigPath() string {
	return viper.ConfigFileUsed()
}

// DomainDefaults returns the signing domain configured for new sales.
func (c *Config) DomainDefaults() models.DomainParams {
	return models.DomainParams{
		Name:              c.GetConfigStringValue(DomainNameKey),
		Version:           c.GetConfigStringValue(DomainVersionKey),
		ChainID:           c.GetConfigUint64Value(ChainIDKey),
		VerifyingContract: common.HexToAddress(c.GetConfigStringValue(VerifyingContractKey)),
	}
}

// BindEnv makes every key readable from the environment.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
