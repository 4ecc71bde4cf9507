// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName   = ".minter"
	LogDir        = "logs"
	LogName       = "minter"
	AccessLogName = "access.log"
	SalesDir      = "sales"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	ConfigFileName  = "cli"
	StateFileName   = "state.json"
	PayoutsFileName = "payouts.jsonl"
	StateVersion    = "1.0.0"

	// default EIP-712 domain of the whitelist signer
	DefaultDomainName    = "EIP712SignedData"
	DefaultDomainVersion = "1"
	DefaultChainID       = 31337

	MetadataSuffix = ".json"

	DefaultListenAddress = "127.0.0.1:8080"
	ServerReadTimeout    = 10 * time.Second
	ServerShutdownWait   = 5 * time.Second

	SecondsPerMinute = 60
)
