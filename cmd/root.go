// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	luxlog "github.com/luxfi/log"
	"github.com/luxfi/minter/cmd/configcmd"
	"github.com/luxfi/minter/cmd/metacmd"
	"github.com/luxfi/minter/cmd/mintcmd"
	"github.com/luxfi/minter/cmd/salecmd"
	"github.com/luxfi/minter/cmd/servecmd"
	"github.com/luxfi/minter/cmd/treasurycmd"
	"github.com/luxfi/minter/cmd/whitelistcmd"
	"github.com/luxfi/minter/pkg/application"
	"github.com/luxfi/minter/pkg/clock"
	"github.com/luxfi/minter/pkg/config"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	app *application.Minter

	logFactory luxlog.Factory

	logLevel string
	Version  = "0.1.0"
	cfgFile  string
	baseDir  string
	atTime   uint64
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "minter",
		Long: `minter - operator toolchain for fixed-supply sales.

A sale mints a fixed number of numbered units in phases: an owner-only
reserve airdrop, a whitelisted private sale, and an open public sale
that can run as a Dutch auction. Sale state lives under ~/.minter/sales.

COMMAND OVERVIEW:

  sale        Create sales and manage phases, limits and prices
  mint        Buy units in the active phase
  airdrop     Mint reserve units to recipients
  meta        Seed, reveal and resolve unit metadata
  treasury    Inspect and withdraw collected proceeds
  whitelist   Sign and verify private sale allowances
  serve       Serve read-only sale status over HTTP
  config      CLI configuration

QUICK START:

  minter sale create drop --config drop.yaml --owner 0x.. --treasury 0x..
  minter sale enable-private drop --from 0x.. --begin 1700000000 --minutes 60
  minter mint drop --from 0x.. --quantity 2 --whitelist allow.jsonl

For detailed command help, use: minter <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file (default is $HOME/.minter/cli.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level for the application")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "directory holding sales and logs (default is $HOME/.minter)")
	rootCmd.PersistentFlags().Uint64Var(&atTime, "at", 0, "evaluate the command at this unix time instead of now")

	rootCmd.AddCommand(salecmd.NewCmd(app))
	rootCmd.AddCommand(mintcmd.NewCmd(app))
	rootCmd.AddCommand(mintcmd.NewAirdropCmd(app))
	rootCmd.AddCommand(metacmd.NewCmd(app))
	rootCmd.AddCommand(treasurycmd.NewCmd(app))
	rootCmd.AddCommand(whitelistcmd.NewCmd(app))
	rootCmd.AddCommand(servecmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	dir, err := setupEnv()
	if err != nil {
		return err
	}
	config.SetDefaults()
	initConfig(dir)

	log, err := setupLogging(dir)
	if err != nil {
		return err
	}

	var clk clock.Clock = clock.System{}
	if cmd.Flags().Changed("at") {
		clk = clock.Fixed(atTime)
	}

	app.Setup(dir, log, config.New(), clk)
	if used := viper.ConfigFileUsed(); used != "" {
		app.Log.Debug("using config file", "config-file", used)
	}
	return nil
}

func setupEnv() (string, error) {
	dir := baseDir
	if dir == "" {
		usr, err := user.Current()
		if err != nil {
			// no logger here yet
			fmt.Printf("unable to get system user %s\n", err)
			return "", err
		}
		dir = filepath.Join(usr.HomeDir, constants.BaseDirName)
	}

	// Create base dir if it doesn't exist
	if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", dir, err)
		return "", err
	}

	salesDir := filepath.Join(dir, constants.SalesDir)
	if err := os.MkdirAll(salesDir, constants.DefaultPerms755); err != nil {
		fmt.Printf("failed creating the sales dir %s: %s\n", salesDir, err)
		return "", err
	}

	return dir, nil
}

func setupLogging(dir string) (luxlog.Logger, error) {
	level := logLevel
	if level == "" {
		level = viper.GetString(config.LogLevelKey)
	}
	lvl, err := luxlog.ToLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := luxlog.Config{}
	cfg.LogLevel = lvl
	cfg.DisplayLevel = lvl
	cfg.Directory = filepath.Join(dir, constants.LogDir)
	if err := os.MkdirAll(cfg.Directory, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}
	// user output goes to stdout through ux, logs only to the file
	cfg.DisableWriterDisplaying = true
	cfg.LogFormat = luxlog.JSON
	cfg.MaxSize = constants.MaxLogFileSize
	cfg.MaxFiles = constants.MaxNumOfLogFiles
	cfg.MaxAge = constants.RetainOldFiles

	if logFactory != nil {
		logFactory.Close()
	}
	factory := luxlog.NewFactoryWithConfig(cfg)
	log, err := factory.Make(constants.LogName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	logFactory = factory
	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(dir string) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(dir)
		viper.SetConfigType("json")
		viper.SetConfigName(constants.ConfigFileName) // cli.json
	}

	config.BindEnv()

	// No config file is normal, most users don't have one.
	_ = viper.ReadInConfig()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
