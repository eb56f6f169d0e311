// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/metalax-inc/metalaxd/configuration"
	"github.com/metalax-inc/metalaxd/engine"
	"github.com/metalax-inc/metalaxd/feeledger"
	"github.com/metalax-inc/metalaxd/identity"
	"github.com/metalax-inc/metalaxd/keypair"
	"github.com/metalax-inc/metalaxd/storage"
)

// everything an open registry command needs
type tool struct {
	options *configuration.Configuration
	wallet  *keypair.Wallet
	engine  *engine.Engine
	ledger  *feeledger.Ledger
}

func getOptions(globals globalFlags) *configuration.Configuration {
	options, err := configuration.GetConfiguration(checkConfigFile(globals.config))
	if nil != err {
		exitwithstatus.Message("Error: configuration: %s\n", err)
	}
	return options
}

func getWallet(options *configuration.Configuration) *keypair.Wallet {
	wallet, err := keypair.Load(options.IdentityFile)
	if nil != err {
		exitwithstatus.Message("Error: identity file: %s\n", err)
	}
	return wallet
}

// open logging, storage and the wallet; the returned function closes
// everything again
func openTool(globals globalFlags) (*tool, func()) {
	options := getOptions(globals)

	for _, directory := range []string{options.Logging.Directory, options.Database.Directory} {
		if err := os.MkdirAll(directory, 0700); nil != err {
			exitwithstatus.Message("Error: cannot create directory: %q: %s\n", directory, err)
		}
	}

	if err := logger.Initialise(options.Logging); nil != err {
		exitwithstatus.Message("Error: logger setup: %s\n", err)
	}

	if err := storage.Initialise(options.DatabasePath()); nil != err {
		logger.Finalise()
		exitwithstatus.Message("Error: storage setup: %s\n", err)
	}

	t := &tool{
		options: options,
		wallet:  getWallet(options),
		engine:  engine.New(),
		ledger:  feeledger.New(),
	}
	return t, func() {
		storage.Finalise()
		logger.Finalise()
	}
}

// the calling identity from the global -i flag
func (t *tool) caller(globals globalFlags) identity.Identity {
	name, err := checkName(globals.identity)
	if nil != err {
		exitwithstatus.Message("Error: %s\n", err)
	}
	id, err := t.wallet.Identity(name)
	if nil != err {
		exitwithstatus.Message("Error: identity: %q: %s\n", name, err)
	}
	return id
}

// a wallet name or raw base58 key from a flag
func (t *tool) resolve(value string) identity.Identity {
	value, err := checkRequired(value)
	if nil != err {
		exitwithstatus.Message("Error: identity: %s\n", err)
	}
	id, err := t.wallet.Resolve(value)
	if nil != err {
		exitwithstatus.Message("Error: identity: %q: %s\n", value, err)
	}
	return id
}
