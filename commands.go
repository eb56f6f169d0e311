// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"text/template"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/metalax-inc/metalaxd/engine"
	"github.com/metalax-inc/metalaxd/storage"
	"github.com/metalax-inc/metalaxd/templates"
	"github.com/metalax-inc/metalaxd/util"
)

func runSetup(c *cli.Context, globals globalFlags) {
	configFile := checkConfigFile(globals.config)
	if util.EnsureFileExists(configFile) {
		exitwithstatus.Message("Error: configuration already exists: %s\n", configFile)
	}

	directory := filepath.Dir(configFile)
	if err := os.MkdirAll(directory, 0700); nil != err {
		exitwithstatus.Message("Error: cannot create directory: %q: %s\n", directory, err)
	}

	data := struct {
		DataDirectory string
		LogLevel      string
	}{
		DataDirectory: ".",
		LogLevel:      c.String("log-level"),
	}

	buffer := &bytes.Buffer{}
	tmpl := template.Must(template.New("configuration").Parse(templates.ConfigurationTemplate))
	if err := tmpl.Execute(buffer, data); nil != err {
		exitwithstatus.Message("Error: template: %s\n", err)
	}

	if err := ioutil.WriteFile(configFile, buffer.Bytes(), 0600); nil != err {
		exitwithstatus.Message("Error: write: %s\n", err)
	}

	fmt.Printf("created: %s\n", configFile)
}

func runGenerate(c *cli.Context, globals globalFlags) {
	name, err := checkName(globals.identity)
	if nil != err {
		exitwithstatus.Message("Error: %s\n", err)
	}

	options := getOptions(globals)
	wallet := getWallet(options)

	pair, err := wallet.Generate(name, c.String("description"))
	if nil != err {
		exitwithstatus.Message("Error: generate: %s\n", err)
	}
	if err := wallet.Save(); nil != err {
		exitwithstatus.Message("Error: save: %s\n", err)
	}

	printJson("", pair)
}

func runInit(c *cli.Context, globals globalFlags) {
	t, done := openTool(globals)
	defer done()

	registry, err := t.engine.InitialisePlatform(t.caller(globals))
	if nil != err {
		exitwithstatus.Message("Error: initialise platform: %s\n", err)
	}

	printJson("", registry)
}

func runPlatform(c *cli.Context, globals globalFlags) {
	t, done := openTool(globals)
	defer done()

	newOwner := c.String("new-owner")
	if "" == newOwner {
		registry, err := t.engine.Platform()
		if nil != err {
			exitwithstatus.Message("Error: platform: %s\n", err)
		}
		printJson("", registry)
		return
	}

	owner := t.resolve(newOwner)
	registry, err := t.engine.UpdatePlatform(t.caller(globals), &owner)
	if nil != err {
		exitwithstatus.Message("Error: update platform: %s\n", err)
	}

	printJson("", registry)
}

func runFund(c *cli.Context, globals globalFlags) {
	t, done := openTool(globals)
	defer done()

	to := t.resolve(c.String("to"))
	amount := c.Uint64("amount")
	if 0 == amount {
		exitwithstatus.Message("Error: amount must be non-zero\n")
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		exitwithstatus.Message("Error: transaction: %s\n", err)
	}
	t.ledger.Credit(trx, to, amount)
	if err := trx.Commit(); nil != err {
		trx.Abort()
		exitwithstatus.Message("Error: commit: %s\n", err)
	}

	printJson("", struct {
		Owner   string `json:"owner"`
		Balance uint64 `json:"balance"`
	}{
		Owner:   to.String(),
		Balance: t.ledger.Balance(nil, to),
	})
}

func runBalance(c *cli.Context, globals globalFlags) {
	t, done := openTool(globals)
	defer done()

	owner := c.String("owner")
	who := t.caller(globals)
	if "" != owner {
		who = t.resolve(owner)
	}

	printJson("", struct {
		Owner   string `json:"owner"`
		Balance uint64 `json:"balance"`
	}{
		Owner:   who.String(),
		Balance: t.ledger.Balance(nil, who),
	})
}

func runIssue(c *cli.Context, globals globalFlags) {
	t, done := openTool(globals)
	defer done()

	payer := t.caller(globals)

	name, err := checkRequired(c.String("name"))
	if nil != err {
		exitwithstatus.Message("Error: asset name: %s\n", err)
	}
	symbol, err := checkRequired(c.String("symbol"))
	if nil != err {
		exitwithstatus.Message("Error: asset symbol: %s\n", err)
	}
	uri, err := checkRequired(c.String("uri"))
	if nil != err {
		exitwithstatus.Message("Error: asset uri: %s\n", err)
	}
	payload, err := checkPayload(c)
	if nil != err {
		exitwithstatus.Message("Error: payload: %s\n", err)
	}
	nonce, err := checkNonce(c)
	if nil != err {
		exitwithstatus.Message("Error: nonce: %s\n", err)
	}

	// fees default to the current platform owner
	feeRecipient := c.String("fee-recipient")
	request := &engine.IssueRequest{
		Name:               name,
		Symbol:             symbol,
		Uri:                uri,
		Payload:            payload,
		RoyaltyBasisPoints: uint16(c.Uint("royalty")),
		Nonce:              nonce,
	}
	if "" == feeRecipient {
		registry, err := t.engine.Platform()
		if nil != err {
			exitwithstatus.Message("Error: platform: %s\n", err)
		}
		request.FeeRecipient = registry.Owner
	} else {
		request.FeeRecipient = t.resolve(feeRecipient)
	}

	if globals.verbose {
		fmt.Printf("payer: %s\n", payer)
		fmt.Printf("nonce: %d\n", nonce)
		fmt.Printf("fee: %d\n", engine.MintingFee)
	}

	record, err := t.engine.IssueAsset(payer, request)
	if nil != err {
		exitwithstatus.Message("Error: issue: %s\n", err)
	}

	printJson("", record)
}

func runTransfer(c *cli.Context, globals globalFlags) {
	t, done := openTool(globals)
	defer done()

	tokenId, err := checkTokenId(c.String("token"))
	if nil != err {
		exitwithstatus.Message("Error: token: %s\n", err)
	}
	receiver := t.resolve(c.String("receiver"))

	record, err := t.engine.TransferAsset(t.caller(globals), tokenId, receiver)
	if nil != err {
		exitwithstatus.Message("Error: transfer: %s\n", err)
	}

	printJson("", record)
}

func runPayload(c *cli.Context, globals globalFlags) {
	t, done := openTool(globals)
	defer done()

	tokenId, err := checkTokenId(c.String("token"))
	if nil != err {
		exitwithstatus.Message("Error: token: %s\n", err)
	}

	payload, err := t.engine.GetPayload(tokenId)
	if nil != err {
		exitwithstatus.Message("Error: payload: %s\n", err)
	}

	_, _ = os.Stdout.Write(payload)
	fmt.Println()
}
