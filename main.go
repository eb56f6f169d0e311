// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/metalax-inc/metalaxd/version"
)

type globalFlags struct {
	verbose  bool
	config   string
	identity string
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	globals := globalFlags{}

	app := cli.NewApp()
	app.Name = "metalax-cli"
	app.Usage = "issue and transfer assets in a local registry"
	app.Version = version.Version
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " verbose result",
			Destination: &globals.verbose,
		},
		cli.StringFlag{
			Name:        "config, c",
			Value:       "",
			Usage:       " configuration file [" + defaultConfigFile + "]",
			Destination: &globals.config,
		},
		cli.StringFlag{
			Name:        "identity, i",
			Value:       "",
			Usage:       " identity name for the calling key pair",
			Destination: &globals.identity,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "create the data directory and a default configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "log-level, l",
					Value: "error",
					Usage: " default logging level",
				},
			},
			Action: func(c *cli.Context) error {
				runSetup(c, globals)
				return nil
			},
		},
		{
			Name:      "generate",
			Usage:     "generate a named key pair and store it in the identity file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " identity description",
				},
			},
			Action: func(c *cli.Context) error {
				runGenerate(c, globals)
				return nil
			},
		},
		{
			Name:  "init",
			Usage: "create the platform registry owned by the calling identity",
			Action: func(c *cli.Context) error {
				runInit(c, globals)
				return nil
			},
		},
		{
			Name:      "platform",
			Usage:     "show the platform registry, optionally rotating its owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "new-owner, n",
					Value: "",
					Usage: " identity name or public key of the new owner",
				},
			},
			Action: func(c *cli.Context) error {
				runPlatform(c, globals)
				return nil
			},
		},
		{
			Name:      "fund",
			Usage:     "credit a fee balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*identity name or public key to credit",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Usage: "*amount to credit",
				},
			},
			Action: func(c *cli.Context) error {
				runFund(c, globals)
				return nil
			},
		},
		{
			Name:      "balance",
			Usage:     "show a fee balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or public key [calling identity]",
				},
			},
			Action: func(c *cli.Context) error {
				runBalance(c, globals)
				return nil
			},
		},
		{
			Name:      "issue",
			Usage:     "pay the minting fee and issue a new asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*asset name",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*asset symbol",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*asset metadata URI",
				},
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: " inline payload data",
				},
				cli.StringFlag{
					Name:  "payload-file, f",
					Value: "",
					Usage: " file containing the payload data",
				},
				cli.UintFlag{
					Name:  "royalty, r",
					Usage: " royalty in basis points [0]",
				},
				cli.Uint64Flag{
					Name:  "nonce",
					Usage: " issuance nonce [random]",
				},
				cli.StringFlag{
					Name:  "fee-recipient",
					Value: "",
					Usage: " fee recipient [current platform owner]",
				},
			},
			Action: func(c *cli.Context) error {
				runIssue(c, globals)
				return nil
			},
		},
		{
			Name:      "transfer",
			Usage:     "transfer an asset to a new owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token identifier of the asset",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or public key to receive the asset",
				},
			},
			Action: func(c *cli.Context) error {
				runTransfer(c, globals)
				return nil
			},
		},
		{
			Name:      "payload",
			Usage:     "print the stored payload of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token identifier of the asset",
				},
			},
			Action: func(c *cli.Context) error {
				runPayload(c, globals)
				return nil
			},
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Println(version.Version)
				return nil
			},
		},
	}

	_ = app.Run(os.Args)
}
