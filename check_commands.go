// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/binary"
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/metalax-inc/metalaxd/fault"
	"github.com/metalax-inc/metalaxd/tokenid"
)

const defaultConfigFile = "metalaxd.conf"

var (
	errRequiredIdentity    = fault.InvalidError("identity name is required")
	errRequiredValue       = fault.InvalidError("required value is missing")
	errConflictingPayloads = fault.InvalidError("only one of payload and payload-file is allowed")
)

// blank config falls back to a file in the current directory
func checkConfigFile(file string) string {
	if "" == file {
		return defaultConfigFile
	}
	return os.ExpandEnv(file)
}

// identity name is required
func checkName(name string) (string, error) {
	if "" == name {
		return "", errRequiredIdentity
	}
	return name, nil
}

// check for a non-blank flag value
func checkRequired(value string) (string, error) {
	if "" == value {
		return "", errRequiredValue
	}
	return value, nil
}

// token identifier is required and must be a valid hex string
func checkTokenId(value string) (tokenid.TokenIdentifier, error) {
	if "" == value {
		return tokenid.TokenIdentifier{}, errRequiredValue
	}
	return tokenid.FromHexString(value)
}

// payload comes inline or from a file, not both
func checkPayload(c *cli.Context) ([]byte, error) {
	inline := c.String("payload")
	fileName := c.String("payload-file")

	if "" != inline && "" != fileName {
		return nil, errConflictingPayloads
	}
	if "" != fileName {
		return ioutil.ReadFile(fileName)
	}
	return []byte(inline), nil
}

// explicit nonce, or a fresh random one
func checkNonce(c *cli.Context) (uint64, error) {
	if c.IsSet("nonce") {
		return c.Uint64("nonce"), nil
	}
	buffer := make([]byte, 8)
	_, err := rand.Read(buffer)
	if nil != err {
		return 0, err
	}
	return binary.BigEndian.Uint64(buffer), nil
}
