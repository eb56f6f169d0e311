// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package templates - skeleton files written by the setup command
package templates

const (
	/**** Configuration template ****/
	ConfigurationTemplate = `-- metalaxd.conf  -*- mode: lua -*-

local M = {}

-- all relative paths are resolved against this directory
-- "." means the directory containing this configuration file
M.data_directory = "{{.DataDirectory}}"

-- named key pairs used to sign operations
M.identity_file = "identities.json"

-- the asset registry store
M.database = {
    directory = "data",
    name = "metalax.leveldb",
}

M.logging = {
    directory = "log",
    file = "metalaxd.log",
    size = 1048576,
    count = 10,
    levels = {
        DEFAULT = "{{.LogLevel}}",
    },
}

return M
`
)
