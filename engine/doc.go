// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - the state transition operations
//
// every operation validates its inputs fail-fast, stages all of its
// effects inside a single storage transaction and commits at the end,
// so a failure at any point leaves the store exactly as it was
//
// operations:
//
//  1. InitialisePlatform - create the singleton registry
//  2. IssueAsset        - charge the fee, mint a token, write its record
//  3. TransferAsset     - move a token to a new owner
//  4. UpdatePlatform    - rotate the registry owner
//  5. GetPayload        - read back an asset payload
package engine
