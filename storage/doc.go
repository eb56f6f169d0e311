// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database split into prefixed pools:
//
//   Platform  P + "metalax-platform"     - the singleton registry record
//   Assets    A + token id               - asset records
//   Balances  B + identity               - fee ledger balances
//   Tokens    T + token id               - unique token mints
//   Holdings  H + token id + identity    - one-unit holding accounts
//   TestData  Z + key                    - reserved for testing
//
// the single byte prefix ensures each pool is a separate namespace and
// that a pool's key derivation is a pure reproducible function of the
// pool and its discriminator
//
// mutations are staged into a batch through a Transaction and are only
// written when the Transaction commits, so every registry operation is
// all-or-nothing at the database level
package storage
