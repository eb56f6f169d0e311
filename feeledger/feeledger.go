// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package feeledger - per-identity balances for issuance fees
//
// stands in for the external currency rail: balances live in their own
// storage pool and every movement is staged inside the invoking
// operation's transaction, so a fee only moves when the whole
// operation commits
package feeledger

import (
	"github.com/metalax-inc/metalaxd/fault"
	"github.com/metalax-inc/metalaxd/identity"
	"github.com/metalax-inc/metalaxd/storage"
)

// Ledger - fee balance movements
type Ledger struct {
	pool *storage.PoolHandle
}

// New - a ledger over the balances pool
func New() *Ledger {
	return &Ledger{
		pool: storage.Pool.Balances,
	}
}

// Balance - current balance for an identity
//
// staged movements inside the transaction are included; a nil
// transaction reads the committed balance directly
func (l *Ledger) Balance(trx storage.Transaction, who identity.Identity) uint64 {
	if nil == trx {
		balance, _ := l.pool.GetN(who[:])
		return balance
	}
	balance, _ := trx.GetN(l.pool, who[:])
	return balance
}

// Credit - stage an unconditional balance increase
func (l *Ledger) Credit(trx storage.Transaction, to identity.Identity, amount uint64) {
	trx.PutN(l.pool, to[:], l.Balance(trx, to)+amount)
}

// Debit - stage a balance decrease
//
// fails without staging anything if the balance is too low
func (l *Ledger) Debit(trx storage.Transaction, from identity.Identity, amount uint64) error {
	balance := l.Balance(trx, from)
	if balance < amount {
		return fault.ErrInsufficientFunds
	}
	trx.PutN(l.pool, from[:], balance-amount)
	return nil
}
