// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/logger"

	"github.com/metalax-inc/metalaxd/counter"
	"github.com/metalax-inc/metalaxd/feeledger"
	"github.com/metalax-inc/metalaxd/identity"
	"github.com/metalax-inc/metalaxd/platform"
	"github.com/metalax-inc/metalaxd/storage"
	"github.com/metalax-inc/metalaxd/tokenid"
	"github.com/metalax-inc/metalaxd/tokenunit"
)

// MintingFee - the fixed fee charged for every issuance
//
// denominated in the smallest unit of the fee balance
const MintingFee uint64 = 6000000

// FeeLedger - balance movements staged by the operations
type FeeLedger interface {
	Balance(trx storage.Transaction, who identity.Identity) uint64
	Credit(trx storage.Transaction, to identity.Identity, amount uint64)
	Debit(trx storage.Transaction, from identity.Identity, amount uint64) error
}

// TokenIssuer - token creation and movement staged by the operations
type TokenIssuer interface {
	CreateUnique(trx storage.Transaction, authority platform.MintAuthority, tokenId tokenid.TokenIdentifier) error
	IssueOne(trx storage.Transaction, tokenId tokenid.TokenIdentifier, to identity.Identity) error
	MoveOne(trx storage.Transaction, tokenId tokenid.TokenIdentifier, from identity.Identity, to identity.Identity) error
}

// Engine - the transition engine
type Engine struct {
	log         *logger.L
	fees        FeeLedger
	tokens      TokenIssuer
	issued      counter.Counter
	transferred counter.Counter
}

// New - an engine over the real ledger and issuer
//
// storage must already be initialised
func New() *Engine {
	return NewWithCollaborators(feeledger.New(), tokenunit.New())
}

// NewWithCollaborators - an engine with explicit collaborators
func NewWithCollaborators(fees FeeLedger, tokens TokenIssuer) *Engine {
	return &Engine{
		log:    logger.New("engine"),
		fees:   fees,
		tokens: tokens,
	}
}

// Counters - operations performed since the engine was created
func (e *Engine) Counters() (issued uint64, transferred uint64) {
	return e.issued.Uint64(), e.transferred.Uint64()
}
