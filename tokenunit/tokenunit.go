// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokenunit - unique tokens and their holding accounts
//
// each token has a total supply of exactly one unit; possession of the
// unit is what ownership of an asset means at the token level, while
// the asset record carries the descriptive metadata
package tokenunit

import (
	"github.com/metalax-inc/metalaxd/fault"
	"github.com/metalax-inc/metalaxd/identity"
	"github.com/metalax-inc/metalaxd/platform"
	"github.com/metalax-inc/metalaxd/storage"
	"github.com/metalax-inc/metalaxd/tokenid"
)

// stored values: a mint exists / a holding holds the one unit
var (
	mintRecord = []byte{1}
	unitRecord = []byte{1}
)

// Issuer - creates unique token mints and moves their single unit
type Issuer struct {
	tokens   *storage.PoolHandle
	holdings *storage.PoolHandle
}

// New - an issuer over the token and holding pools
func New() *Issuer {
	return &Issuer{
		tokens:   storage.Pool.Tokens,
		holdings: storage.Pool.Holdings,
	}
}

// CreateUnique - stage creation of a new one-of-one token mint
//
// requires the platform's minting capability; fails if the identifier
// is already minted
func (i *Issuer) CreateUnique(trx storage.Transaction, authority platform.MintAuthority, tokenId tokenid.TokenIdentifier) error {
	if !authority.Valid() {
		return fault.ErrInvalidMintAuthority
	}
	if trx.Has(i.tokens, tokenId[:]) {
		return fault.ErrAssetAlreadyExists
	}
	trx.Put(i.tokens, tokenId[:], mintRecord)
	return nil
}

// IssueOne - stage issue of the single unit into a holding account
func (i *Issuer) IssueOne(trx storage.Transaction, tokenId tokenid.TokenIdentifier, to identity.Identity) error {
	if !trx.Has(i.tokens, tokenId[:]) {
		return fault.ErrTokenNotFound
	}
	trx.Put(i.holdings, holdingKey(tokenId, to), unitRecord)
	return nil
}

// MoveOne - stage movement of the single unit between holding accounts
//
// the destination holding account is created if it does not exist; if
// the source does not actually hold the unit the ledger state has been
// violated and the move fails
func (i *Issuer) MoveOne(trx storage.Transaction, tokenId tokenid.TokenIdentifier, from identity.Identity, to identity.Identity) error {
	if !trx.Has(i.tokens, tokenId[:]) {
		return fault.ErrTokenNotFound
	}

	source := holdingKey(tokenId, from)
	if !trx.Has(i.holdings, source) {
		return fault.ErrTransferFailed
	}

	trx.Delete(i.holdings, source)
	trx.Put(i.holdings, holdingKey(tokenId, to), unitRecord)
	return nil
}

// Holds - check an identity holds the unit of a token
func (i *Issuer) Holds(trx storage.Transaction, tokenId tokenid.TokenIdentifier, who identity.Identity) bool {
	key := holdingKey(tokenId, who)
	if nil == trx {
		return i.holdings.Has(key)
	}
	return trx.Has(i.holdings, key)
}

// holding account key: token id + holder
func holdingKey(tokenId tokenid.TokenIdentifier, who identity.Identity) []byte {
	key := make([]byte, 0, tokenid.Length+identity.PublicKeySize)
	key = append(key, tokenId[:]...)
	return append(key, who[:]...)
}
