// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/metalax-inc/metalaxd/assetrecord"
	"github.com/metalax-inc/metalaxd/fault"
	"github.com/metalax-inc/metalaxd/identity"
	"github.com/metalax-inc/metalaxd/platform"
	"github.com/metalax-inc/metalaxd/storage"
	"github.com/metalax-inc/metalaxd/tokenid"
)

// IssueRequest - all the data for one issuance
//
// the nonce makes the token identifier deterministic for the payer,
// so replaying the same request is detected as a duplicate
type IssueRequest struct {
	Name               string
	Symbol             string
	Uri                string
	Payload            []byte
	RoyaltyBasisPoints uint16
	Nonce              uint64
	FeeRecipient       identity.Identity
}

// IssueAsset - charge the minting fee, mint a unique token and write
// its asset record
//
// the payer becomes both creator and initial owner; the fee is
// credited to the platform owner inside the same transaction
func (e *Engine) IssueAsset(payer identity.Identity, request *IssueRequest) (*assetrecord.Record, error) {

	record := &assetrecord.Record{
		Name:               request.Name,
		Symbol:             request.Symbol,
		Uri:                request.Uri,
		Payload:            request.Payload,
		Creator:            payer,
		Owner:              payer,
		RoyaltyBasisPoints: request.RoyaltyBasisPoints,
	}
	err := record.Validate()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return nil, err
	}

	registry, err := platform.Fetch(trx)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	if request.FeeRecipient != registry.Owner {
		trx.Abort()
		return nil, fault.ErrNotPlatformOwner
	}

	err = e.fees.Debit(trx, payer, MintingFee)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	e.fees.Credit(trx, registry.Owner, MintingFee)

	record.TokenId = tokenid.Derive(payer, request.Nonce)

	err = e.tokens.CreateUnique(trx, registry.Authority(), record.TokenId)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = e.tokens.IssueOne(trx, record.TokenId, payer)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	assetrecord.Store(trx, record)

	registry.TotalIssued += 1
	registry.TotalFeesCollected += MintingFee
	platform.Store(trx, registry)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return nil, err
	}

	e.issued.Increment()
	e.log.Infof("issued: %s payer: %s fee: %d", record.TokenId, payer, MintingFee)
	return record, nil
}
