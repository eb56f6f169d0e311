// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/metalax-inc/metalaxd/assetrecord"
	"github.com/metalax-inc/metalaxd/fault"
	"github.com/metalax-inc/metalaxd/identity"
	"github.com/metalax-inc/metalaxd/storage"
	"github.com/metalax-inc/metalaxd/tokenid"
)

// TransferAsset - move an asset to a new owner
//
// only the current owner may transfer; the token holding and the
// record owner change together or not at all
func (e *Engine) TransferAsset(caller identity.Identity, tokenId tokenid.TokenIdentifier, newOwner identity.Identity) (*assetrecord.Record, error) {
	trx, err := storage.NewTransaction()
	if nil != err {
		return nil, err
	}

	record, err := assetrecord.Fetch(trx, tokenId)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	if caller != record.Owner {
		trx.Abort()
		return nil, fault.ErrNotAssetOwner
	}

	err = e.tokens.MoveOne(trx, tokenId, record.Owner, newOwner)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	record.Owner = newOwner
	assetrecord.Store(trx, record)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return nil, err
	}

	e.transferred.Increment()
	e.log.Infof("transferred: %s %s -> %s", tokenId, caller, newOwner)
	return record, nil
}

// GetPayload - read back the stored payload of an asset
//
// a pure read of committed state
func (e *Engine) GetPayload(tokenId tokenid.TokenIdentifier) ([]byte, error) {
	record, err := assetrecord.Fetch(nil, tokenId)
	if nil != err {
		return nil, err
	}
	return record.Payload, nil
}
