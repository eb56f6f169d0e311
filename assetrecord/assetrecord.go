// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package assetrecord - descriptive records for issued assets
//
// one record per issued asset, keyed by the token identifier; all
// fields except the owner are immutable after issue
package assetrecord

import (
	"encoding/binary"

	"github.com/metalax-inc/metalaxd/fault"
	"github.com/metalax-inc/metalaxd/identity"
	"github.com/metalax-inc/metalaxd/storage"
	"github.com/metalax-inc/metalaxd/tokenid"
)

// field limits
const (
	MaximumNameLength         = 32
	MaximumSymbolLength       = 10
	MaximumUriLength          = 200
	MaximumPayloadLength      = 10000
	MaximumRoyaltyBasisPoints = 10000
)

// Record - the unpacked asset record
type Record struct {
	TokenId            tokenid.TokenIdentifier `json:"tokenId"`
	Name               string                  `json:"name"`
	Symbol             string                  `json:"symbol"`
	Uri                string                  `json:"uri"`
	Payload            []byte                  `json:"payload"`
	Creator            identity.Identity       `json:"creator"`
	Owner              identity.Identity       `json:"owner"`
	RoyaltyBasisPoints uint16                  `json:"royaltyBasisPoints"`
}

// Validate - check field limits, first violation wins
//
// the order is fixed: name, symbol, uri, payload, royalty
func (r *Record) Validate() error {
	if len(r.Name) > MaximumNameLength {
		return fault.ErrNameTooLong
	}
	if len(r.Symbol) > MaximumSymbolLength {
		return fault.ErrSymbolTooLong
	}
	if len(r.Uri) > MaximumUriLength {
		return fault.ErrUriTooLong
	}
	if len(r.Payload) > MaximumPayloadLength {
		return fault.ErrPayloadTooLarge
	}
	if r.RoyaltyBasisPoints > MaximumRoyaltyBasisPoints {
		return fault.ErrInvalidRoyalty
	}
	return nil
}

// Pack - serialise to the stored binary form
//
// token id + uvarint framed name, symbol, uri, payload + creator +
// owner + big endian royalty
func (r *Record) Pack() []byte {
	buffer := make([]byte, 0, tokenid.Length+len(r.Name)+len(r.Symbol)+len(r.Uri)+len(r.Payload)+2*identity.PublicKeySize+2+4*binary.MaxVarintLen16)

	buffer = append(buffer, r.TokenId[:]...)
	buffer = appendFramed(buffer, []byte(r.Name))
	buffer = appendFramed(buffer, []byte(r.Symbol))
	buffer = appendFramed(buffer, []byte(r.Uri))
	buffer = appendFramed(buffer, r.Payload)
	buffer = append(buffer, r.Creator[:]...)
	buffer = append(buffer, r.Owner[:]...)

	royalty := make([]byte, 2)
	binary.BigEndian.PutUint16(royalty, r.RoyaltyBasisPoints)
	return append(buffer, royalty...)
}

// Unpack - deserialise a stored record
//
// limits are re-checked so a corrupted store cannot smuggle an
// oversized record back into the system
func Unpack(buffer []byte) (*Record, error) {
	tokenId, rest, ok := takeFixed(buffer, tokenid.Length)
	if !ok {
		return nil, fault.ErrRecordCorrupt
	}

	name, rest, ok := takeFramed(rest, MaximumNameLength)
	if !ok {
		return nil, fault.ErrRecordCorrupt
	}
	symbol, rest, ok := takeFramed(rest, MaximumSymbolLength)
	if !ok {
		return nil, fault.ErrRecordCorrupt
	}
	uri, rest, ok := takeFramed(rest, MaximumUriLength)
	if !ok {
		return nil, fault.ErrRecordCorrupt
	}
	payload, rest, ok := takeFramed(rest, MaximumPayloadLength)
	if !ok {
		return nil, fault.ErrRecordCorrupt
	}

	creator, rest, ok := takeFixed(rest, identity.PublicKeySize)
	if !ok {
		return nil, fault.ErrRecordCorrupt
	}
	owner, rest, ok := takeFixed(rest, identity.PublicKeySize)
	if !ok {
		return nil, fault.ErrRecordCorrupt
	}
	if 2 != len(rest) {
		return nil, fault.ErrRecordCorrupt
	}

	record := &Record{
		Name:               string(name),
		Symbol:             string(symbol),
		Uri:                string(uri),
		Payload:            payload,
		RoyaltyBasisPoints: binary.BigEndian.Uint16(rest),
	}

	var err error
	record.TokenId, err = tokenid.FromBytes(tokenId)
	if nil != err {
		return nil, fault.ErrRecordCorrupt
	}
	record.Creator, err = identity.FromBytes(creator)
	if nil != err {
		return nil, fault.ErrRecordCorrupt
	}
	record.Owner, err = identity.FromBytes(owner)
	if nil != err {
		return nil, fault.ErrRecordCorrupt
	}
	if record.RoyaltyBasisPoints > MaximumRoyaltyBasisPoints {
		return nil, fault.ErrRecordCorrupt
	}

	return record, nil
}

// Exists - check a record is present for the token identifier
func Exists(trx storage.Transaction, tokenId tokenid.TokenIdentifier) bool {
	if nil == trx {
		return storage.Pool.Assets.Has(tokenId[:])
	}
	return trx.Has(storage.Pool.Assets, tokenId[:])
}

// Fetch - read the record for a token identifier
//
// a nil transaction reads the committed state directly
func Fetch(trx storage.Transaction, tokenId tokenid.TokenIdentifier) (*Record, error) {
	var packed []byte
	if nil == trx {
		packed = storage.Pool.Assets.Get(tokenId[:])
	} else {
		packed = trx.Get(storage.Pool.Assets, tokenId[:])
	}
	if nil == packed {
		return nil, fault.ErrAssetNotFound
	}
	return Unpack(packed)
}

// Store - stage the record into the transaction
func Store(trx storage.Transaction, r *Record) {
	trx.Put(storage.Pool.Assets, r.TokenId[:], r.Pack())
}

// append a uvarint length then the data
func appendFramed(buffer []byte, data []byte) []byte {
	frame := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(frame, uint64(len(data)))
	buffer = append(buffer, frame[:n]...)
	return append(buffer, data...)
}

// split off a fixed number of bytes
func takeFixed(buffer []byte, size int) ([]byte, []byte, bool) {
	if len(buffer) < size {
		return nil, nil, false
	}
	return buffer[:size], buffer[size:], true
}

// split off a uvarint framed field, enforcing its limit
func takeFramed(buffer []byte, limit int) ([]byte, []byte, bool) {
	size, n := binary.Uvarint(buffer)
	if n <= 0 || size > uint64(limit) {
		return nil, nil, false
	}
	rest := buffer[n:]
	if uint64(len(rest)) < size {
		return nil, nil, false
	}
	field := make([]byte, size)
	copy(field, rest[:size])
	return field, rest[size:], true
}
