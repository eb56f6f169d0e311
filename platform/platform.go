// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package platform - the singleton platform registry record
//
// one record for the whole system: the owning identity and the
// issuance counters; created once, rotated by its owner, never deleted
package platform

import (
	"encoding/binary"

	"github.com/metalax-inc/metalaxd/fault"
	"github.com/metalax-inc/metalaxd/identity"
	"github.com/metalax-inc/metalaxd/storage"
)

// Key - the deterministic storage key of the singleton record
var Key = []byte("metalax-platform")

// packed record: owner + total issued + total fees collected
const packedLength = identity.PublicKeySize + 8 + 8

// Registry - the platform registry record
type Registry struct {
	Owner              identity.Identity `json:"owner"`
	TotalIssued        uint64            `json:"totalIssued"`
	TotalFeesCollected uint64            `json:"totalFeesCollected"`
}

// MintAuthority - capability to create token mints
//
// only obtainable from a fetched Registry, so individual callers can
// never mint directly; the engine presents it to the token issuer
type MintAuthority struct {
	valid bool
}

// Valid - check the capability was minted by the registry
func (a MintAuthority) Valid() bool {
	return a.valid
}

// Authority - the registry's minting capability
func (r *Registry) Authority() MintAuthority {
	return MintAuthority{valid: true}
}

// Pack - serialise to the fixed binary form
func (r *Registry) Pack() []byte {
	buffer := make([]byte, packedLength)
	copy(buffer, r.Owner[:])
	binary.BigEndian.PutUint64(buffer[identity.PublicKeySize:], r.TotalIssued)
	binary.BigEndian.PutUint64(buffer[identity.PublicKeySize+8:], r.TotalFeesCollected)
	return buffer
}

// Unpack - deserialise a stored record
func Unpack(buffer []byte) (*Registry, error) {
	if packedLength != len(buffer) {
		return nil, fault.ErrRecordCorrupt
	}

	owner, err := identity.FromBytes(buffer[:identity.PublicKeySize])
	if nil != err {
		return nil, fault.ErrRecordCorrupt
	}

	return &Registry{
		Owner:              owner,
		TotalIssued:        binary.BigEndian.Uint64(buffer[identity.PublicKeySize:]),
		TotalFeesCollected: binary.BigEndian.Uint64(buffer[identity.PublicKeySize+8:]),
	}, nil
}

// Exists - check the singleton record is present
func Exists(trx storage.Transaction) bool {
	if nil == trx {
		return storage.Pool.Platform.Has(Key)
	}
	return trx.Has(storage.Pool.Platform, Key)
}

// Fetch - read the singleton record
//
// a nil transaction reads the committed state directly
func Fetch(trx storage.Transaction) (*Registry, error) {
	var packed []byte
	if nil == trx {
		packed = storage.Pool.Platform.Get(Key)
	} else {
		packed = trx.Get(storage.Pool.Platform, Key)
	}
	if nil == packed {
		return nil, fault.ErrPlatformNotFound
	}
	return Unpack(packed)
}

// Store - stage the singleton record into the transaction
func Store(trx storage.Transaction, r *Registry) {
	trx.Put(storage.Pool.Platform, Key, r.Pack())
}
