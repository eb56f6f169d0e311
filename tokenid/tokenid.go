// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokenid - deterministic token identifiers
//
// each issued asset is possession of a unique token with a total supply
// of one; the token identifier doubles as the asset record storage key
package tokenid

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/metalax-inc/metalaxd/fault"
	"github.com/metalax-inc/metalaxd/identity"
)

// limits
const (
	Length = 32
)

// derivation namespace, keeps token identifiers out of any other
// hash space used by the registry
const derivationPrefix = "metalax-token"

// TokenIdentifier - the type for a token identifier
// stored as a byte array, represented as hex text for JSON encoding
type TokenIdentifier [Length]byte

// Derive - deterministically derive a token identifier
//
// SHA3-256(prefix + payer public key + big endian nonce)
//
// the same payer and nonce always yield the same identifier, so a
// caller retrying an issue must supply a fresh nonce
func Derive(payer identity.Identity, nonce uint64) TokenIdentifier {
	buffer := make([]byte, 0, len(derivationPrefix)+identity.PublicKeySize+8)
	buffer = append(buffer, derivationPrefix...)
	buffer = append(buffer, payer[:]...)

	nonceBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(nonceBytes, nonce)
	buffer = append(buffer, nonceBytes...)

	return TokenIdentifier(sha3.Sum256(buffer))
}

// FromBytes - convert and validate a binary byte slice to a token identifier
func FromBytes(buffer []byte) (TokenIdentifier, error) {
	var tokenId TokenIdentifier
	if Length != len(buffer) {
		return tokenId, fault.ErrNotTokenIdentifier
	}
	copy(tokenId[:], buffer)
	return tokenId, nil
}

// FromHexString - convert hex text to a token identifier
func FromHexString(s string) (TokenIdentifier, error) {
	var tokenId TokenIdentifier
	if hex.EncodedLen(Length) != len(s) {
		return tokenId, fault.ErrNotTokenIdentifier
	}
	byteCount, err := hex.Decode(tokenId[:], []byte(s))
	if nil != err {
		return tokenId, fault.ErrNotTokenIdentifier
	}
	if Length != byteCount {
		return tokenId, fault.ErrNotTokenIdentifier
	}
	return tokenId, nil
}

// String - convert a binary token identifier to hex text for use by the fmt package (for %s)
func (tokenId TokenIdentifier) String() string {
	return hex.EncodeToString(tokenId[:])
}

// GoString - for use by the fmt package (for %#v)
func (tokenId TokenIdentifier) GoString() string {
	return "<token:" + hex.EncodeToString(tokenId[:]) + ">"
}

// MarshalText - convert a token identifier to hex text
func (tokenId TokenIdentifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(Length)
	buffer := make([]byte, size)
	hex.Encode(buffer, tokenId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a token identifier
func (tokenId *TokenIdentifier) UnmarshalText(s []byte) error {
	decoded, err := FromHexString(string(s))
	if nil != err {
		return err
	}
	*tokenId = decoded
	return nil
}
