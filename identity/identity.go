// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/metalax-inc/metalaxd/fault"
)

// miscellaneous constants
const (
	PublicKeySize  = ed25519.PublicKeySize
	checksumLength = 4
)

// Identity - a verified caller identity, the raw ed25519 public key
//
// the signature verifier is an external collaborator: by the time an
// Identity reaches this module it is trusted as authentic
type Identity [PublicKeySize]byte

// FromBytes - convert and validate a binary byte slice to an identity
func FromBytes(buffer []byte) (Identity, error) {
	var id Identity
	if PublicKeySize != len(buffer) {
		return id, fault.ErrInvalidKeyLength
	}
	copy(id[:], buffer)
	return id, nil
}

// FromBase58 - convert a Base58 encoded string to an identity
//
// the encoding is: Base58(publicKey + checksum) where checksum is the
// first 4 bytes of SHA3-256(publicKey)
func FromBase58(identityBase58Encoded string) (Identity, error) {
	var id Identity

	decoded, err := base58.Decode(identityBase58Encoded)
	if nil != err {
		return id, fault.ErrCannotDecodeIdentity
	}
	if PublicKeySize+checksumLength != len(decoded) {
		return id, fault.ErrInvalidKeyLength
	}

	digest := sha3.Sum256(decoded[:PublicKeySize])
	checksum := decoded[PublicKeySize:]
	for i := 0; i < checksumLength; i += 1 {
		if digest[i] != checksum[i] {
			return id, fault.ErrChecksumMismatch
		}
	}

	copy(id[:], decoded[:PublicKeySize])
	return id, nil
}

// New - generate a new random identity and its signing key
func New() (Identity, ed25519.PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return Identity{}, nil, err
	}
	id, err := FromBytes(publicKey)
	if nil != err {
		return Identity{}, nil, err
	}
	return id, privateKey, nil
}

// Bytes - a copy of the raw public key
func (id Identity) Bytes() []byte {
	buffer := make([]byte, PublicKeySize)
	copy(buffer, id[:])
	return buffer
}

// IsZero - check for the all-zero identity
func (id Identity) IsZero() bool {
	for _, b := range id {
		if 0 != b {
			return false
		}
	}
	return true
}

// CheckSignature - verify an ed25519 signature made by this identity
func (id Identity) CheckSignature(message []byte, signature []byte) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidKeyLength
	}
	if !ed25519.Verify(id[:], message, signature) {
		return fault.InvalidError("invalid signature")
	}
	return nil
}

// String - the Base58 check-summed representation, for use by the fmt package (for %s)
func (id Identity) String() string {
	digest := sha3.Sum256(id[:])
	buffer := make([]byte, 0, PublicKeySize+checksumLength)
	buffer = append(buffer, id[:]...)
	buffer = append(buffer, digest[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for use by the fmt package (for %#v)
func (id Identity) GoString() string {
	return "<identity:" + id.String() + ">"
}

// MarshalText - convert an identity to Base58 text
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert Base58 text into an identity
func (id *Identity) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}
