// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// ExistsError - record creation would collide with an existing record
	ExistsError GenericError

	// InvalidError - authorisation or argument failures
	InvalidError GenericError

	// LengthError - a field exceeds its fixed limit
	LengthError GenericError

	// NotFoundError - referenced record does not exist
	NotFoundError GenericError

	// ProcessError - a staged effect could not be applied
	ProcessError GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrAssetAlreadyExists         = ExistsError("asset already exists")
	ErrAssetNotFound              = NotFoundError("asset not found")
	ErrCannotDecodeIdentity       = InvalidError("cannot decode identity")
	ErrChecksumMismatch           = InvalidError("checksum mismatch")
	ErrInsufficientFunds          = ProcessError("insufficient funds")
	ErrInvalidKeyLength           = InvalidError("key length is invalid")
	ErrInvalidMintAuthority       = InvalidError("mint authority is invalid")
	ErrInvalidRoyalty             = InvalidError("royalty basis points exceed one hundred percent")
	ErrNameTooLong                = LengthError("name is too long")
	ErrNotAssetOwner              = InvalidError("not asset owner")
	ErrNotInitialised             = ProcessError("not initialised")
	ErrNotPlatformOwner           = InvalidError("not platform owner")
	ErrNotTokenIdentifier         = InvalidError("not token identifier")
	ErrPayloadTooLarge            = LengthError("payload is too large")
	ErrPlatformAlreadyInitialised = ExistsError("platform already initialised")
	ErrPlatformNotFound           = NotFoundError("platform not found")
	ErrRecordCorrupt              = ProcessError("record is corrupt")
	ErrSymbolTooLong              = LengthError("symbol is too long")
	ErrTokenNotFound              = NotFoundError("token not found")
	ErrTransactionAlreadyInUse    = ProcessError("transaction already in use")
	ErrTransferFailed             = ProcessError("transfer failed")
	ErrUriTooLong                 = LengthError("uri is too long")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
