// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/metalax-inc/metalaxd/assetrecord"
	"github.com/metalax-inc/metalaxd/fault"
	"github.com/metalax-inc/metalaxd/identity"
	"github.com/metalax-inc/metalaxd/tokenid"
)

func makeRecord(t *testing.T) *assetrecord.Record {
	creator, _, err := identity.New()
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}

	return &assetrecord.Record{
		TokenId:            tokenid.Derive(creator, 1),
		Name:               "Genesis Artwork",
		Symbol:             "GEN",
		Uri:                "https://example.com/genesis.json",
		Payload:            []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a},
		Creator:            creator,
		Owner:              creator,
		RoyaltyBasisPoints: 500,
	}
}

func TestValidate(t *testing.T) {
	r := makeRecord(t)
	if err := r.Validate(); nil != err {
		t.Errorf("valid record rejected: %s", err)
	}
}

// first violation wins, in the fixed order
func TestValidateOrder(t *testing.T) {
	r := makeRecord(t)
	r.Name = strings.Repeat("n", assetrecord.MaximumNameLength+1)
	r.Symbol = strings.Repeat("s", assetrecord.MaximumSymbolLength+1)
	r.Uri = strings.Repeat("u", assetrecord.MaximumUriLength+1)
	r.Payload = make([]byte, assetrecord.MaximumPayloadLength+1)
	r.RoyaltyBasisPoints = assetrecord.MaximumRoyaltyBasisPoints + 1

	if err := r.Validate(); fault.ErrNameTooLong != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrNameTooLong)
	}

	r.Name = "ok"
	if err := r.Validate(); fault.ErrSymbolTooLong != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrSymbolTooLong)
	}

	r.Symbol = "OK"
	if err := r.Validate(); fault.ErrUriTooLong != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrUriTooLong)
	}

	r.Uri = "https://example.com/ok"
	if err := r.Validate(); fault.ErrPayloadTooLarge != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrPayloadTooLarge)
	}

	r.Payload = []byte{0x01}
	if err := r.Validate(); fault.ErrInvalidRoyalty != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrInvalidRoyalty)
	}

	r.RoyaltyBasisPoints = assetrecord.MaximumRoyaltyBasisPoints
	if err := r.Validate(); nil != err {
		t.Errorf("maximum royalty rejected: %s", err)
	}
}

// exact boundary values must pass
func TestValidateBoundaries(t *testing.T) {
	r := makeRecord(t)
	r.Name = strings.Repeat("n", assetrecord.MaximumNameLength)
	r.Symbol = strings.Repeat("s", assetrecord.MaximumSymbolLength)
	r.Uri = strings.Repeat("u", assetrecord.MaximumUriLength)
	r.Payload = make([]byte, assetrecord.MaximumPayloadLength)
	r.RoyaltyBasisPoints = assetrecord.MaximumRoyaltyBasisPoints

	if err := r.Validate(); nil != err {
		t.Errorf("boundary record rejected: %s", err)
	}
}

func TestPackUnpack(t *testing.T) {
	r := makeRecord(t)

	unpacked, err := assetrecord.Unpack(r.Pack())
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	if unpacked.TokenId != r.TokenId {
		t.Errorf("token id mismatch: %v != %v", unpacked.TokenId, r.TokenId)
	}
	if unpacked.Name != r.Name || unpacked.Symbol != r.Symbol || unpacked.Uri != r.Uri {
		t.Errorf("metadata mismatch: %+v", unpacked)
	}
	if !bytes.Equal(unpacked.Payload, r.Payload) {
		t.Errorf("payload mismatch: %x != %x", unpacked.Payload, r.Payload)
	}
	if unpacked.Creator != r.Creator || unpacked.Owner != r.Owner {
		t.Errorf("identity mismatch: %+v", unpacked)
	}
	if unpacked.RoyaltyBasisPoints != r.RoyaltyBasisPoints {
		t.Errorf("royalty mismatch: %d != %d", unpacked.RoyaltyBasisPoints, r.RoyaltyBasisPoints)
	}
}

// a full-size payload survives the round trip intact
func TestPackUnpackMaximumPayload(t *testing.T) {
	r := makeRecord(t)
	r.Payload = make([]byte, assetrecord.MaximumPayloadLength)
	for i := range r.Payload {
		r.Payload[i] = byte(i)
	}

	unpacked, err := assetrecord.Unpack(r.Pack())
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if !bytes.Equal(unpacked.Payload, r.Payload) {
		t.Error("payload mismatch on maximum size")
	}
}

func TestUnpackCorrupt(t *testing.T) {
	r := makeRecord(t)
	packed := r.Pack()

	testData := [][]byte{
		nil,
		{},
		packed[:10],                 // truncated inside the token id
		packed[:len(packed)-1],      // truncated royalty
		packed[:tokenid.Length+1],   // truncated frame
		append(packed, 0x00),        // trailing garbage
	}

	for i, data := range testData {
		if _, err := assetrecord.Unpack(data); fault.ErrRecordCorrupt != err {
			t.Errorf("%d: unexpected error: %v  expected: %v", i, err, fault.ErrRecordCorrupt)
		}
	}
}
