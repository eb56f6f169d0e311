// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/metalax-inc/metalaxd/assetrecord"
	"github.com/metalax-inc/metalaxd/engine"
	"github.com/metalax-inc/metalaxd/fault"
	"github.com/metalax-inc/metalaxd/tokenid"
	"github.com/metalax-inc/metalaxd/tokenunit"
)

func TestInitialisePlatform(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	registry := f.initialise(t)
	if f.admin != registry.Owner {
		t.Errorf("owner: %s  expected: %s", registry.Owner, f.admin)
	}
	if 0 != registry.TotalIssued || 0 != registry.TotalFeesCollected {
		t.Errorf("fresh registry has non-zero totals: %d %d", registry.TotalIssued, registry.TotalFeesCollected)
	}

	// the singleton cannot be created twice, not even by its owner
	_, err := f.engine.InitialisePlatform(f.admin)
	if fault.ErrPlatformAlreadyInitialised != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrPlatformAlreadyInitialised)
	}
	_, err = f.engine.InitialisePlatform(f.alice)
	if fault.ErrPlatformAlreadyInitialised != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrPlatformAlreadyInitialised)
	}
}

func TestUpdatePlatform(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise(t)

	_, err := f.engine.UpdatePlatform(f.alice, &f.alice)
	if fault.ErrNotPlatformOwner != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrNotPlatformOwner)
	}

	// a nil new owner just re-validates the caller
	registry, err := f.engine.UpdatePlatform(f.admin, nil)
	if nil != err {
		t.Fatalf("update error: %s", err)
	}
	if f.admin != registry.Owner {
		t.Errorf("owner changed on no-op update: %s", registry.Owner)
	}

	registry, err = f.engine.UpdatePlatform(f.admin, &f.alice)
	if nil != err {
		t.Fatalf("update error: %s", err)
	}
	if f.alice != registry.Owner {
		t.Errorf("owner: %s  expected: %s", registry.Owner, f.alice)
	}

	// the old owner has lost control
	_, err = f.engine.UpdatePlatform(f.admin, &f.admin)
	if fault.ErrNotPlatformOwner != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrNotPlatformOwner)
	}
	if _, err = f.engine.UpdatePlatform(f.alice, nil); nil != err {
		t.Errorf("new owner rejected: %s", err)
	}
}

func TestIssueAsset(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise(t)
	f.fund(t, f.alice, 2*engine.MintingFee)

	request := f.issueRequest(1)
	record, err := f.engine.IssueAsset(f.alice, request)
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}

	if tokenid.Derive(f.alice, 1) != record.TokenId {
		t.Errorf("token identifier not derived from payer and nonce: %s", record.TokenId)
	}
	if f.alice != record.Creator || f.alice != record.Owner {
		t.Errorf("creator: %s  owner: %s  expected both: %s", record.Creator, record.Owner, f.alice)
	}
	if !tokenunit.New().Holds(nil, record.TokenId, f.alice) {
		t.Error("payer does not hold the minted token")
	}

	// fee moved payer -> platform owner
	if balance := f.ledger.Balance(nil, f.alice); engine.MintingFee != balance {
		t.Errorf("payer balance: %d  expected: %d", balance, engine.MintingFee)
	}
	if balance := f.ledger.Balance(nil, f.admin); engine.MintingFee != balance {
		t.Errorf("owner balance: %d  expected: %d", balance, engine.MintingFee)
	}

	registry, err := f.engine.Platform()
	if nil != err {
		t.Fatalf("platform fetch error: %s", err)
	}
	if 1 != registry.TotalIssued || engine.MintingFee != registry.TotalFeesCollected {
		t.Errorf("registry totals: %d %d  expected: 1 %d", registry.TotalIssued, registry.TotalFeesCollected, engine.MintingFee)
	}

	// reading the payload back is idempotent
	for i := 0; i < 3; i += 1 {
		payload, err := f.engine.GetPayload(record.TokenId)
		if nil != err {
			t.Fatalf("get payload error: %s", err)
		}
		if !bytes.Equal(request.Payload, payload) {
			t.Errorf("payload: %q  expected: %q", payload, request.Payload)
		}
	}
}

func TestIssueFeeAccumulation(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise(t)

	const n = 3
	f.fund(t, f.alice, n*engine.MintingFee)

	for nonce := uint64(1); nonce <= n; nonce += 1 {
		if _, err := f.engine.IssueAsset(f.alice, f.issueRequest(nonce)); nil != err {
			t.Fatalf("issue %d error: %s", nonce, err)
		}
	}

	registry, err := f.engine.Platform()
	if nil != err {
		t.Fatalf("platform fetch error: %s", err)
	}
	if n != registry.TotalIssued {
		t.Errorf("total issued: %d  expected: %d", registry.TotalIssued, n)
	}
	if n*engine.MintingFee != registry.TotalFeesCollected {
		t.Errorf("total fees: %d  expected: %d", registry.TotalFeesCollected, n*engine.MintingFee)
	}
	if balance := f.ledger.Balance(nil, f.admin); n*engine.MintingFee != balance {
		t.Errorf("owner balance: %d  expected: %d", balance, n*engine.MintingFee)
	}

	issued, transferred := f.engine.Counters()
	if n != issued || 0 != transferred {
		t.Errorf("counters: %d %d  expected: %d 0", issued, transferred, n)
	}
}

func TestIssueValidation(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise(t)
	f.fund(t, f.alice, 10*engine.MintingFee)

	mutations := []struct {
		name string
		bend func(*engine.IssueRequest)
		err  error
	}{
		{"long name", func(r *engine.IssueRequest) {
			r.Name = strings.Repeat("n", assetrecord.MaximumNameLength+1)
		}, fault.ErrNameTooLong},
		{"long symbol", func(r *engine.IssueRequest) {
			r.Symbol = strings.Repeat("s", assetrecord.MaximumSymbolLength+1)
		}, fault.ErrSymbolTooLong},
		{"long uri", func(r *engine.IssueRequest) {
			r.Uri = strings.Repeat("u", assetrecord.MaximumUriLength+1)
		}, fault.ErrUriTooLong},
		{"oversize payload", func(r *engine.IssueRequest) {
			r.Payload = bytes.Repeat([]byte{'p'}, assetrecord.MaximumPayloadLength+1)
		}, fault.ErrPayloadTooLarge},
		{"royalty above maximum", func(r *engine.IssueRequest) {
			r.RoyaltyBasisPoints = assetrecord.MaximumRoyaltyBasisPoints + 1
		}, fault.ErrInvalidRoyalty},
		{"fee recipient is not the owner", func(r *engine.IssueRequest) {
			r.FeeRecipient = f.bob
		}, fault.ErrNotPlatformOwner},
	}

	for _, item := range mutations {
		request := f.issueRequest(1)
		item.bend(request)
		if _, err := f.engine.IssueAsset(f.alice, request); item.err != err {
			t.Errorf("%s: unexpected error: %v  expected: %v", item.name, err, item.err)
		}
	}

	// a rejected issuance charges nothing and mints nothing
	if balance := f.ledger.Balance(nil, f.alice); 10*engine.MintingFee != balance {
		t.Errorf("payer balance: %d  expected: %d", balance, 10*engine.MintingFee)
	}
	if assetrecord.Exists(nil, tokenid.Derive(f.alice, 1)) {
		t.Error("record exists after rejected issuance")
	}

	// size violations are reported in a fixed order
	request := f.issueRequest(1)
	request.Name = strings.Repeat("n", assetrecord.MaximumNameLength+1)
	request.Symbol = strings.Repeat("s", assetrecord.MaximumSymbolLength+1)
	request.RoyaltyBasisPoints = assetrecord.MaximumRoyaltyBasisPoints + 1
	if _, err := f.engine.IssueAsset(f.alice, request); fault.ErrNameTooLong != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrNameTooLong)
	}

	// exact limits are accepted
	request = f.issueRequest(1)
	request.Name = strings.Repeat("n", assetrecord.MaximumNameLength)
	request.Symbol = strings.Repeat("s", assetrecord.MaximumSymbolLength)
	request.Uri = strings.Repeat("u", assetrecord.MaximumUriLength)
	request.Payload = bytes.Repeat([]byte{'p'}, assetrecord.MaximumPayloadLength)
	request.RoyaltyBasisPoints = assetrecord.MaximumRoyaltyBasisPoints
	if _, err := f.engine.IssueAsset(f.alice, request); nil != err {
		t.Errorf("issue at exact limits error: %s", err)
	}
}

func TestIssueWithoutPlatform(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.fund(t, f.alice, engine.MintingFee)

	_, err := f.engine.IssueAsset(f.alice, f.issueRequest(1))
	if fault.ErrPlatformNotFound != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrPlatformNotFound)
	}
}

func TestIssueInsufficientFunds(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise(t)
	f.fund(t, f.alice, engine.MintingFee-1)

	_, err := f.engine.IssueAsset(f.alice, f.issueRequest(1))
	if fault.ErrInsufficientFunds != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrInsufficientFunds)
	}

	if balance := f.ledger.Balance(nil, f.alice); engine.MintingFee-1 != balance {
		t.Errorf("payer balance: %d  expected: %d", balance, engine.MintingFee-1)
	}
	if balance := f.ledger.Balance(nil, f.admin); 0 != balance {
		t.Errorf("owner balance: %d  expected: 0", balance)
	}
	if assetrecord.Exists(nil, tokenid.Derive(f.alice, 1)) {
		t.Error("record exists after failed issuance")
	}

	registry, err := f.engine.Platform()
	if nil != err {
		t.Fatalf("platform fetch error: %s", err)
	}
	if 0 != registry.TotalIssued || 0 != registry.TotalFeesCollected {
		t.Errorf("registry totals moved on failure: %d %d", registry.TotalIssued, registry.TotalFeesCollected)
	}
}

func TestIssueDuplicateNonce(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise(t)
	f.fund(t, f.alice, 3*engine.MintingFee)

	if _, err := f.engine.IssueAsset(f.alice, f.issueRequest(7)); nil != err {
		t.Fatalf("issue error: %s", err)
	}

	_, err := f.engine.IssueAsset(f.alice, f.issueRequest(7))
	if fault.ErrAssetAlreadyExists != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrAssetAlreadyExists)
	}

	// the rejected replay charged nothing
	if balance := f.ledger.Balance(nil, f.alice); 2*engine.MintingFee != balance {
		t.Errorf("payer balance: %d  expected: %d", balance, 2*engine.MintingFee)
	}

	// a fresh nonce is fine
	if _, err := f.engine.IssueAsset(f.alice, f.issueRequest(8)); nil != err {
		t.Errorf("issue with fresh nonce error: %s", err)
	}
}

func TestTransferAsset(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise(t)
	f.fund(t, f.alice, engine.MintingFee)

	record, err := f.engine.IssueAsset(f.alice, f.issueRequest(1))
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}
	issuer := tokenunit.New()

	record, err = f.engine.TransferAsset(f.alice, record.TokenId, f.bob)
	if nil != err {
		t.Fatalf("transfer error: %s", err)
	}
	if f.bob != record.Owner {
		t.Errorf("owner: %s  expected: %s", record.Owner, f.bob)
	}
	if f.alice != record.Creator {
		t.Errorf("creator changed on transfer: %s", record.Creator)
	}
	if issuer.Holds(nil, record.TokenId, f.alice) || !issuer.Holds(nil, record.TokenId, f.bob) {
		t.Error("token holding did not follow the transfer")
	}

	// and back again
	record, err = f.engine.TransferAsset(f.bob, record.TokenId, f.alice)
	if nil != err {
		t.Fatalf("return transfer error: %s", err)
	}
	if f.alice != record.Owner {
		t.Errorf("owner: %s  expected: %s", record.Owner, f.alice)
	}
	if issuer.Holds(nil, record.TokenId, f.bob) || !issuer.Holds(nil, record.TokenId, f.alice) {
		t.Error("token holding did not follow the return transfer")
	}

	issued, transferred := f.engine.Counters()
	if 1 != issued || 2 != transferred {
		t.Errorf("counters: %d %d  expected: 1 2", issued, transferred)
	}
}

func TestTransferNotOwner(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise(t)
	f.fund(t, f.alice, engine.MintingFee)

	record, err := f.engine.IssueAsset(f.alice, f.issueRequest(1))
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}

	_, err = f.engine.TransferAsset(f.bob, record.TokenId, f.bob)
	if fault.ErrNotAssetOwner != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrNotAssetOwner)
	}

	// ownership is untouched
	stored, err := assetrecord.Fetch(nil, record.TokenId)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if f.alice != stored.Owner {
		t.Errorf("owner: %s  expected: %s", stored.Owner, f.alice)
	}
	if !tokenunit.New().Holds(nil, record.TokenId, f.alice) {
		t.Error("original owner lost the token holding")
	}
}

func TestTransferUnknownAsset(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise(t)

	_, err := f.engine.TransferAsset(f.alice, tokenid.Derive(f.alice, 99), f.bob)
	if fault.ErrAssetNotFound != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrAssetNotFound)
	}
}

func TestGetPayloadUnknownAsset(t *testing.T) {
	f := setup(t)
	defer teardown(t)

	f.initialise(t)

	_, err := f.engine.GetPayload(tokenid.Derive(f.alice, 99))
	if fault.ErrAssetNotFound != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.ErrAssetNotFound)
	}
}
