// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Transaction - staged all-or-nothing database mutation
//
// every registry operation stages its reads and writes through one
// Transaction; nothing reaches the database until Commit and a failed
// operation calls Abort to discard every staged effect
type Transaction interface {
	Begin() error
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

type transactionData struct {
	dataAccess DataAccess
}

func newTransaction(access DataAccess) Transaction {
	return &transactionData{
		dataAccess: access,
	}
}

func (t *transactionData) Begin() error {
	return t.dataAccess.Begin()
}

func (t *transactionData) Abort() {
	t.dataAccess.Abort()
}

func (t *transactionData) Commit() error {
	return t.dataAccess.Commit()
}

func (t *transactionData) InUse() bool {
	return t.dataAccess.InUse()
}

func (t *transactionData) Put(p *PoolHandle, key []byte, value []byte) {
	p.put(key, value)
}

// PutN - stage a big endian uint64 record
func (t *transactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.put(key, buffer)
}

func (t *transactionData) Delete(p *PoolHandle, key []byte) {
	p.remove(key)
}

func (t *transactionData) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

func (t *transactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

func (t *transactionData) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}
