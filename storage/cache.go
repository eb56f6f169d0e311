// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - write-through cache in front of the staged batch
//
// staged puts and deletes are recorded here so that reads inside the
// same transaction observe them before the batch is written
type Cache interface {
	Get(string) ([]byte, bool)
	IsDeleted(string) bool
	Set(int, string, []byte)
	Clear()
}

// cached operations
const (
	dbPut = iota
	dbDelete
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheEntry struct {
	op    int
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultTimeout, defaultExpiration),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}

	entry := obj.(cacheEntry)
	// a staged delete must read as not found
	if dbDelete == entry.op {
		return nil, false
	}

	return entry.value, true
}

func (c *dbCache) IsDeleted(key string) bool {
	obj, found := c.cache.Get(key)
	if !found {
		return false
	}
	return dbDelete == obj.(cacheEntry).op
}

func (c *dbCache) Set(op int, key string, value []byte) {
	entry := cacheEntry{
		op:    op,
		value: value,
	}
	c.cache.Set(key, entry, defaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
