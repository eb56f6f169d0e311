// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/metalax-inc/metalaxd/fault"
	"github.com/metalax-inc/metalaxd/identity"
	"github.com/metalax-inc/metalaxd/platform"
	"github.com/metalax-inc/metalaxd/storage"
)

// InitialisePlatform - create the singleton platform registry
//
// the caller becomes the registry owner; fails if the registry
// already exists
func (e *Engine) InitialisePlatform(caller identity.Identity) (*platform.Registry, error) {
	trx, err := storage.NewTransaction()
	if nil != err {
		return nil, err
	}

	if platform.Exists(trx) {
		trx.Abort()
		return nil, fault.ErrPlatformAlreadyInitialised
	}

	registry := &platform.Registry{
		Owner: caller,
	}
	platform.Store(trx, registry)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return nil, err
	}

	e.log.Infof("platform initialised: owner: %s", caller)
	return registry, nil
}

// UpdatePlatform - rotate the registry owner
//
// only the current owner may call this; a nil newOwner leaves the
// owner unchanged and simply re-validates the caller
func (e *Engine) UpdatePlatform(caller identity.Identity, newOwner *identity.Identity) (*platform.Registry, error) {
	trx, err := storage.NewTransaction()
	if nil != err {
		return nil, err
	}

	registry, err := platform.Fetch(trx)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	if caller != registry.Owner {
		trx.Abort()
		return nil, fault.ErrNotPlatformOwner
	}

	if nil != newOwner {
		registry.Owner = *newOwner
		platform.Store(trx, registry)
	}

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return nil, err
	}

	if nil != newOwner {
		e.log.Infof("platform owner rotated: %s -> %s", caller, *newOwner)
	}
	return registry, nil
}

// Platform - read the committed registry
func (e *Engine) Platform() (*platform.Registry, error) {
	return platform.Fetch(nil)
}
