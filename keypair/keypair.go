// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Metalax Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - named ed25519 key pairs for the command line tool
//
// pairs are stored unencrypted in a JSON file next to the
// configuration, so the file is created with owner-only permissions
package keypair

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"os"

	"golang.org/x/crypto/ed25519"

	"github.com/metalax-inc/metalaxd/fault"
	"github.com/metalax-inc/metalaxd/identity"
)

var (
	ErrIdentityNameExists = fault.ExistsError("identity name already exists")
	ErrIdentityNotFound   = fault.NotFoundError("identity name not found")
	ErrKeyLength          = fault.InvalidError("key length is invalid")
)

// KeyPair - one named key pair
type KeyPair struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PublicKey   string `json:"public_key"`
	PrivateKey  string `json:"private_key"`
}

// Wallet - all key pairs from one identity file
type Wallet struct {
	fileName string
	Items    []KeyPair `json:"identities"`
}

// Load - read the identity file
//
// a missing file yields an empty wallet so the first generate works
func Load(fileName string) (*Wallet, error) {
	w := &Wallet{
		fileName: fileName,
		Items:    make([]KeyPair, 0),
	}

	data, err := ioutil.ReadFile(fileName)
	if os.IsNotExist(err) {
		return w, nil
	}
	if nil != err {
		return nil, err
	}
	err = json.Unmarshal(data, w)
	if nil != err {
		return nil, err
	}
	return w, nil
}

// Save - write the wallet back to its identity file
func (w *Wallet) Save() error {
	data, err := json.MarshalIndent(w, "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(w.fileName, append(data, '\n'), 0600)
}

// Generate - create a new named key pair and add it to the wallet
func (w *Wallet) Generate(name string, description string) (*KeyPair, error) {
	if _, ok := w.find(name); ok {
		return nil, ErrIdentityNameExists
	}

	public, private, err := identity.New()
	if nil != err {
		return nil, err
	}

	pair := KeyPair{
		Name:        name,
		Description: description,
		PublicKey:   public.String(),
		PrivateKey:  hex.EncodeToString(private),
	}
	w.Items = append(w.Items, pair)
	return &pair, nil
}

// Identity - the public identity of a named pair
func (w *Wallet) Identity(name string) (identity.Identity, error) {
	pair, ok := w.find(name)
	if !ok {
		return identity.Identity{}, ErrIdentityNotFound
	}
	return identity.FromBase58(pair.PublicKey)
}

// PrivateKey - the signing key of a named pair
func (w *Wallet) PrivateKey(name string) (ed25519.PrivateKey, error) {
	pair, ok := w.find(name)
	if !ok {
		return nil, ErrIdentityNotFound
	}
	key, err := hex.DecodeString(pair.PrivateKey)
	if nil != err {
		return nil, err
	}
	if ed25519.PrivateKeySize != len(key) {
		return nil, ErrKeyLength
	}
	return ed25519.PrivateKey(key), nil
}

// Resolve - turn a wallet name or a base58 public key into an identity
func (w *Wallet) Resolve(nameOrKey string) (identity.Identity, error) {
	if pair, ok := w.find(nameOrKey); ok {
		return identity.FromBase58(pair.PublicKey)
	}
	return identity.FromBase58(nameOrKey)
}

func (w *Wallet) find(name string) (*KeyPair, bool) {
	for i := range w.Items {
		if name == w.Items[i].Name {
			return &w.Items[i], true
		}
	}
	return nil, false
}
