// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/Not-Sarthak/vault-anchor/codec"
	"github.com/Not-Sarthak/vault-anchor/consts"
	"github.com/Not-Sarthak/vault-anchor/crypto/ed25519"
)

const (
	ED25519ID uint8 = 0

	AuthSize = consts.ByteLen + ed25519.PublicKeyLen + ed25519.SignatureLen
)

// Auth is the ed25519 signature that authorizes a transaction. The signer's
// public key is the transaction's actor.
type Auth struct {
	Signer    ed25519.PublicKey `json:"signer"`
	Signature ed25519.Signature `json:"signature"`
}

func (a *Auth) Actor() codec.Address {
	return a.Signer.Address()
}

func (a *Auth) Verify(msg []byte) error {
	if !ed25519.Verify(msg, a.Signer, a.Signature) {
		return ErrInvalidSignature
	}
	return nil
}

func (*Auth) Size() int {
	return AuthSize
}

func (a *Auth) Marshal(p *codec.Packer) {
	p.PackByte(ED25519ID)
	p.PackFixedBytes(a.Signer[:])
	p.PackFixedBytes(a.Signature[:])
}

func UnmarshalAuth(p *codec.Packer) (*Auth, error) {
	if typeID := p.UnpackByte(); p.Err() == nil && typeID != ED25519ID {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAuth, typeID)
	}
	var (
		auth      Auth
		signer    []byte
		signature []byte
	)
	p.UnpackFixedBytes(ed25519.PublicKeyLen, &signer)
	p.UnpackFixedBytes(ed25519.SignatureLen, &signature)
	if err := p.Err(); err != nil {
		return nil, err
	}
	copy(auth.Signer[:], signer)
	copy(auth.Signature[:], signature)
	return &auth, nil
}

// AuthFactory signs transactions with a private key.
type AuthFactory struct {
	priv ed25519.PrivateKey
}

func NewAuthFactory(priv ed25519.PrivateKey) *AuthFactory {
	return &AuthFactory{priv}
}

func (a *AuthFactory) Sign(msg []byte) *Auth {
	return &Auth{
		Signer:    a.priv.PublicKey(),
		Signature: ed25519.Sign(msg, a.priv),
	}
}

func (a *AuthFactory) Address() codec.Address {
	return a.priv.PublicKey().Address()
}
