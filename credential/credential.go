/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package credential

import (
	"crypto/rand"
	"crypto/sha256"

	math "github.com/IBM/mathlib"
	"github.com/hyperledger/aries-bbs-go/bbs"
	"github.com/pkg/errors"
)

// KeyPair holds an issuer key pair.
type KeyPair struct {
	PK *bbs.PublicKey
	SK *bbs.PrivateKey
}

// PublicKeyBytes returns the marshalled public key.
func (k *KeyPair) PublicKeyBytes() ([]byte, error) {
	return k.PK.Marshal()
}

// SecretKeyBytes returns the marshalled secret key.
func (k *KeyPair) SecretKeyBytes() ([]byte, error) {
	return k.SK.Marshal()
}

// GenerateKeyPair creates a fresh issuer key pair. A nil seed draws 32
// random bytes; a caller-supplied seed makes generation deterministic.
func GenerateKeyPair(curve *math.Curve, seed []byte) (*KeyPair, error) {
	if seed == nil {
		seed = make([]byte, 32)

		_, err := rand.Read(seed)
		if err != nil {
			return nil, errors.Wrap(err, "rand.Read failed")
		}
	}

	PK, SK, err := bbs.NewBBSLib(curve).GenerateKeyPair(sha256.New, seed)
	if err != nil {
		return nil, errors.Wrap(err, "GenerateKeyPair failed")
	}

	return &KeyPair{PK: PK, SK: SK}, nil
}

// Issue signs the ordered attribute list, producing the credential
// signature the holder later proves knowledge of.
func Issue(curve *math.Curve, skBytes []byte, attributes [][]byte) ([]byte, error) {
	if len(attributes) == 0 {
		return nil, errors.New("nothing to sign: no attributes")
	}

	sig, err := bbs.New(curve).Sign(attributes, skBytes)
	if err != nil {
		return nil, errors.Wrap(err, "Sign failed")
	}

	return sig, nil
}

// Verify checks a credential signature against the full attribute list.
func Verify(curve *math.Curve, signature, pkBytes []byte, attributes [][]byte) error {
	lib := bbs.NewBBSLib(curve)

	PK, err := lib.UnmarshalPublicKey(pkBytes)
	if err != nil {
		return errors.Wrap(err, "UnmarshalPublicKey failed")
	}

	pkwg, err := PK.ToPublicKeyWithGenerators(len(attributes))
	if err != nil {
		return errors.Wrap(err, "ToPublicKeyWithGenerators failed")
	}

	sig, err := lib.ParseSignature(signature)
	if err != nil {
		return errors.Wrap(err, "ParseSignature failed")
	}

	err = sig.Verify(bbs.MessagesToFr(attributes, curve), pkwg)
	if err != nil {
		return errors.Wrap(err, "invalid credential signature")
	}

	return nil
}
