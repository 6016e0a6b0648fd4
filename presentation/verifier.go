/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package presentation

import (
	"fmt"

	math "github.com/IBM/mathlib"
	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/aries-bbs-go/bbs"

	"github.com/IBM/bbspresent/pok"
)

// VerifyRequest is the host-facing verification boundary: the serialized
// bundle, one public key per credential, the claimed revealed values per
// credential in revealed-index order, and the nonce the verifier expects
// the presentation to be bound to.
type VerifyRequest struct {
	Bundle         []byte
	PublicKeys     [][]byte
	RevealedValues [][][]byte
	Nonce          []byte
}

// VerifyResponse reports aggregate pass/fail. Every failure mode, from a
// malformed request to a failed cryptographic check, lands in Error; the
// boundary never faults.
type VerifyResponse struct {
	Verified bool
	Error    string
}

// Verifier checks presentation bundles.
type Verifier struct {
	Curve *math.Curve
}

// Verify checks every credential proof of the bundle and the declared
// equivalence classes. Verified is true only if every check passes.
func (v *Verifier) Verify(req *VerifyRequest) *VerifyResponse {
	bundle := &PresentationBundle{}
	if err := proto.Unmarshal(req.Bundle, bundle); err != nil {
		return failure(fmt.Errorf("unmarshal presentation bundle: %w", err))
	}

	return v.VerifyBundle(bundle, req.PublicKeys, req.RevealedValues, req.Nonce)
}

// VerifyBundle is Verify for an already-deserialized bundle.
func (v *Verifier) VerifyBundle(bundle *PresentationBundle, publicKeys [][]byte, revealedValues [][][]byte, nonce []byte) *VerifyResponse {
	proofs := make([]*pok.CredentialProof, len(bundle.CredentialProofs))
	for k, cp := range bundle.CredentialProofs {
		revealed := make([]int, len(cp.RevealedIndices))
		for i, idx := range cp.RevealedIndices {
			revealed[i] = int(idx)
		}

		proofs[k] = &pok.CredentialProof{
			Proof:        cp.Proof,
			Revealed:     revealed,
			MessageCount: int(cp.MessageCount),
		}
	}

	if len(publicKeys) != len(proofs) {
		return failure(fmt.Errorf("public key count [%d] does not match proof count [%d]", len(publicKeys), len(proofs)))
	}

	if len(revealedValues) != len(proofs) {
		return failure(fmt.Errorf("revealed value count [%d] does not match proof count [%d]", len(revealedValues), len(proofs)))
	}

	lib := bbs.NewBBSLib(v.Curve)

	pkwgs := make([]*bbs.PublicKeyWithGenerators, len(proofs))
	for k, raw := range publicKeys {
		pubKey, err := lib.UnmarshalPublicKey(raw)
		if err != nil {
			return failure(fmt.Errorf("credential [%d]: unmarshal public key: %w", k, err))
		}

		pkwgs[k], err = pubKey.ToPublicKeyWithGenerators(proofs[k].MessageCount)
		if err != nil {
			return failure(fmt.Errorf("credential [%d]: build public key generators: %w", k, err))
		}
	}

	equivalences := make([][]pok.AttributeRef, len(bundle.Equivalences))
	for i, class := range bundle.Equivalences {
		equivalences[i] = make([]pok.AttributeRef, len(class.Members))
		for j, ref := range class.Members {
			equivalences[i][j] = pok.AttributeRef{
				Credential: int(ref.Credential),
				Attribute:  int(ref.Attribute),
			}
		}
	}

	if err := pok.VerifyPresentation(v.Curve, proofs, pkwgs, revealedValues, equivalences, nonce); err != nil {
		return failure(err)
	}

	return &VerifyResponse{Verified: true}
}

func failure(err error) *VerifyResponse {
	return &VerifyResponse{
		Verified: false,
		Error:    err.Error(),
	}
}
